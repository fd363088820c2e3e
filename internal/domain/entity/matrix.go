package entity

import "math"

// Mat4 is a row-major 4x4 affine/projective matrix. Points are column vectors.
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns A*B.
func (A Mat4) Mul(B Mat4) Mat4 {
	var C Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			C.M[i][j] = A.M[i][0]*B.M[0][j] + A.M[i][1]*B.M[1][j] + A.M[i][2]*B.M[2][j] + A.M[i][3]*B.M[3][j]
		}
	}
	return C
}

// MulPoint transforms p as a point (w = 1) without the perspective divide.
func (A Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		A.M[0][0]*p.X + A.M[0][1]*p.Y + A.M[0][2]*p.Z + A.M[0][3],
		A.M[1][0]*p.X + A.M[1][1]*p.Y + A.M[1][2]*p.Z + A.M[1][3],
		A.M[2][0]*p.X + A.M[2][1]*p.Y + A.M[2][2]*p.Z + A.M[2][3],
	}
}

// Translation returns a translation matrix.
func Translation(t Vec3) Mat4 {
	m := Identity()
	m.M[0][3], m.M[1][3], m.M[2][3] = t.X, t.Y, t.Z
	return m
}

// Scaling returns a scale matrix.
func Scaling(s Vec3) Mat4 {
	m := Identity()
	m.M[0][0], m.M[1][1], m.M[2][2] = s.X, s.Y, s.Z
	return m
}

// Rotation returns the rotation matrix for e, Rx·Ry·Rz.
func Rotation(e Euler) Mat4 {
	a, b := math.Cos(e.X), math.Sin(e.X)
	c, d := math.Cos(e.Y), math.Sin(e.Y)
	f, g := math.Cos(e.Z), math.Sin(e.Z)

	ae, af := a*f, a*g
	be, bf := b*f, b*g

	m := Identity()
	m.M[0][0] = c * f
	m.M[0][1] = -c * g
	m.M[0][2] = d
	m.M[1][0] = af + be*d
	m.M[1][1] = ae - bf*d
	m.M[1][2] = -b * c
	m.M[2][0] = bf - ae*d
	m.M[2][1] = be + af*d
	m.M[2][2] = a * c
	return m
}

// Compose builds T·R·S.
func Compose(position Vec3, rotation Euler, scale Vec3) Mat4 {
	return Translation(position).Mul(Rotation(rotation)).Mul(Scaling(scale))
}

// RigidInverse inverts a matrix made only of rotation and translation.
func (A Mat4) RigidInverse() Mat4 {
	inv := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.M[i][j] = A.M[j][i]
		}
	}
	t := Vec3{A.M[0][3], A.M[1][3], A.M[2][3]}
	for i := 0; i < 3; i++ {
		inv.M[i][3] = -(inv.M[i][0]*t.X + inv.M[i][1]*t.Y + inv.M[i][2]*t.Z)
	}
	return inv
}
