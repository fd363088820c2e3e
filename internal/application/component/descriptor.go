// Package component turns geometry props into scene descriptors.
//
// A Descriptor pairs a lazy constructor with a placement. Creating one is
// cheap: the geometry is only built when the scene calls Build.
package component

import (
	"fmt"
	"sync/atomic"

	"github.com/younwookim/xrscene/internal/domain/entity"
	"github.com/younwookim/xrscene/internal/domain/geometry"
)

// Kind tags the geometry a descriptor builds
type Kind int

const (
	KindCard Kind = iota
	KindRoom
)

// String returns the id prefix of the kind
func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindRoom:
		return "wireframe-room"
	default:
		return "unknown"
	}
}

// Placement is an optional transform. Nil fields leave the built object's
// transform as it is.
type Placement struct {
	Position *entity.Vec3
	Rotation *entity.Euler
	Scale    *entity.Vec3
}

// Descriptor is a declarative scene entry
type Descriptor struct {
	ID        string
	Kind      Kind
	Placement Placement

	construct func() *entity.Object
}

// Build runs the constructor and applies the placement.
// Each call builds a fresh object.
func (d Descriptor) Build() *entity.Object {
	obj := d.construct()
	if d.Placement.Position != nil {
		obj.Position = *d.Placement.Position
	}
	if d.Placement.Rotation != nil {
		obj.Rotation = *d.Placement.Rotation
	}
	if d.Placement.Scale != nil {
		obj.Scale = *d.Placement.Scale
	}
	return obj
}

// Factory creates descriptors with ids that are never reused
type Factory struct {
	next atomic.Uint64
}

// NewFactory creates a factory whose first id suffix is 1
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) id(k Kind) string {
	return fmt.Sprintf("%s-%d", k, f.next.Add(1))
}

// New wraps an arbitrary constructor. Card and Room cover the built-in kinds.
func (f *Factory) New(k Kind, construct func() *entity.Object, placement Placement) Descriptor {
	return Descriptor{
		ID:        f.id(k),
		Kind:      k,
		Placement: placement,
		construct: construct,
	}
}

// Card creates a descriptor for a card
func (f *Factory) Card(props geometry.CardProps, placement Placement) Descriptor {
	return f.New(KindCard, func() *entity.Object { return geometry.BuildCard(props) }, placement)
}

// Room creates a descriptor for a wireframe room
func (f *Factory) Room(props geometry.RoomProps, placement Placement) Descriptor {
	return f.New(KindRoom, func() *entity.Object { return geometry.BuildRoom(props) }, placement)
}

var defaultFactory = NewFactory()

// NewCard creates a card descriptor from the process-wide factory
func NewCard(props geometry.CardProps, placement Placement) Descriptor {
	return defaultFactory.Card(props, placement)
}

// NewRoom creates a room descriptor from the process-wide factory
func NewRoom(props geometry.RoomProps, placement Placement) Descriptor {
	return defaultFactory.Room(props, placement)
}
