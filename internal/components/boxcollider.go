package components

import (
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Group is a collision group bitmask.
type Group uint32

const (
	GroupStatic       Group = 1 << iota // walls, desks
	GroupDynamic                        // loose physics props
	GroupPlayer                         // the player body
	GroupInteractable                   // anything the player can aim at
)

// GroupAll matches every group.
const GroupAll = GroupStatic | GroupDynamic | GroupPlayer | GroupInteractable

// BoxCollider is an axis-aligned box described by half extents.
// Membership says which groups the collider belongs to; Filter says which groups it reacts to.
type BoxCollider struct {
	engine.BaseComponent
	HalfExtents rl.Vector3
	Offset      rl.Vector3
	Membership  Group
	Filter      Group
	Enabled     bool
	IsSensor    bool
}

func NewBoxCollider(halfExtents rl.Vector3) *BoxCollider {
	return &BoxCollider{
		HalfExtents: halfExtents,
		Membership:  GroupStatic,
		Filter:      GroupAll,
		Enabled:     true,
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldHalfExtents applies the object's world scale.
func (b *BoxCollider) GetWorldHalfExtents() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.HalfExtents
	}
	s := g.WorldScale()
	return rl.Vector3{X: abs(b.HalfExtents.X * s.X), Y: abs(b.HalfExtents.Y * s.Y), Z: abs(b.HalfExtents.Z * s.Z)}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() (min, max rl.Vector3) {
	c := b.GetCenter()
	h := b.GetWorldHalfExtents()
	return rl.Vector3Subtract(c, h), rl.Vector3Add(c, h)
}

// Matches reports whether this collider is enabled and belongs to any group in filter.
func (b *BoxCollider) Matches(filter Group) bool {
	return b.Enabled && b.Membership&filter != 0
}

// InteractsWith reports whether two colliders should see each other.
func (b *BoxCollider) InteractsWith(other *BoxCollider) bool {
	return b.Enabled && other.Enabled &&
		b.Membership&other.Filter != 0 && other.Membership&b.Filter != 0
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
