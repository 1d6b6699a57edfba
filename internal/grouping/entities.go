package grouping

import (
	"fmt"

	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineMass is the mass of one plank. Bundles weigh LineMass per member.
const LineMass = 0.02

// Collision setup shared by every loose interactable prop.
const (
	propMembership = components.GroupDynamic | components.GroupInteractable
	propFilter     = components.GroupStatic | components.GroupDynamic | components.GroupPlayer
)

// NewLine builds a standalone, dynamic line-of-code object. The caller adds it to the scene and world.
func NewLine(l code.Line) *engine.GameObject {
	g := engine.NewGameObject("")
	g.Name = fmt.Sprintf("loc_%d", g.UID)
	g.AddComponent(components.NewCodeLine(l))
	g.AddComponent(components.NewRenderable(rl.Vector3Scale(code.LineHalfExtents, 2), rl.RayWhite))
	makeStandalone(g)
	return g
}

// makeStandalone gives a line its own collider, dynamic body and interactable tag.
func makeStandalone(g *engine.GameObject) {
	if engine.GetComponent[*components.BoxCollider](g) == nil {
		col := components.NewBoxCollider(code.LineHalfExtents)
		col.Membership = propMembership
		col.Filter = propFilter
		g.AddComponent(col)
	}
	if engine.GetComponent[*components.Rigidbody](g) == nil {
		rb := components.NewRigidbody()
		rb.Mass = LineMass
		g.AddComponent(rb)
	}
	if engine.GetComponent[*components.Interactable](g) == nil {
		g.AddComponent(components.NewInteractable(components.KindLineOfCode))
	}
}

// makeMember strips a line down to data and visuals so the owning bundle carries physics for it.
func makeMember(g *engine.GameObject) {
	engine.RemoveComponent[*components.BoxCollider](g)
	engine.RemoveComponent[*components.Rigidbody](g)
	engine.RemoveComponent[*components.Interactable](g)
}

func newBundleObject(n int, halfWidth float32) *engine.GameObject {
	g := engine.NewGameObject("")
	g.Name = fmt.Sprintf("bundle_%d", g.UID)
	col := components.NewBoxCollider(code.BundleHalfExtents(halfWidth))
	col.Membership = propMembership
	col.Filter = propFilter
	g.AddComponent(col)
	rb := components.NewRigidbody()
	rb.Mass = LineMass * float32(n)
	g.AddComponent(rb)
	g.AddComponent(components.NewInteractable(components.KindBundle))
	g.AddComponent(components.NewBundle())
	return g
}
