// Package grouping merges lines of code into ordered bundles and smashes bundles back into lines.
package grouping

import (
	"math/rand"

	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Split tuning.
const (
	SplitStagger = 0.02
	SplitImpulse = 0.015
)

// Grouper performs every bundle restructuring. It owns no state besides its collaborators.
type Grouper struct {
	Scene *engine.Scene
	World engine.WorldAccess
	Rand  *rand.Rand
}

func New(scene *engine.Scene, world engine.WorldAccess, rng *rand.Rand) *Grouper {
	return &Grouper{Scene: scene, World: world, Rand: rng}
}

// AttachLine places a held line onto a target line or bundle.
// Line onto line makes a new bundle ordered [target, held]; line onto bundle appends held.
// Returns the resulting bundle, or nil when the inputs don't form an attach.
func (gr *Grouper) AttachLine(held, target *engine.GameObject) *engine.GameObject {
	if engine.GetComponent[*components.CodeLine](held) == nil || held == target {
		return nil
	}
	kind, ok := components.KindOf(target)
	if !ok {
		return nil
	}
	switch kind {
	case components.KindLineOfCode:
		bundle := gr.spawnBundleAt(target, []*engine.GameObject{target, held}, code.AttachHalfExtent(2))
		return bundle
	case components.KindBundle:
		b := engine.GetComponent[*components.Bundle](target)
		members := append(b.Lines(gr.Scene), held)
		gr.adopt(target, members)
		gr.resize(target, code.AttachHalfExtent(len(members)))
		return target
	}
	return nil
}

// MergeBundle places a held bundle onto a target line or bundle.
// The target's lines come first, then the held bundle's. The result is a new bundle
// at the target's position; both consumed bundles are despawned.
func (gr *Grouper) MergeBundle(held, target *engine.GameObject) *engine.GameObject {
	heldBundle := engine.GetComponent[*components.Bundle](held)
	if heldBundle == nil || held == target {
		return nil
	}
	kind, ok := components.KindOf(target)
	if !ok {
		return nil
	}

	var members []*engine.GameObject
	switch kind {
	case components.KindLineOfCode:
		members = append(members, target)
	case components.KindBundle:
		members = append(members, engine.GetComponent[*components.Bundle](target).Lines(gr.Scene)...)
	default:
		return nil
	}
	members = append(members, heldBundle.Lines(gr.Scene)...)

	bundle := gr.spawnBundleAt(target, members, code.MergeHalfExtent(len(members)))
	for _, consumed := range []*engine.GameObject{held, target} {
		if engine.GetComponent[*components.Bundle](consumed) != nil {
			gr.Despawn(consumed)
		}
	}
	return bundle
}

// Split despawns a bundle and turns every member back into a standalone dynamic line,
// staggered upward by index and kicked in a random direction.
func (gr *Grouper) Split(bundle *engine.GameObject) []*engine.GameObject {
	b := engine.GetComponent[*components.Bundle](bundle)
	if b == nil {
		return nil
	}
	lines := b.Lines(gr.Scene)
	for i, line := range lines {
		line.Detach()
		line.Transform.Position.Y += SplitStagger * float32(i)
		makeStandalone(line)
		gr.World.SpawnObject(line)
		impulse := rl.Vector3{X: gr.randUnit(), Y: 1, Z: gr.randUnit()}
		engine.GetComponent[*components.Rigidbody](line).ApplyImpulse(rl.Vector3Scale(impulse, SplitImpulse))
	}
	b.Members = nil
	gr.Despawn(bundle)
	return lines
}

// Despawn removes obj (and anything still parented to it) from the world and the scene.
func (gr *Grouper) Despawn(obj *engine.GameObject) {
	gr.World.Destroy(obj)
	gr.Scene.RemoveGameObject(obj)
}

// Painted returns the scored form of a line or bundle, in member order.
func Painted(scene *engine.Scene, obj *engine.GameObject) []code.Painted {
	if cl := engine.GetComponent[*components.CodeLine](obj); cl != nil {
		return []code.Painted{cl.Painted()}
	}
	b := engine.GetComponent[*components.Bundle](obj)
	if b == nil {
		return nil
	}
	var out []code.Painted
	for _, line := range b.Lines(scene) {
		if cl := engine.GetComponent[*components.CodeLine](line); cl != nil {
			out = append(out, cl.Painted())
		}
	}
	return out
}

// CodeLines returns the line components of a line or of every bundle member.
func CodeLines(scene *engine.Scene, obj *engine.GameObject) []*components.CodeLine {
	if cl := engine.GetComponent[*components.CodeLine](obj); cl != nil {
		return []*components.CodeLine{cl}
	}
	b := engine.GetComponent[*components.Bundle](obj)
	if b == nil {
		return nil
	}
	var out []*components.CodeLine
	for _, line := range b.Lines(scene) {
		if cl := engine.GetComponent[*components.CodeLine](line); cl != nil {
			out = append(out, cl)
		}
	}
	return out
}

func (gr *Grouper) randUnit() float32 {
	return gr.Rand.Float32()*2 - 1
}

// spawnBundleAt creates a dynamic bundle at anchor's world transform holding members in order.
func (gr *Grouper) spawnBundleAt(anchor *engine.GameObject, members []*engine.GameObject, halfWidth float32) *engine.GameObject {
	bundle := newBundleObject(len(members), halfWidth)
	bundle.Transform.Position = anchor.WorldPosition()
	bundle.Transform.Rotation = anchor.WorldRotation()
	gr.Scene.AddGameObject(bundle)
	gr.adopt(bundle, members)
	gr.World.SpawnObject(bundle)
	return bundle
}

// adopt parents members to bundle in order and lays them out left to right.
func (gr *Grouper) adopt(bundle *engine.GameObject, members []*engine.GameObject) {
	b := engine.GetComponent[*components.Bundle](bundle)
	b.Members = b.Members[:0]
	xs := code.Layout(len(members))
	for i, m := range members {
		gr.World.Destroy(m)
		makeMember(m)
		if m.Parent != bundle {
			bundle.AddChild(m)
		}
		m.Transform.Position = rl.Vector3{X: xs[i]}
		m.Transform.Rotation = rl.Vector3{}
		b.Members = append(b.Members, m.UID)
	}
	// Keep Children in member order for rendering.
	ordered := make([]*engine.GameObject, 0, len(bundle.Children))
	ordered = append(ordered, members...)
	for _, c := range bundle.Children {
		if !contains(members, c) {
			ordered = append(ordered, c)
		}
	}
	bundle.Children = ordered
	if rb := engine.GetComponent[*components.Rigidbody](bundle); rb != nil {
		rb.Mass = LineMass * float32(len(members))
		rb.Wake()
	}
}

func (gr *Grouper) resize(bundle *engine.GameObject, halfWidth float32) {
	if col := engine.GetComponent[*components.BoxCollider](bundle); col != nil {
		col.HalfExtents = code.BundleHalfExtents(halfWidth)
	}
}

func contains(list []*engine.GameObject, g *engine.GameObject) bool {
	for _, x := range list {
		if x == g {
			return true
		}
	}
	return false
}

// Members is Painted over the grouper's scene.
func (gr *Grouper) Members(obj *engine.GameObject) []code.Painted {
	return Painted(gr.Scene, obj)
}
