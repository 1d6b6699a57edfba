package interaction

import (
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type pose struct {
	Position rl.Vector3
	Rotation rl.Vector3
}

// Where each kind of item sits relative to the viewmodel.
var holdPoses = map[player.HeldKind]pose{
	player.HeldHammer: {Position: rl.Vector3{X: -0.2, Y: 0.3}, Rotation: rl.Vector3{X: 20, Y: -90, Z: -10}},
	player.HeldLine:   {Position: rl.Vector3{X: -0.2, Y: 0.5}, Rotation: rl.Vector3{X: -10, Y: 90, Z: 20}},
	player.HeldBundle: {Position: rl.Vector3{X: -0.2, Y: 0.3}, Rotation: rl.Vector3{X: 170, Y: -90, Z: -57}},
}

// grab takes obj out of the simulation and parents it to the viewmodel.
func grab(c *Context, obj *engine.GameObject, kind player.HeldKind) {
	c.World.Destroy(obj)
	if col := engine.GetComponent[*components.BoxCollider](obj); col != nil {
		col.Enabled = false
	}
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		rb.SetBodyType(components.Fixed)
	}
	c.ViewModel.AddChild(obj)
	p := holdPoses[kind]
	obj.Transform.Position = p.Position
	obj.Transform.Rotation = p.Rotation
}

// release puts obj back into the world as a dynamic body at pos.
func release(c *Context, obj *engine.GameObject, pos, rot rl.Vector3) {
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	obj.Transform.Position = pos
	obj.Transform.Rotation = rot
	if col := engine.GetComponent[*components.BoxCollider](obj); col != nil {
		col.Enabled = true
	}
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		rb.SetBodyType(components.Dynamic)
	}
	c.World.Rebody(obj)
}
