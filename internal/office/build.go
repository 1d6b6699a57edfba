package office

import (
	"errors"
	"fmt"
	"log"

	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/sensor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrMissingAnchor is returned when a required anchor was not authored.
var ErrMissingAnchor = errors.New("office: missing anchor")

// Well-known anchor names.
const (
	AnchorDesk     = "desk"
	AnchorToolDesk = "tooldesk"
	AnchorSpawn    = "spawn"
)

// SensorFactory builds the trigger component for a sensor entry.
type SensorFactory func(kind sensor.Kind, paint code.Color) engine.Component

// Screen is where the terminal text is drawn.
type Screen struct {
	Transform engine.Transform
	Size      rl.Vector3
}

// Office is the built level geometry.
type Office struct {
	Anchors map[string]engine.Transform
	Objects []*engine.GameObject
	screen  *Screen
}

// Anchor returns the transform of a named point.
func (o *Office) Anchor(name string) (engine.Transform, error) {
	t, ok := o.Anchors[name]
	if !ok {
		return engine.Transform{}, fmt.Errorf("%w: %s", ErrMissingAnchor, name)
	}
	return t, nil
}

// RenderTarget returns the terminal screen.
func (o *Office) RenderTarget() (Screen, error) {
	if o.screen == nil {
		return Screen{}, fmt.Errorf("%w: render target", ErrMissingAnchor)
	}
	return *o.screen, nil
}

// Build spawns every entry into scene and world. Entries that fail validation are logged and skipped.
// A nil factory leaves sensors without handlers.
func Build(l *Layout, scene *engine.Scene, world engine.WorldAccess, sensors SensorFactory) *Office {
	o := &Office{Anchors: make(map[string]engine.Transform)}
	for i := range l.Entries {
		e := l.Entries[i]
		if e.Kind == "" {
			if err := fromLegacyName(&e); err != nil {
				log.Printf("Office: skipping %q: %v", e.Name, err)
				continue
			}
		}
		if err := validateEntry(&e); err != nil {
			log.Printf("Office: skipping %q: %v", e.Name, err)
			continue
		}

		t := transformOf(e)
		switch e.Kind {
		case KindPoint:
			o.Anchors[e.Name] = t
			continue
		case KindRenderTarget:
			if o.screen != nil {
				log.Printf("Office: extra render target %q ignored", e.Name)
				continue
			}
			o.screen = &Screen{Transform: t, Size: e.Size.Vector3()}
			continue
		}

		if scene.FindByName(e.Name) != nil {
			log.Printf("Office: duplicate object name %q", e.Name)
		}
		obj := buildObject(e, sensors)
		obj.Transform = t
		scene.AddGameObject(obj)
		if engine.GetComponent[*components.BoxCollider](obj) != nil {
			world.SpawnObject(obj)
		}
		o.Objects = append(o.Objects, obj)
	}
	log.Printf("Office: built %d objects, %d anchors", len(o.Objects), len(o.Anchors))
	return o
}

func transformOf(e Entry) engine.Transform {
	return engine.Transform{
		Position: e.Position.Vector3(),
		Rotation: e.Rotation.Vector3(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func buildObject(e Entry, sensors SensorFactory) *engine.GameObject {
	obj := engine.NewGameObject(e.Name)
	size := e.Size.Vector3()
	half := rl.Vector3Scale(size, 0.5)

	tint := rl.LightGray
	if c, ok := ParseColor(e.Color); ok && e.Color != "" {
		tint = c
	}

	switch e.Kind {
	case KindMesh, KindEmissive:
		r := components.NewRenderable(size, tint)
		r.Emissive = e.Kind == KindEmissive
		r.Label = e.Label
		obj.AddComponent(r)

	case KindCollider:
		obj.AddComponent(components.NewBoxCollider(half))
		if e.Color != "" {
			obj.AddComponent(components.NewRenderable(size, tint))
		}

	case KindSensor:
		col := components.NewBoxCollider(half)
		col.IsSensor = true
		col.Filter = components.GroupDynamic
		obj.AddComponent(col)
		if e.Color != "" {
			obj.AddComponent(components.NewRenderable(size, tint))
		}
		if sensors != nil {
			k, _ := sensor.ParseKind(e.Sensor)
			paint, _ := code.ParseColor(e.Paint)
			obj.AddComponent(sensors(k, paint))
		}

	case KindDynamic:
		col := components.NewBoxCollider(half)
		col.Membership = components.GroupDynamic
		col.Filter = components.GroupStatic | components.GroupDynamic | components.GroupPlayer
		obj.AddComponent(col)
		rb := components.NewRigidbody()
		if e.Mass > 0 {
			rb.Mass = e.Mass
		}
		if e.Friction != nil {
			rb.Friction = *e.Friction
		}
		if e.Restitution != nil {
			rb.Restitution = *e.Restitution
		}
		obj.AddComponent(rb)
		obj.AddComponent(components.NewRenderable(size, tint))

	case KindInteractable:
		col := components.NewBoxCollider(half)
		col.Membership = components.GroupStatic | components.GroupInteractable
		obj.AddComponent(col)
		obj.AddComponent(components.NewInteractable(components.KindTerminal))
		r := components.NewRenderable(size, tint)
		r.Label = e.Label
		obj.AddComponent(r)
	}
	return obj
}
