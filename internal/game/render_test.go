package game

import (
	"testing"

	"gitoffice/internal/components"
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelled(scene *engine.Scene, text string, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(text)
	g.Transform.Position = pos
	r := components.NewRenderable(rl.Vector3{X: 1, Y: 1, Z: 0.1}, rl.Red)
	r.Label = text
	g.AddComponent(r)
	scene.AddGameObject(g)
	return g
}

func TestVisibleLabels(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.Vector3{Y: 1.6},
		Target:     rl.Vector3{Y: 1.6, Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}
	scene := engine.NewScene("labels")
	labelled(scene, "SHIP IT", rl.Vector3{Y: 1.6, Z: -5})
	labelled(scene, "behind", rl.Vector3{Y: 1.6, Z: 5})
	labelled(scene, "far", rl.Vector3{Y: 1.6, Z: -40})
	hidden := labelled(scene, "off", rl.Vector3{Y: 1.6, Z: -3})
	hidden.Active = false
	labelled(scene, "", rl.Vector3{Y: 1.6, Z: -2})

	got := visibleLabels(cam, 16.0/9.0, scene)
	require.Len(t, got, 1)
	assert.Equal(t, "SHIP IT", got[0].Text)
	assert.Equal(t, rl.Vector3{Y: 1.6, Z: -5}, got[0].At)
}
