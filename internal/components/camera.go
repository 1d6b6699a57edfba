package components

import (
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders from the eye of the FPSController on the same object.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	fps := engine.GetComponent[*FPSController](g)
	if fps == nil {
		return rl.Camera3D{}
	}
	eye := fps.Eye()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, fps.GetLookDirection()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
