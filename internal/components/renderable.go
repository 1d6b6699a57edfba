package components

import (
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderable draws the object as a tinted box.
// Lines of code ignore Tint and use their paint colour instead.
type Renderable struct {
	engine.BaseComponent
	Size     rl.Vector3
	Tint     rl.Color
	Emissive bool
	Label    string
}

func NewRenderable(size rl.Vector3, tint rl.Color) *Renderable {
	return &Renderable{Size: size, Tint: tint}
}
