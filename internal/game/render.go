package game

import (
	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/office"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screen texture size in pixels; 15 rows of 64px text fill its height.
const (
	ScreenTextureWidth  = 1600
	ScreenTextureHeight = 960
	screenFontSize      = 48
	screenLineHeight    = 64

	// LabelRange is how close the eye must be for a label to be drawn.
	LabelRange    = 10
	labelFontSize = 20
)

// Renderer draws every Renderable as a shaded box and the terminal text onto the in-world screen.
type Renderer struct {
	screen      office.Screen
	target      rl.RenderTexture2D
	screenModel rl.Model
	ready       bool

	// Drawn is how many renderables passed culling last frame.
	Drawn int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Initialize allocates the screen render texture. Needs a GL context.
func (r *Renderer) Initialize(screen office.Screen) {
	r.screen = screen
	r.target = rl.LoadRenderTexture(ScreenTextureWidth, ScreenTextureHeight)
	mesh := rl.GenMeshPlane(screen.Size.X, screen.Size.Y, 1, 1)
	r.screenModel = rl.LoadModelFromMesh(mesh)
	r.screenModel.Materials.Maps.Texture = r.target.Texture
	r.ready = true
}

// DrawScreen renders the terminal scrollback into the screen texture. Call outside BeginDrawing.
func (r *Renderer) DrawScreen(lines []string) {
	if !r.ready {
		return
	}
	rl.BeginTextureMode(r.target)
	rl.ClearBackground(rl.NewColor(12, 16, 12, 255))
	for i, ln := range lines {
		rl.DrawText(ln, 24, int32(16+i*screenLineHeight), screenFontSize, rl.Lime)
	}
	rl.EndTextureMode()
}

// DrawScene draws the scene. Call inside BeginMode3D.
func (r *Renderer) DrawScene(camera rl.Camera3D, scene *engine.Scene) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(camera, aspect)
	r.Drawn = 0

	for _, g := range scene.GameObjects {
		rend := engine.GetComponent[*components.Renderable](g)
		if rend == nil || !g.Active {
			continue
		}
		pos := g.WorldPosition()
		if !frustum.ContainsBox(pos, rend.Size) {
			continue
		}
		r.Drawn++
		drawBox(pos, g.WorldRotation(), rend.Size, colorOf(g, rend), rend.Emissive)
	}

	if r.ready {
		t := r.screen.Transform
		// The plane mesh lies flat; stand it up facing +Z.
		rl.DrawModelEx(r.screenModel, t.Position, rl.Vector3{X: 1}, 90, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.White)
	}
}

type label struct {
	Text string
	At   rl.Vector3
}

// visibleLabels collects the labelled renderables in view and within LabelRange.
func visibleLabels(camera rl.Camera3D, aspect float32, scene *engine.Scene) []label {
	frustum := ExtractFrustum(camera, aspect)
	var out []label
	for _, g := range scene.GameObjects {
		rend := engine.GetComponent[*components.Renderable](g)
		if rend == nil || rend.Label == "" || !g.Active {
			continue
		}
		pos := g.WorldPosition()
		if rl.Vector3Distance(pos, camera.Position) > LabelRange || !frustum.ContainsBox(pos, rend.Size) {
			continue
		}
		out = append(out, label{Text: rend.Label, At: pos})
	}
	return out
}

// DrawLabels writes each visible label centred over its object. Call after EndMode3D.
func (r *Renderer) DrawLabels(camera rl.Camera3D, scene *engine.Scene) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	for _, l := range visibleLabels(camera, aspect, scene) {
		p := rl.GetWorldToScreen(l.At, camera)
		w := rl.MeasureText(l.Text, labelFontSize)
		rl.DrawText(l.Text, int32(p.X)-w/2, int32(p.Y)-labelFontSize/2, labelFontSize, rl.RayWhite)
	}
}

func drawBox(pos, rot, size rl.Vector3, tint rl.Color, emissive bool) {
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.DrawCube(rl.Vector3{}, size.X, size.Y, size.Z, tint)
	if !emissive {
		rl.DrawCubeWires(rl.Vector3{}, size.X, size.Y, size.Z, rl.ColorBrightness(tint, -0.4))
	}
	rl.PopMatrix()
}

// colorOf picks the draw colour: lines wear their paint, everything else its tint.
func colorOf(g *engine.GameObject, rend *components.Renderable) rl.Color {
	if cl := engine.GetComponent[*components.CodeLine](g); cl != nil {
		return PaintColor(cl.Color)
	}
	return rend.Tint
}

// PaintColor maps a line's paint to its on-screen colour.
func PaintColor(c code.Color) rl.Color {
	switch c {
	case code.Green:
		return rl.Lime
	case code.Red:
		return rl.Red
	case code.Normal:
		return rl.RayWhite
	}
	return rl.Gray
}

func (r *Renderer) Unload() {
	if !r.ready {
		return
	}
	// The model does not own the render texture.
	r.screenModel.Materials.Maps.Texture = rl.Texture2D{}
	rl.UnloadModel(r.screenModel)
	rl.UnloadRenderTexture(r.target)
	r.ready = false
}
