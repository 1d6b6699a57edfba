// Package interaction turns mouse clicks on the thing under the crosshair into held-slot changes.
package interaction

import (
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

func (b Button) String() string {
	if b == ButtonLeft {
		return "left"
	}
	return "right"
}

// Input is the set of mouse buttons freshly pressed this frame.
type Input struct {
	LeftPressed  bool
	RightPressed bool
}

// ReadInput polls raylib for fresh mouse presses.
func ReadInput() Input {
	return Input{
		LeftPressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		RightPressed: rl.IsMouseButtonPressed(rl.MouseRightButton),
	}
}

// pressed lists the fresh buttons, left first.
func (in Input) pressed() []Button {
	var out []Button
	if in.LeftPressed {
		out = append(out, ButtonLeft)
	}
	if in.RightPressed {
		out = append(out, ButtonRight)
	}
	return out
}

// Intent is one click. Target is empty when the click hit nothing interactable.
type Intent struct {
	Button Button
	Target engine.ObjectRef
	Dir    rl.Vector3
	TOI    float32
}

// Aimed reports whether the click hit something.
func (i Intent) Aimed() bool {
	return i.Target.IsValid()
}

// Frame is the detector's output for one step.
type Frame struct {
	Intents []Intent
}

// Raycaster is the physics query the detector needs.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, filter components.Group) (engine.RaycastResult, bool)
}

// Detector casts the view ray every step and emits click intents.
type Detector struct {
	Ray      Raycaster
	State    *player.StateMachine
	LookedAt *player.LookedAt
	Reach    float32
}

func NewDetector(ray Raycaster, state *player.StateMachine, lookedAt *player.LookedAt, reach float32) *Detector {
	return &Detector{Ray: ray, State: state, LookedAt: lookedAt, Reach: reach}
}

// Step refreshes the looked-at cache and turns fresh presses into intents.
// A click on something within reach yields a single aimed intent for the first button (left before right).
// With nothing under the crosshair every fresh press yields an unaimed intent.
// Nothing happens while the player is at the terminal.
func (d *Detector) Step(eye, dir rl.Vector3, in Input) Frame {
	if d.State.Is(player.Interacting) {
		return Frame{}
	}

	hit, ok := d.Ray.Raycast(eye, dir, d.Reach, components.GroupInteractable)
	if !ok || hit.GameObject == nil || hit.Distance >= d.Reach {
		d.LookedAt.Clear()
		var frame Frame
		for _, b := range in.pressed() {
			frame.Intents = append(frame.Intents, Intent{Button: b, Dir: dir})
		}
		return frame
	}

	d.LookedAt.Set(hit.GameObject, hit.Distance)
	pressed := in.pressed()
	if len(pressed) == 0 {
		return Frame{}
	}
	return Frame{Intents: []Intent{{
		Button: pressed[0],
		Target: engine.RefTo(hit.GameObject),
		Dir:    dir,
		TOI:    hit.Distance,
	}}}
}
