package components

import (
	"math"

	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MoveInput is one frame of player input.
type MoveInput struct {
	Forward, Back, Left, Right bool
	LookDelta                  rl.Vector2
}

// ReadMoveInput polls raylib for WASD and mouse movement.
func ReadMoveInput() MoveInput {
	return MoveInput{
		Forward:   rl.IsKeyDown(rl.KeyW),
		Back:      rl.IsKeyDown(rl.KeyS),
		Left:      rl.IsKeyDown(rl.KeyA),
		Right:     rl.IsKeyDown(rl.KeyD),
		LookDelta: rl.GetMouseDelta(),
	}
}

type FPSController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	Velocity  rl.Vector3
	EyeHeight float32

	// SpeedMultiplier scales MoveSpeed; the player slows down while carrying things.
	SpeedMultiplier float32
	// Frozen disables look and movement, e.g. while typing at the terminal.
	Frozen bool

	// Input overrides raylib polling when set.
	Input func() MoveInput
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:             -90.0,
		Pitch:           0,
		MoveSpeed:       4.0,
		LookSpeed:       0.1,
		EyeHeight:       1.6,
		SpeedMultiplier: 1,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	read := f.Input
	if read == nil {
		read = ReadMoveInput
	}
	f.Steer(read(), deltaTime)
}

// Steer applies one frame of input.
func (f *FPSController) Steer(in MoveInput, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	if f.Frozen {
		f.Velocity = rl.Vector3{}
		return
	}

	f.Yaw += in.LookDelta.X * f.LookSpeed
	f.Pitch -= in.LookDelta.Y * f.LookSpeed
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if in.Forward {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if in.Back {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if in.Left {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if in.Right {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	speed := f.MoveSpeed * f.SpeedMultiplier
	f.Velocity.X = moveDir.X * speed
	f.Velocity.Z = moveDir.Z * speed

	g.Transform.Position.X += f.Velocity.X * deltaTime
	g.Transform.Position.Z += f.Velocity.Z * deltaTime
}

// Moving reports whether the last Steer produced horizontal motion.
func (f *FPSController) Moving() bool {
	return f.Velocity.X != 0 || f.Velocity.Z != 0
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// GetLookDirection is the unit vector the eye looks along.
func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// Eye is the world-space camera position.
func (f *FPSController) Eye() rl.Vector3 {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	p := g.WorldPosition()
	p.Y += f.EyeHeight
	return p
}
