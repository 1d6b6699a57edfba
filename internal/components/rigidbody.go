package components

import (
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec
	SleepTimeThreshold     = 0.3  // seconds of low velocity before sleeping
)

// BodyType selects how the physics world treats a rigidbody.
type BodyType int

const (
	// Dynamic bodies fall, bounce and take impulses.
	Dynamic BodyType = iota
	// Fixed bodies never move on their own; held items are Fixed.
	Fixed
	// Kinematic bodies are moved by code and push dynamic bodies (the player).
	Kinematic
)

func (b BodyType) String() string {
	switch b {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed"
	case Kinematic:
		return "kinematic"
	}
	return "unknown"
}

type Rigidbody struct {
	engine.BaseComponent
	BodyType    BodyType
	Velocity    rl.Vector3
	Mass        float32
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = stops immediately
	UseGravity  bool

	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		BodyType:    Dynamic,
		Mass:        1.0,
		Restitution: 0.2,
		Friction:    0.5,
		UseGravity:  true,
		CanSleep:    true,
	}
}

// ApplyImpulse changes velocity by impulse/mass and wakes the body.
// Non-dynamic bodies ignore impulses.
func (r *Rigidbody) ApplyImpulse(impulse rl.Vector3) {
	if r.BodyType != Dynamic {
		return
	}
	mass := r.Mass
	if mass <= 0 {
		mass = 1
	}
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(impulse, 1/mass))
	r.Wake()
}

// SetBodyType switches the body type, zeroing velocity when the body stops being dynamic.
func (r *Rigidbody) SetBodyType(t BodyType) {
	r.BodyType = t
	if t != Dynamic {
		r.Velocity = rl.Vector3{}
	}
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep after it stays slow long enough.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}
	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
