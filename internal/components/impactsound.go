package components

import (
	"gitoffice/internal/audio"
	"gitoffice/internal/engine"
)

// DefaultImpactCooldown is the quiet time after each impact, in seconds.
const DefaultImpactCooldown = 0.15

// ImpactSound plays the collision cue when its object starts touching something solid.
// Resting contact jitters in and out of overlap, so repeats inside Cooldown are dropped.
type ImpactSound struct {
	engine.BaseComponent
	Audio    audio.Player
	Cooldown float32

	wait float32
}

func NewImpactSound(p audio.Player) *ImpactSound {
	return &ImpactSound{Audio: p, Cooldown: DefaultImpactCooldown}
}

func (s *ImpactSound) Update(deltaTime float32) {
	if s.wait > 0 {
		s.wait -= deltaTime
	}
}

func (s *ImpactSound) OnCollisionEnter(other *engine.GameObject) {
	if s.Audio == nil || s.wait > 0 {
		return
	}
	s.wait = s.Cooldown
	s.Audio.Play(audio.CueCollision)
}

func (s *ImpactSound) OnCollisionExit(other *engine.GameObject) {}
