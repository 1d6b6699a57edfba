// Package sensor implements the office's trigger volumes: the scanner, the paint booths and the shredder.
package sensor

import (
	"fmt"
	"strings"

	"gitoffice/internal/audio"
	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/grouping"
	"gitoffice/internal/player"
)

type Kind int

const (
	Scanner Kind = iota
	Painter
	Deleter
)

func (k Kind) String() string {
	switch k {
	case Scanner:
		return "scanner"
	case Painter:
		return "painter"
	case Deleter:
		return "deleter"
	}
	return "unknown"
}

// ParseKind reads a sensor kind by name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scanner":
		return Scanner, nil
	case "painter":
		return Painter, nil
	case "deleter":
		return Deleter, nil
	}
	return 0, fmt.Errorf("unknown sensor kind %q", s)
}

// Env is what sensors act on.
type Env struct {
	Scene   *engine.Scene
	Grouper *grouping.Grouper
	Held    *player.HeldSlot
	State   *player.StateMachine
	Audio   audio.Player
	// Scan receives the ordered lines the scanner saw.
	Scan func([]code.Painted)
}

func (e *Env) play(c audio.Cue) {
	if e.Audio != nil {
		e.Audio.Play(c)
	}
}

// New builds the trigger component for a sensor. paint is only used by painters.
func New(kind Kind, paint code.Color, env *Env) engine.Component {
	switch kind {
	case Painter:
		return &PaintBooth{Env: env, Color: paint}
	case Deleter:
		return &Shredder{Env: env}
	}
	return &ScanBed{Env: env}
}

// isCode reports whether g is a line or a bundle.
func isCode(g *engine.GameObject) bool {
	return engine.GetComponent[*components.CodeLine](g) != nil ||
		engine.GetComponent[*components.Bundle](g) != nil
}

// ScanBed captures the lines of whatever code lands on it.
type ScanBed struct {
	engine.BaseComponent
	Env *Env
}

func (s *ScanBed) OnTriggerEnter(other *engine.GameObject) {
	lines := grouping.Painted(s.Env.Scene, other)
	if len(lines) == 0 {
		return
	}
	if s.Env.Scan != nil {
		s.Env.Scan(lines)
	}
	s.Env.play(audio.CueScannerCapture)
}

func (s *ScanBed) OnTriggerExit(*engine.GameObject) {}

// PaintBooth recolours every line that passes through it.
type PaintBooth struct {
	engine.BaseComponent
	Env   *Env
	Color code.Color
}

func (p *PaintBooth) OnTriggerEnter(other *engine.GameObject) {
	lines := grouping.CodeLines(p.Env.Scene, other)
	if len(lines) == 0 {
		return
	}
	for _, l := range lines {
		l.Color = p.Color
	}
	p.Env.play(audio.CuePaint)
}

func (p *PaintBooth) OnTriggerExit(*engine.GameObject) {}

// Shredder despawns code dropped into it.
type Shredder struct {
	engine.BaseComponent
	Env *Env
}

func (s *Shredder) OnTriggerEnter(other *engine.GameObject) {
	if !isCode(other) {
		return
	}
	if s.Env.Held != nil && s.Env.Held.Holds(other) {
		s.Env.Held.Clear()
		if s.Env.State != nil {
			s.Env.State.Change(player.Idle)
		}
	}
	s.Env.Grouper.Despawn(other)
	s.Env.play(audio.CueDelete)
}

func (s *Shredder) OnTriggerExit(*engine.GameObject) {}
