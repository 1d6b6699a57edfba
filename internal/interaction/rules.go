package interaction

import (
	"gitoffice/internal/audio"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning for strikes and throws.
const (
	HammerImpulse  = 0.05
	HammerSplitTOI = 1.5
	ThrowImpulse   = 0.05
	ThrowDistance  = 2.0
)

// Rule names, in priority order.
const (
	RuleAttachLine   = "attach-line"
	RuleAttachBundle = "attach-bundle"
	RuleHammerLine   = "hammer-line"
	RuleHammerBundle = "hammer-bundle"
	RuleHammerMiss   = "hammer-miss"
	RuleTerminal     = "terminal"
	RulePickup       = "pickup"
	RuleThrow        = "throw"
	RuleSwap         = "swap"
)

// DefaultRules returns the game's interaction rules, highest priority first.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleAttachLine, Match: matchAttach(player.HeldLine), Apply: applyAttachLine},
		{Name: RuleAttachBundle, Match: matchAttach(player.HeldBundle), Apply: applyAttachBundle},
		{Name: RuleHammerLine, Match: matchHammerLine, Apply: applyHammerLine},
		{Name: RuleHammerBundle, Match: matchHammerBundle, Apply: applyHammerBundle},
		{Name: RuleHammerMiss, Match: matchHammerMiss, Apply: applyHammerMiss},
		{Name: RuleTerminal, Match: matchTerminal, Apply: applyTerminal},
		{Name: RulePickup, Match: matchPickup, Apply: applyPickup},
		{Name: RuleThrow, Match: matchThrow, Apply: applyThrow},
		{Name: RuleSwap, Match: matchSwap, Apply: applySwap},
	}
}

func matchAttach(held player.HeldKind) func(*Context, Intent, *engine.GameObject) bool {
	return func(c *Context, in Intent, target *engine.GameObject) bool {
		return in.Button == ButtonLeft && c.Held.Kind() == held &&
			kindIs(target, components.KindLineOfCode, components.KindBundle)
	}
}

func applyAttachLine(c *Context, _ Intent, target *engine.GameObject) {
	if c.Grouper.AttachLine(c.Held.Object(c.Scene), target) == nil {
		return
	}
	finishAttach(c)
}

func applyAttachBundle(c *Context, _ Intent, target *engine.GameObject) {
	if c.Grouper.MergeBundle(c.Held.Object(c.Scene), target) == nil {
		return
	}
	finishAttach(c)
}

func finishAttach(c *Context) {
	c.Held.Clear()
	c.State.Change(player.Idle)
	c.play(audio.CueAttach)
}

func matchHammerLine(c *Context, in Intent, target *engine.GameObject) bool {
	return in.Button == ButtonLeft && c.Held.Kind() == player.HeldHammer &&
		kindIs(target, components.KindLineOfCode)
}

// applyHammerLine knocks the line along the ray with the vertical component flipped.
func applyHammerLine(c *Context, in Intent, target *engine.GameObject) {
	if rb := engine.GetComponent[*components.Rigidbody](target); rb != nil {
		dir := rl.Vector3{X: in.Dir.X, Y: -in.Dir.Y, Z: in.Dir.Z}
		rb.ApplyImpulse(rl.Vector3Scale(dir, HammerImpulse))
	}
	c.play(audio.CueHammerHit)
}

// Bundles only shatter from up close.
func matchHammerBundle(c *Context, in Intent, target *engine.GameObject) bool {
	return in.Button == ButtonLeft && c.Held.Kind() == player.HeldHammer &&
		kindIs(target, components.KindBundle) && in.TOI <= HammerSplitTOI
}

func applyHammerBundle(c *Context, _ Intent, target *engine.GameObject) {
	c.Grouper.Split(target)
	c.play(audio.CueHammerHit)
}

func matchHammerMiss(c *Context, in Intent, _ *engine.GameObject) bool {
	return in.Button == ButtonLeft && c.Held.Kind() == player.HeldHammer && !in.Aimed()
}

func applyHammerMiss(c *Context, _ Intent, _ *engine.GameObject) {
	c.play(audio.CueHammerMiss)
}

func matchTerminal(_ *Context, in Intent, target *engine.GameObject) bool {
	return in.Button == ButtonLeft && kindIs(target, components.KindTerminal)
}

// applyTerminal sits the player at the terminal. Holding has no direct edge to Interacting,
// so it steps through Idle; the held item stays in the slot.
func applyTerminal(c *Context, _ Intent, _ *engine.GameObject) {
	if c.State.Is(player.Holding) {
		c.State.Change(player.Idle)
	}
	if c.State.Change(player.Interacting) {
		c.play(audio.CueTerminalEnter)
	}
}

func matchPickup(c *Context, in Intent, target *engine.GameObject) bool {
	return in.Button == ButtonLeft && c.Held.IsEmpty() &&
		kindIs(target, components.KindHammer, components.KindLineOfCode, components.KindBundle)
}

func applyPickup(c *Context, _ Intent, target *engine.GameObject) {
	kind, _ := components.KindOf(target)
	held, _ := player.HeldKindFor(kind)
	grab(c, target, held)
	c.Held.Hold(held, target)
	c.State.Change(player.Holding)
	c.play(audio.CuePickup)
}

func matchThrow(c *Context, in Intent, _ *engine.GameObject) bool {
	return in.Button == ButtonRight && !c.Held.IsEmpty() && !in.Aimed()
}

// applyThrow drops the held item ahead of the eye and launches it along the view.
// Heavier items get a proportionally larger push.
func applyThrow(c *Context, _ Intent, _ *engine.GameObject) {
	obj := c.Held.Object(c.Scene)
	if obj == nil {
		return
	}
	fps := c.controller()
	look := fps.GetLookDirection()
	pos := rl.Vector3Add(fps.Eye(), rl.Vector3Scale(look, ThrowDistance))

	mult := throwMultiplier(c, obj)
	release(c, obj, pos, rl.Vector3{})
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		rb.Velocity = fps.Velocity
		rb.ApplyImpulse(rl.Vector3Scale(look, ThrowImpulse*mult))
	}

	c.Held.Clear()
	c.State.Change(player.Idle)
	c.play(audio.CueThrow)
}

func throwMultiplier(c *Context, obj *engine.GameObject) float32 {
	switch c.Held.Kind() {
	case player.HeldHammer:
		return 4
	case player.HeldBundle:
		if b := engine.GetComponent[*components.Bundle](obj); b != nil && b.Len() > 0 {
			return float32(b.Len())
		}
	}
	return 1
}

func matchSwap(c *Context, in Intent, target *engine.GameObject) bool {
	return in.Button == ButtonRight && !c.Held.IsEmpty() &&
		kindIs(target, components.KindHammer, components.KindLineOfCode, components.KindBundle)
}

// applySwap puts the held item where the target was and picks the target up.
func applySwap(c *Context, _ Intent, target *engine.GameObject) {
	old := c.Held.Object(c.Scene)
	if old == nil {
		return
	}
	kind, _ := components.KindOf(target)
	held, _ := player.HeldKindFor(kind)
	pos, rot := target.WorldPosition(), target.WorldRotation()

	grab(c, target, held)
	release(c, old, pos, rot)
	c.Held.Hold(held, target)
	c.play(audio.CuePickup)
}
