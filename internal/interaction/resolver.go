package interaction

import (
	"gitoffice/internal/audio"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/grouping"
	"gitoffice/internal/player"
)

// Context is the state every rule reads and mutates.
type Context struct {
	Scene   *engine.Scene
	World   engine.WorldAccess
	Grouper *grouping.Grouper
	State   *player.StateMachine
	Held    *player.HeldSlot
	Audio   audio.Player

	// Player carries the FPSController. Held items are parented to ViewModel.
	Player    *engine.GameObject
	ViewModel *engine.GameObject
}

// Rule is one entry of the resolver's priority list. Target is nil for unaimed intents.
type Rule struct {
	Name  string
	Match func(c *Context, in Intent, target *engine.GameObject) bool
	Apply func(c *Context, in Intent, target *engine.GameObject)
}

// Resolver runs the first matching rule for each intent.
type Resolver struct {
	Ctx   *Context
	Rules []Rule
}

func NewResolver(ctx *Context) *Resolver {
	return &Resolver{Ctx: ctx, Rules: DefaultRules()}
}

// Resolve applies one rule per intent, in order, and returns the names of the rules that fired.
// Intents whose target vanished or is no longer interactable are skipped.
// Without a player or viewmodel in the scene the whole frame is skipped.
func (r *Resolver) Resolve(frame Frame) []string {
	c := r.Ctx
	if !c.ready() {
		return nil
	}

	var fired []string
	for _, in := range frame.Intents {
		var target *engine.GameObject
		if in.Aimed() {
			target = in.Target.Get(c.Scene)
			if target == nil {
				continue
			}
			if _, ok := components.KindOf(target); !ok {
				continue
			}
		}
		// Drops a held item that was despawned behind our back.
		c.Held.Object(c.Scene)

		for _, rule := range r.Rules {
			if rule.Match(c, in, target) {
				rule.Apply(c, in, target)
				fired = append(fired, rule.Name)
				break
			}
		}
	}
	return fired
}

func (c *Context) ready() bool {
	if c.Scene == nil || !c.Scene.Contains(c.Player) || !c.Scene.Contains(c.ViewModel) {
		return false
	}
	return engine.GetComponent[*components.FPSController](c.Player) != nil
}

func (c *Context) controller() *components.FPSController {
	return engine.GetComponent[*components.FPSController](c.Player)
}

func (c *Context) play(cue audio.Cue) {
	if c.Audio != nil {
		c.Audio.Play(cue)
	}
}

// kindIs reports whether target is one of kinds. Nil targets never match.
func kindIs(target *engine.GameObject, kinds ...components.Kind) bool {
	k, ok := components.KindOf(target)
	if !ok {
		return false
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
