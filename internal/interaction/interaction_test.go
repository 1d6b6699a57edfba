package interaction

import (
	"math/rand"
	"testing"

	"gitoffice/internal/audio"
	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/grouping"
	"gitoffice/internal/physics"
	"gitoffice/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRay struct {
	hit  *engine.GameObject
	dist float32
}

func (f fakeRay) Raycast(origin, direction rl.Vector3, maxDistance float32, filter components.Group) (engine.RaycastResult, bool) {
	if f.hit == nil {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{GameObject: f.hit, Distance: f.dist}, true
}

type rig struct {
	ctx      *Context
	resolver *Resolver
	world    *physics.PhysicsWorld
	sounds   *audio.Recorder
}

func newRig() *rig {
	scene := engine.NewScene("test")
	world := physics.NewPhysicsWorld()
	sounds := &audio.Recorder{}

	p := engine.NewGameObject("player")
	p.AddComponent(components.NewFPSController())
	scene.AddGameObject(p)
	vm := engine.NewGameObject("viewmodel")
	scene.AddGameObject(vm)

	ctx := &Context{
		Scene:     scene,
		World:     world,
		Grouper:   grouping.New(scene, world, rand.New(rand.NewSource(7))),
		State:     player.NewStateMachine(),
		Held:      &player.HeldSlot{},
		Audio:     sounds,
		Player:    p,
		ViewModel: vm,
	}
	return &rig{ctx: ctx, resolver: NewResolver(ctx), world: world, sounds: sounds}
}

func (r *rig) line(text string, pos rl.Vector3) *engine.GameObject {
	g := grouping.NewLine(code.Line{Code: text, Diff: code.Eq})
	g.Transform.Position = pos
	r.ctx.Scene.AddGameObject(g)
	r.world.AddObject(g)
	return g
}

func (r *rig) hammer(pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject("hammer")
	g.Transform.Position = pos
	col := components.NewBoxCollider(rl.Vector3{X: 0.08, Y: 0.1, Z: 0.7})
	col.Membership = components.GroupDynamic | components.GroupInteractable
	g.AddComponent(col)
	rb := components.NewRigidbody()
	rb.Mass = 0.05
	g.AddComponent(rb)
	g.AddComponent(components.NewInteractable(components.KindHammer))
	r.ctx.Scene.AddGameObject(g)
	r.world.AddObject(g)
	return g
}

func (r *rig) terminal() *engine.GameObject {
	g := engine.NewGameObject("terminal")
	g.AddComponent(components.NewInteractable(components.KindTerminal))
	r.ctx.Scene.AddGameObject(g)
	return g
}

func click(b Button, target *engine.GameObject, toi float32) Frame {
	return Frame{Intents: []Intent{{Button: b, Target: engine.RefTo(target), Dir: rl.Vector3{Z: -1}, TOI: toi}}}
}

func (r *rig) pickup(t *testing.T, obj *engine.GameObject) {
	t.Helper()
	require.Equal(t, []string{RulePickup}, r.resolver.Resolve(click(ButtonLeft, obj, 1)))
	r.sounds.Reset()
}

func TestDetectorUnaimedPresses(t *testing.T) {
	sm := player.NewStateMachine()
	looked := &player.LookedAt{}
	looked.Set(engine.NewGameObject("stale"), 1)
	d := NewDetector(fakeRay{}, sm, looked, 3)

	frame := d.Step(rl.Vector3{}, rl.Vector3{Z: -1}, Input{LeftPressed: true, RightPressed: true})
	require.Len(t, frame.Intents, 2)
	assert.Equal(t, ButtonLeft, frame.Intents[0].Button)
	assert.Equal(t, ButtonRight, frame.Intents[1].Button)
	assert.False(t, frame.Intents[0].Aimed())
	assert.False(t, looked.Ref.IsValid())
}

func TestDetectorAimedClickIsLeftFirst(t *testing.T) {
	target := engine.NewGameObject("line")
	looked := &player.LookedAt{}
	d := NewDetector(fakeRay{hit: target, dist: 1.2}, player.NewStateMachine(), looked, 3)

	assert.Empty(t, d.Step(rl.Vector3{}, rl.Vector3{Z: -1}, Input{}).Intents)
	assert.Equal(t, target.UID, looked.Ref.UID)
	assert.Equal(t, float32(1.2), looked.Distance)

	frame := d.Step(rl.Vector3{}, rl.Vector3{Z: -1}, Input{LeftPressed: true, RightPressed: true})
	require.Len(t, frame.Intents, 1)
	assert.Equal(t, ButtonLeft, frame.Intents[0].Button)
	assert.Equal(t, target.UID, frame.Intents[0].Target.UID)
	assert.Equal(t, float32(1.2), frame.Intents[0].TOI)
}

func TestDetectorIdleWhileInteracting(t *testing.T) {
	sm := player.NewStateMachine()
	require.True(t, sm.Change(player.Interacting))
	looked := &player.LookedAt{}
	d := NewDetector(fakeRay{hit: engine.NewGameObject("x"), dist: 1}, sm, looked, 3)

	assert.Empty(t, d.Step(rl.Vector3{}, rl.Vector3{Z: -1}, Input{LeftPressed: true}).Intents)
	assert.False(t, looked.Ref.IsValid())
}

func TestPickup(t *testing.T) {
	r := newRig()
	line := r.line("a", rl.Vector3{Z: -2})

	fired := r.resolver.Resolve(click(ButtonLeft, line, 1))
	assert.Equal(t, []string{RulePickup}, fired)
	assert.Equal(t, player.HeldLine, r.ctx.Held.Kind())
	assert.True(t, r.ctx.Held.Holds(line))
	assert.Equal(t, player.Holding, r.ctx.State.Current())
	assert.Same(t, r.ctx.ViewModel, line.Parent)
	assert.False(t, r.world.Contains(line))
	assert.False(t, engine.GetComponent[*components.BoxCollider](line).Enabled)
	assert.Equal(t, components.Fixed, engine.GetComponent[*components.Rigidbody](line).BodyType)
	assert.Equal(t, []audio.Cue{audio.CuePickup}, r.sounds.Cues)
}

func TestAttachFiresOnlyOneRule(t *testing.T) {
	r := newRig()
	held := r.line("b", rl.Vector3{})
	target := r.line("a", rl.Vector3{Z: -2})
	r.pickup(t, held)

	fired := r.resolver.Resolve(click(ButtonLeft, target, 1))
	assert.Equal(t, []string{RuleAttachLine}, fired)
	assert.True(t, r.ctx.Held.IsEmpty())
	assert.Equal(t, player.Idle, r.ctx.State.Current())
	assert.Equal(t, []audio.Cue{audio.CueAttach}, r.sounds.Cues)

	bundles := engine.Find[*components.Bundle](r.ctx.Scene)
	require.Len(t, bundles, 1)
	lines := grouping.Painted(r.ctx.Scene, bundles[0])
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Code)
	assert.Equal(t, "b", lines[1].Code)
	assert.Empty(t, r.ctx.ViewModel.Children)
}

func TestAttachBundleOntoLine(t *testing.T) {
	r := newRig()
	bundle := r.ctx.Grouper.AttachLine(r.line("c", rl.Vector3{}), r.line("b", rl.Vector3{}))
	target := r.line("a", rl.Vector3{Z: -2})
	r.pickup(t, bundle)
	assert.Equal(t, player.HeldBundle, r.ctx.Held.Kind())

	assert.Equal(t, []string{RuleAttachBundle}, r.resolver.Resolve(click(ButtonLeft, target, 1)))
	bundles := engine.Find[*components.Bundle](r.ctx.Scene)
	require.Len(t, bundles, 1)
	var got []string
	for _, p := range grouping.Painted(r.ctx.Scene, bundles[0]) {
		got = append(got, p.Code)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.False(t, r.ctx.Scene.Contains(bundle))
}

func TestHammerStrikesLine(t *testing.T) {
	r := newRig()
	r.pickup(t, r.hammer(rl.Vector3{}))
	line := r.line("a", rl.Vector3{Z: -2})

	in := click(ButtonLeft, line, 1)
	in.Intents[0].Dir = rl.Vector3{Y: -1}
	assert.Equal(t, []string{RuleHammerLine}, r.resolver.Resolve(in))
	rb := engine.GetComponent[*components.Rigidbody](line)
	assert.InDelta(t, 2.5, rb.Velocity.Y, 1e-5)
	assert.Equal(t, []audio.Cue{audio.CueHammerHit}, r.sounds.Cues)
	assert.Equal(t, player.HeldHammer, r.ctx.Held.Kind())
}

func TestHammerSplitsBundleOnlyUpClose(t *testing.T) {
	r := newRig()
	r.pickup(t, r.hammer(rl.Vector3{}))
	bundle := r.ctx.Grouper.AttachLine(r.line("b", rl.Vector3{}), r.line("a", rl.Vector3{Z: -1}))

	assert.Empty(t, r.resolver.Resolve(click(ButtonLeft, bundle, 2)))
	assert.Empty(t, r.sounds.Cues)
	assert.True(t, r.ctx.Scene.Contains(bundle))

	assert.Equal(t, []string{RuleHammerBundle}, r.resolver.Resolve(click(ButtonLeft, bundle, 1.5)))
	assert.False(t, r.ctx.Scene.Contains(bundle))
	assert.Len(t, engine.Find[*components.CodeLine](r.ctx.Scene), 2)
	assert.Equal(t, []audio.Cue{audio.CueHammerHit}, r.sounds.Cues)
}

func TestHammerMiss(t *testing.T) {
	r := newRig()
	r.pickup(t, r.hammer(rl.Vector3{}))

	fired := r.resolver.Resolve(Frame{Intents: []Intent{{Button: ButtonLeft}}})
	assert.Equal(t, []string{RuleHammerMiss}, fired)
	assert.Equal(t, []audio.Cue{audio.CueHammerMiss}, r.sounds.Cues)
}

func TestTerminal(t *testing.T) {
	r := newRig()
	term := r.terminal()

	assert.Equal(t, []string{RuleTerminal}, r.resolver.Resolve(click(ButtonLeft, term, 1)))
	assert.Equal(t, player.Interacting, r.ctx.State.Current())
	assert.Equal(t, []audio.Cue{audio.CueTerminalEnter}, r.sounds.Cues)
}

func TestTerminalWhileHoldingKeepsItem(t *testing.T) {
	r := newRig()
	hammer := r.hammer(rl.Vector3{})
	r.pickup(t, hammer)

	assert.Equal(t, []string{RuleTerminal}, r.resolver.Resolve(click(ButtonLeft, r.terminal(), 1)))
	assert.Equal(t, player.Interacting, r.ctx.State.Current())
	assert.Equal(t, player.HeldHammer, r.ctx.Held.Kind())
	assert.True(t, r.ctx.Held.Holds(hammer))
	assert.Equal(t, []audio.Cue{audio.CueTerminalEnter}, r.sounds.Cues)
}

func TestTerminalRefusedStaysQuiet(t *testing.T) {
	r := newRig()
	require.True(t, r.ctx.State.Change(player.Walking))

	assert.Equal(t, []string{RuleTerminal}, r.resolver.Resolve(click(ButtonLeft, r.terminal(), 1)))
	assert.Equal(t, player.Walking, r.ctx.State.Current())
	assert.Empty(t, r.sounds.Cues)
}

func TestThrow(t *testing.T) {
	r := newRig()
	hammer := r.hammer(rl.Vector3{})
	r.pickup(t, hammer)

	fired := r.resolver.Resolve(Frame{Intents: []Intent{{Button: ButtonRight}}})
	assert.Equal(t, []string{RuleThrow}, fired)
	assert.True(t, r.ctx.Held.IsEmpty())
	assert.Equal(t, player.Idle, r.ctx.State.Current())
	assert.Nil(t, hammer.Parent)
	assert.True(t, r.world.Contains(hammer))
	assert.True(t, engine.GetComponent[*components.BoxCollider](hammer).Enabled)

	rb := engine.GetComponent[*components.Rigidbody](hammer)
	assert.Equal(t, components.Dynamic, rb.BodyType)
	assert.InDelta(t, -4, rb.Velocity.Z, 1e-3)
	assert.InDelta(t, -2, hammer.Transform.Position.Z, 1e-3)
	assert.InDelta(t, 1.6, hammer.Transform.Position.Y, 1e-3)
	assert.Equal(t, []audio.Cue{audio.CueThrow}, r.sounds.Cues)
}

func TestRightClickWithEmptyHandsDoesNothing(t *testing.T) {
	r := newRig()
	assert.Empty(t, r.resolver.Resolve(Frame{Intents: []Intent{{Button: ButtonRight}}}))
	assert.Empty(t, r.resolver.Resolve(click(ButtonRight, r.line("a", rl.Vector3{}), 1)))
	assert.Empty(t, r.sounds.Cues)
}

func TestSwap(t *testing.T) {
	r := newRig()
	line := r.line("a", rl.Vector3{})
	r.pickup(t, line)
	hammer := r.hammer(rl.Vector3{X: 1, Y: 0.5, Z: -2})

	assert.Equal(t, []string{RuleSwap}, r.resolver.Resolve(click(ButtonRight, hammer, 1)))
	assert.Equal(t, player.HeldHammer, r.ctx.Held.Kind())
	assert.True(t, r.ctx.Held.Holds(hammer))
	assert.Same(t, r.ctx.ViewModel, hammer.Parent)
	assert.Nil(t, line.Parent)
	assert.Equal(t, rl.Vector3{X: 1, Y: 0.5, Z: -2}, line.Transform.Position)
	assert.True(t, r.world.Contains(line))
	assert.False(t, r.world.Contains(hammer))
	assert.Equal(t, player.Holding, r.ctx.State.Current())
	assert.Equal(t, []audio.Cue{audio.CuePickup}, r.sounds.Cues)
}

func TestStaleTargetIsSkipped(t *testing.T) {
	r := newRig()
	line := r.line("a", rl.Vector3{})
	frame := click(ButtonLeft, line, 1)
	r.ctx.Scene.RemoveGameObject(line)

	assert.Empty(t, r.resolver.Resolve(frame))
	assert.True(t, r.ctx.Held.IsEmpty())
}

func TestTargetWithoutInteractableIsSkipped(t *testing.T) {
	r := newRig()
	plain := engine.NewGameObject("desk")
	r.ctx.Scene.AddGameObject(plain)
	assert.Empty(t, r.resolver.Resolve(click(ButtonLeft, plain, 1)))
}

func TestMissingViewModelSkipsFrame(t *testing.T) {
	r := newRig()
	line := r.line("a", rl.Vector3{})
	r.ctx.Scene.RemoveGameObject(r.ctx.ViewModel)

	assert.Nil(t, r.resolver.Resolve(click(ButtonLeft, line, 1)))
	assert.True(t, r.ctx.Held.IsEmpty())
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		state   player.State
		held    player.HeldKind
		looked  components.Kind
		looking bool
		want    string
	}{
		{"nothing", player.Idle, player.Empty, 0, false, ""},
		{"pickup", player.Idle, player.Empty, components.KindLineOfCode, true, "[MOUSE1] Pickup"},
		{"terminal", player.Holding, player.HeldLine, components.KindTerminal, true, "[MOUSE1] Interact"},
		{"swing", player.Holding, player.HeldHammer, 0, false, "[MOUSE1] Swing\n[MOUSE2] Throw"},
		{"swing at line", player.Holding, player.HeldHammer, components.KindBundle, true, "[MOUSE1] Swing\n[MOUSE2] Swap"},
		{"throw", player.Holding, player.HeldBundle, 0, false, "[MOUSE2] Throw"},
		{"attach", player.Holding, player.HeldLine, components.KindBundle, true, "[MOUSE1] Attach\n[MOUSE2] Swap"},
		{"swap for hammer", player.Holding, player.HeldLine, components.KindHammer, true, "[MOUSE2] Swap"},
		{"typing", player.Interacting, player.Empty, components.KindTerminal, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prompt(tt.state, tt.held, tt.looked, tt.looking))
		})
	}
}
