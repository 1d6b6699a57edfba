package sensor

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

type fixture struct {
	env     *Env
	world   *physics.PhysicsWorld
	sounds  *audio.Recorder
	scanned [][]code.Painted
}

func newFixture() *fixture {
	f := &fixture{world: physics.NewPhysicsWorld(), sounds: &audio.Recorder{}}
	scene := engine.NewScene("test")
	f.env = &Env{
		Scene:   scene,
		Grouper: grouping.New(scene, f.world, rand.New(rand.NewSource(3))),
		Held:    &player.HeldSlot{},
		State:   player.NewStateMachine(),
		Audio:   f.sounds,
		Scan:    func(lines []code.Painted) { f.scanned = append(f.scanned, lines) },
	}
	return f
}

func (f *fixture) line(text string, d code.Diff, pos rl.Vector3) *engine.GameObject {
	g := grouping.NewLine(code.Line{Code: text, Diff: d})
	g.Transform.Position = pos
	f.env.Scene.AddGameObject(g)
	f.world.AddObject(g)
	return g
}

func (f *fixture) volume(kind Kind, paint code.Color) *engine.GameObject {
	g := engine.NewGameObject("sensor_" + kind.String())
	col := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	col.IsSensor = true
	col.Filter = components.GroupDynamic
	g.AddComponent(col)
	g.AddComponent(New(kind, paint, f.env))
	f.env.Scene.AddGameObject(g)
	f.world.AddObject(g)
	return g
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Painter ")
	require.NoError(t, err)
	assert.Equal(t, Painter, k)
	_, err = ParseKind("stapler")
	assert.Error(t, err)
}

func TestScannerCapturesBundleInOrder(t *testing.T) {
	f := newFixture()
	bundle := f.env.Grouper.AttachLine(f.line("b", code.Pos, rl.Vector3{}), f.line("a", code.Eq, rl.Vector3{}))
	scanner := New(Scanner, code.None, f.env).(engine.TriggerHandler)

	scanner.OnTriggerEnter(bundle)
	require.Len(t, f.scanned, 1)
	assert.Equal(t, []code.Painted{{Code: "a", Color: code.Normal}, {Code: "b", Color: code.Green}}, f.scanned[0])
	assert.Equal(t, []audio.Cue{audio.CueScannerCapture}, f.sounds.Cues)
}

func TestScannerIgnoresProps(t *testing.T) {
	f := newFixture()
	scanner := New(Scanner, code.None, f.env).(engine.TriggerHandler)
	scanner.OnTriggerEnter(engine.NewGameObject("hammer"))
	assert.Empty(t, f.scanned)
	assert.Empty(t, f.sounds.Cues)
}

func TestPainterRecoloursEveryMember(t *testing.T) {
	f := newFixture()
	bundle := f.env.Grouper.AttachLine(f.line("b", code.Pos, rl.Vector3{}), f.line("a", code.Eq, rl.Vector3{}))
	painter := New(Painter, code.Red, f.env).(engine.TriggerHandler)

	painter.OnTriggerEnter(bundle)
	for _, p := range grouping.Painted(f.env.Scene, bundle) {
		assert.Equal(t, code.Red, p.Color, p.Code)
	}
	assert.Equal(t, []audio.Cue{audio.CuePaint}, f.sounds.Cues)
}

func TestDeleterDespawnsCode(t *testing.T) {
	f := newFixture()
	bundle := f.env.Grouper.AttachLine(f.line("b", code.Pos, rl.Vector3{}), f.line("a", code.Eq, rl.Vector3{}))
	deleter := New(Deleter, code.None, f.env).(engine.TriggerHandler)

	deleter.OnTriggerEnter(bundle)
	assert.False(t, f.env.Scene.Contains(bundle))
	assert.False(t, f.world.Contains(bundle))
	assert.Empty(t, engine.Find[*components.CodeLine](f.env.Scene))
	assert.Equal(t, []audio.Cue{audio.CueDelete}, f.sounds.Cues)
}

func TestDeleterReleasesHeldItem(t *testing.T) {
	f := newFixture()
	line := f.line("a", code.Rem, rl.Vector3{})
	f.env.Held.Hold(player.HeldLine, line)
	require.True(t, f.env.State.Change(player.Holding))

	New(Deleter, code.None, f.env).(engine.TriggerHandler).OnTriggerEnter(line)
	assert.True(t, f.env.Held.IsEmpty())
	assert.Equal(t, player.Idle, f.env.State.Current())
}

func TestDeleterIgnoresHammer(t *testing.T) {
	f := newFixture()
	hammer := engine.NewGameObject("hammer")
	hammer.AddComponent(components.NewInteractable(components.KindHammer))
	f.env.Scene.AddGameObject(hammer)

	New(Deleter, code.None, f.env).(engine.TriggerHandler).OnTriggerEnter(hammer)
	assert.True(t, f.env.Scene.Contains(hammer))
	assert.Empty(t, f.sounds.Cues)
}

func TestScannerFiresFromPhysics(t *testing.T) {
	f := newFixture()
	f.volume(Scanner, code.None)
	f.line("a", code.Neg, rl.Vector3{Y: 0.5})

	f.world.Update(1.0 / 60)
	require.Len(t, f.scanned, 1)
	assert.Equal(t, []code.Painted{{Code: "a", Color: code.Red}}, f.scanned[0])

	f.world.Update(1.0 / 60)
	assert.Len(t, f.scanned, 1, "staying inside must not rescan")
}
