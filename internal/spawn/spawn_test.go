package spawn

import (
	"errors"
	"math/rand"
	"testing"

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

type anchors map[string]engine.Transform

func (a anchors) Anchor(name string) (engine.Transform, error) {
	t, ok := a[name]
	if !ok {
		return engine.Transform{}, errors.New("missing " + name)
	}
	return t, nil
}

type fixture struct {
	scene *engine.Scene
	world *physics.PhysicsWorld
	held  *player.HeldSlot
	state *player.StateMachine
	sp    *Spawner
}

func newFixture() *fixture {
	scene := engine.NewScene("test")
	world := physics.NewPhysicsWorld()
	rng := rand.New(rand.NewSource(7))
	held := &player.HeldSlot{}
	state := player.NewStateMachine()
	a := anchors{
		"desk":     {Position: rl.Vector3{X: 0, Y: 1, Z: -4}},
		"tooldesk": {Position: rl.Vector3{X: 4, Y: 1, Z: -4}},
	}
	sp := New(scene, world, grouping.New(scene, world, rng), held, state, a, rng)
	return &fixture{scene: scene, world: world, held: held, state: state, sp: sp}
}

var block = code.ParseBlock("++ a\n-- b\n== c\n!! d\n")

func TestSpawnLevel(t *testing.T) {
	f := newFixture()
	lines := f.sp.SpawnLevel(block)
	require.Len(t, lines, 4)

	var texts []string
	for _, g := range lines {
		cl := engine.GetComponent[*components.CodeLine](g)
		require.NotNil(t, cl)
		texts = append(texts, cl.Line.Code)
		assert.True(t, f.world.Contains(g))
		assert.InDelta(t, 1+code.LineHalfHeight, g.Transform.Position.Y, 1e-5)
		assert.InDelta(t, -4, g.Transform.Position.Z, 1e-5)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, texts)

	hammers := engine.Find[*components.Interactable](f.scene)
	var hammer *engine.GameObject
	for _, g := range hammers {
		if k, _ := components.KindOf(g); k == components.KindHammer {
			hammer = g
		}
	}
	require.NotNil(t, hammer)
	assert.InDelta(t, 4, hammer.Transform.Position.X, 1e-5)
	assert.InDelta(t, HammerMass, engine.GetComponent[*components.Rigidbody](hammer).Mass, 1e-6)
	assert.Equal(t, HammerHalfExtents, engine.GetComponent[*components.BoxCollider](hammer).HalfExtents)
}

func TestSpawnLevelCentresRow(t *testing.T) {
	f := newFixture()
	lines := f.sp.SpawnLevel(block)
	var sum float32
	for _, g := range lines {
		sum += g.Transform.Position.X
	}
	assert.InDelta(t, 0, sum, 1e-4)
}

func TestSpawnLevelStacksLongBlocks(t *testing.T) {
	f := newFixture()
	var long code.Block
	for i := 0; i < DeskRow+2; i++ {
		long = append(long, code.Line{Code: "x", Diff: code.Eq})
	}
	lines := f.sp.SpawnLevel(long)
	top := 0
	for _, g := range lines {
		if g.Transform.Position.Y > 1+code.LineHalfHeight+1e-4 {
			top++
		}
	}
	assert.Equal(t, 2, top)
}

func TestSpawnLevelMissingAnchorFallsBack(t *testing.T) {
	f := newFixture()
	f.sp.DeskAnchor = "nowhere"
	lines := f.sp.SpawnLevel(block[:1])
	require.Len(t, lines, 1)
	assert.InDelta(t, code.LineHalfHeight, lines[0].Transform.Position.Y, 1e-5)
}

func TestDespawnCode(t *testing.T) {
	f := newFixture()
	lines := f.sp.SpawnLevel(block)
	bundle := f.sp.Grouper.AttachLine(lines[0], lines[1])
	require.NotNil(t, bundle)

	terminal := engine.NewGameObject("terminal")
	terminal.AddComponent(components.NewInteractable(components.KindTerminal))
	f.scene.AddGameObject(terminal)

	f.held.Hold(player.HeldLine, lines[2])
	f.state.Change(player.Holding)

	n := f.sp.DespawnCode()
	assert.Equal(t, 4, n)
	assert.True(t, f.held.IsEmpty())
	assert.True(t, f.state.Is(player.Idle))
	assert.Empty(t, engine.Find[*components.CodeLine](f.scene))
	assert.True(t, f.scene.Contains(terminal))
	assert.Empty(t, f.world.Objects)
}
