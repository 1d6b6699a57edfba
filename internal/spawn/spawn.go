// Package spawn populates the desk with a level's lines and the tool desk with the hammer.
package spawn

import (
	"log"
	"math/rand"

	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
	"gitoffice/internal/grouping"
	"gitoffice/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HammerMass = 0.05
	// DeskSpacing is the gap between neighbouring lines on the desk.
	DeskSpacing = 0.15
	// DeskRow is how many lines fit side by side before the next layer is stacked on top.
	DeskRow = 24
)

var HammerHalfExtents = rl.Vector3{X: 0.08, Y: 0.1, Z: 0.7}

// Anchors resolves named points in the office.
type Anchors interface {
	Anchor(name string) (engine.Transform, error)
}

type Spawner struct {
	Scene   *engine.Scene
	World   engine.WorldAccess
	Grouper *grouping.Grouper
	Held    *player.HeldSlot
	State   *player.StateMachine
	Anchors Anchors
	Rand    *rand.Rand
	// DeskAnchor and ToolAnchor name the points lines and the hammer appear at.
	DeskAnchor string
	ToolAnchor string
}

func New(scene *engine.Scene, world engine.WorldAccess, gr *grouping.Grouper, held *player.HeldSlot, state *player.StateMachine, anchors Anchors, rng *rand.Rand) *Spawner {
	return &Spawner{
		Scene:      scene,
		World:      world,
		Grouper:    gr,
		Held:       held,
		State:      state,
		Anchors:    anchors,
		Rand:       rng,
		DeskAnchor: "desk",
		ToolAnchor: "tooldesk",
	}
}

// SpawnLevel lays every line of block out on the desk in shuffled order and puts the hammer on the tool desk.
// A missing anchor falls back to the origin with a warning.
func (s *Spawner) SpawnLevel(block code.Block) []*engine.GameObject {
	desk := s.anchor(s.DeskAnchor)
	order := make([]int, len(block))
	for i := range order {
		order[i] = i
	}
	if s.Rand != nil {
		s.Rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	lines := make([]*engine.GameObject, 0, len(block))
	perRow := min(len(block), DeskRow)
	for slot, idx := range order {
		g := grouping.NewLine(block[idx])
		col, layer := slot%DeskRow, slot/DeskRow
		offset := rl.Vector3{
			X: DeskSpacing * (float32(col) - float32(perRow-1)/2),
			Y: code.LineHalfHeight + float32(layer)*code.LineHalfHeight*2.5,
		}
		g.Transform.Position = rl.Vector3Add(desk.Position, offset)
		s.Scene.AddGameObject(g)
		s.World.SpawnObject(g)
		lines = append(lines, g)
	}

	s.spawnHammer()
	log.Printf("Spawn: %d lines", len(lines))
	return lines
}

// NewHammer builds the hammer prop.
func NewHammer() *engine.GameObject {
	g := engine.NewGameObject("hammer")
	col := components.NewBoxCollider(HammerHalfExtents)
	col.Membership = components.GroupDynamic | components.GroupInteractable
	col.Filter = components.GroupStatic | components.GroupDynamic | components.GroupPlayer
	g.AddComponent(col)
	rb := components.NewRigidbody()
	rb.Mass = HammerMass
	g.AddComponent(rb)
	g.AddComponent(components.NewInteractable(components.KindHammer))
	g.AddComponent(components.NewRenderable(rl.Vector3Scale(HammerHalfExtents, 2), rl.Maroon))
	return g
}

func (s *Spawner) spawnHammer() {
	tool := s.anchor(s.ToolAnchor)
	g := NewHammer()
	g.Transform.Position = rl.Vector3Add(tool.Position, rl.Vector3{Y: HammerHalfExtents.Y})
	g.Transform.Rotation = tool.Rotation
	s.Scene.AddGameObject(g)
	s.World.SpawnObject(g)
}

func (s *Spawner) anchor(name string) engine.Transform {
	t, err := s.Anchors.Anchor(name)
	if err != nil {
		log.Printf("Spawn: %v, using origin", err)
		return engine.Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	}
	return t
}

// DespawnCode removes every line, bundle and hammer from the scene, held or not, and empties the held slot.
func (s *Spawner) DespawnCode() int {
	var doomed []*engine.GameObject
	for _, g := range engine.Find[*components.Interactable](s.Scene) {
		if kind, _ := components.KindOf(g); kind != components.KindTerminal {
			doomed = append(doomed, g)
		}
	}
	for _, g := range doomed {
		s.Grouper.Despawn(g)
	}
	if !s.Held.IsEmpty() {
		s.Held.Clear()
		if s.State != nil && s.State.Is(player.Holding) {
			s.State.Change(player.Idle)
		}
	}
	return len(doomed)
}
