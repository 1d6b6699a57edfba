// Package game wires the office, the player and the level loop together and runs the window.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gitoffice/internal/audio"
	"gitoffice/internal/code"
	"gitoffice/internal/components"
	"gitoffice/internal/config"
	"gitoffice/internal/engine"
	"gitoffice/internal/grouping"
	"gitoffice/internal/interaction"
	"gitoffice/internal/level"
	"gitoffice/internal/office"
	"gitoffice/internal/physics"
	"gitoffice/internal/player"
	"gitoffice/internal/sensor"
	"gitoffice/internal/spawn"
	"gitoffice/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of everything the player pressed.
type Input struct {
	Move  components.MoveInput
	Mouse interaction.Input
	Keys  terminal.Keys
}

// ReadInput polls raylib for the frame's input.
func ReadInput() Input {
	return Input{
		Move:  components.ReadMoveInput(),
		Mouse: interaction.ReadInput(),
		Keys:  terminal.ReadKeys(),
	}
}

type Game struct {
	Config *config.Config

	Scene     *engine.Scene
	Physics   *physics.PhysicsWorld
	Office    *office.Office
	Player    *engine.GameObject
	ViewModel *engine.GameObject

	State    *player.StateMachine
	Held     *player.HeldSlot
	LookedAt *player.LookedAt

	Grouper  *grouping.Grouper
	Detector *interaction.Detector
	Resolver *interaction.Resolver
	Terminal *terminal.Terminal
	Levels   *level.Manager
	Spawner  *spawn.Spawner
	Audio    audio.Player

	// bank is set when a real audio device backs Audio; its loops need a per-frame Update.
	bank *audio.Bank

	DebugMode bool

	input Input
	// Fired holds the rule names the resolver ran last step.
	Fired []string

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the office and the player, wires every subsystem and starts the first level.
// It opens no window, so everything it builds can be stepped headless.
func New(cfg *config.Config, levels []level.Level, layout *office.Layout, sounds audio.Player) (*Game, error) {
	if sounds == nil {
		sounds = audio.Silent{}
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		Config:   cfg,
		Scene:    engine.NewScene("office"),
		Physics:  physics.NewPhysicsWorld(),
		State:    player.NewStateMachine(),
		Held:     &player.HeldSlot{},
		LookedAt: &player.LookedAt{},
		Levels:   level.NewManager(levels),
		Audio:    sounds,
	}
	g.Grouper = grouping.New(g.Scene, g.Physics, rng)

	env := &sensor.Env{
		Scene:   g.Scene,
		Grouper: g.Grouper,
		Held:    g.Held,
		State:   g.State,
		Audio:   sounds,
		Scan:    g.Levels.Scan,
	}
	g.Office = office.Build(layout, g.Scene, g.Physics, func(k sensor.Kind, paint code.Color) engine.Component {
		return sensor.New(k, paint, env)
	})
	if _, err := g.Office.RenderTarget(); err != nil {
		return nil, err
	}
	if _, err := g.Office.Anchor(office.AnchorToolDesk); err != nil {
		return nil, err
	}

	g.createPlayer()

	g.Spawner = spawn.New(g.Scene, g.Physics, g.Grouper, g.Held, g.State, g.Office, rng)
	g.Detector = interaction.NewDetector(g.Physics, g.State, g.LookedAt, cfg.Player.Reach)
	g.Resolver = interaction.NewResolver(&interaction.Context{
		Scene:     g.Scene,
		World:     g.Physics,
		Grouper:   g.Grouper,
		State:     g.State,
		Held:      g.Held,
		Audio:     sounds,
		Player:    g.Player,
		ViewModel: g.ViewModel,
	})
	g.Terminal = terminal.New(g.Levels, g.State, sounds)
	g.Terminal.Held = g.Held

	g.wireEvents()
	g.Scene.Start()
	audio.StartAmbience(sounds)
	g.Levels.Start()
	return g, nil
}

func (g *Game) wireEvents() {
	g.Levels.OnLevelStart.AddListener(func(n int) {
		g.Spawner.SpawnLevel(g.Levels.Levels[n].Block)
	})
	g.Levels.OnDespawnCode.AddListener(func() {
		g.Spawner.DespawnCode()
	})
	g.Levels.OnFeedback.AddListener(g.Terminal.Write)
	g.Levels.OnCue.AddListener(g.Audio.Play)
	g.Levels.OnGameOver.AddListener(func() {
		log.Printf("Game: game over at level %d", g.Levels.Current())
		g.Terminal.Write("\nGAME OVER\n" + terminal.Prompt)
		if l, ok := g.Audio.(audio.Looper); ok {
			l.Stop(audio.CueMusic)
		}
		g.Audio.Play(audio.CueGameOver)
	})
	g.Scene.OnAdd.AddListener(g.attachImpactSound)
	g.Scene.OnRemove.AddListener(func(obj *engine.GameObject) {
		g.Physics.RemoveObject(obj)
	})
	g.State.OnChange.AddListener(func(s player.State) {
		log.Printf("Player: %s", s)
	})
}

// attachImpactSound gives every throwable prop the collision cue.
func (g *Game) attachImpactSound(obj *engine.GameObject) {
	kind, ok := components.KindOf(obj)
	if !ok || kind == components.KindTerminal {
		return
	}
	if engine.GetComponent[*components.ImpactSound](obj) != nil {
		return
	}
	obj.AddComponent(components.NewImpactSound(g.Audio))
}

// createPlayer puts a kinematic body with an eye camera at the spawn point, plus the viewmodel held items hang off.
func (g *Game) createPlayer() {
	g.Player = engine.NewGameObject("Player")
	if spawnAt, err := g.Office.Anchor(office.AnchorSpawn); err == nil {
		g.Player.Transform.Position = spawnAt.Position
	} else {
		log.Printf("Game: %v, spawning at origin", err)
	}

	fps := components.NewFPSController()
	fps.MoveSpeed = g.Config.Player.MoveSpeed
	fps.LookSpeed = g.Config.Player.MouseSens
	fps.EyeHeight = g.Config.Player.EyeHeight
	fps.Input = func() components.MoveInput { return g.input.Move }
	g.Player.AddComponent(fps)
	g.Player.AddComponent(components.NewCamera())

	collider := components.NewBoxCollider(rl.Vector3{X: 0.3, Y: 0.9, Z: 0.3})
	collider.Offset = rl.Vector3{Y: 0.95}
	collider.Membership = components.GroupPlayer
	collider.Filter = components.GroupStatic | components.GroupDynamic
	g.Player.AddComponent(collider)

	// Kinematic so the player pushes props without being pushed back.
	rb := components.NewRigidbody()
	rb.SetBodyType(components.Kinematic)
	rb.UseGravity = false
	g.Player.AddComponent(rb)

	g.Scene.AddGameObject(g.Player)
	g.Physics.AddObject(g.Player)

	g.ViewModel = engine.NewGameObject("ViewModel")
	g.Scene.AddGameObject(g.ViewModel)
	g.syncViewModel()
}

// syncViewModel keeps the viewmodel just in front of the eye, turned with the view.
func (g *Game) syncViewModel() {
	fps := engine.GetComponent[*components.FPSController](g.Player)
	look := fps.GetLookDirection()
	g.ViewModel.Transform.Position = rl.Vector3Add(fps.Eye(), rl.Vector3Scale(look, 0.6))
	g.ViewModel.Transform.Rotation = rl.Vector3{X: fps.Pitch, Y: -(fps.Yaw + 90)}
}

// Step advances one frame: movement, interaction, terminal, clock, then physics and sensors.
func (g *Game) Step(dt float32, in Input) {
	g.input = in
	fps := engine.GetComponent[*components.FPSController](g.Player)

	player.GateMovement(g.State, fps, g.Config.Player.HoldingSpeedMult)
	g.Scene.Update(dt)
	if rb := engine.GetComponent[*components.Rigidbody](g.Player); rb != nil {
		rb.Velocity = fps.Velocity
	}
	g.syncViewModel()

	frame := g.Detector.Step(fps.Eye(), fps.GetLookDirection(), in.Mouse)
	g.Fired = g.Resolver.Resolve(frame)

	g.Terminal.Feed(in.Keys)
	g.Levels.Tick(time.Duration(float64(dt)*float64(time.Second)), g.State.Is(player.Interacting))

	g.Physics.Update(dt)
}

// Prompt is the control hint for what is under the crosshair.
func (g *Game) Prompt() string {
	target := g.LookedAt.Object(g.Scene)
	kind, looking := components.KindOf(target)
	return interaction.Prompt(g.State.Current(), g.Held.Kind(), kind, looking)
}

// TimerText is the HUD clock line.
func (g *Game) TimerText() string {
	return fmt.Sprintf("ASSEMBLE DIFFS: %s", g.Levels.Timer.Remaining())
}

// Play opens the window and audio device, builds the game and runs it until the window closes.
func Play(cfg *config.Config, levels []level.Level, layout *office.Layout) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	var sounds audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		audio.Init()
		defer audio.Close()
		bank := audio.LoadBank(cfg.Audio.Dir)
		defer bank.Unload()
		sounds = bank
	}

	g, err := New(cfg, levels, layout, sounds)
	if err != nil {
		return err
	}
	if bank, ok := sounds.(*audio.Bank); ok {
		g.bank = bank
	}
	g.Run()
	return nil
}

func (g *Game) Run() {
	r := NewRenderer()
	screen, _ := g.Office.RenderTarget()
	r.Initialize(screen)
	defer r.Unload()
	initHUDStyle()

	rl.DisableCursor()
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw(r)
	}
}

// Update reads input and steps the game by the frame time.
func (g *Game) Update() {
	updateStart := time.Now()
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	in := ReadInput()
	// Typing at the terminal must not also walk the player.
	if g.State.Is(player.Interacting) {
		in.Move = components.MoveInput{}
	}
	g.Step(rl.GetFrameTime(), in)
	if g.bank != nil {
		g.bank.Update()
	}
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw(r *Renderer) {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	r.DrawScreen(g.Terminal.Lines())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	r.DrawScene(camera, g.Scene)
	rl.EndMode3D()
	r.DrawLabels(camera, g.Scene)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawHUD()
	rl.EndDrawing()
}
