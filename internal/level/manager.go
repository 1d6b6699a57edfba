package level

import (
	"log"
	"time"

	"gitoffice/internal/audio"
	"gitoffice/internal/code"
	"gitoffice/internal/engine"
	"gitoffice/internal/score"
)

// Manager runs the level loop: start, scan, submit, advance or retry.
type Manager struct {
	Levels []Level
	Timer  *Timer

	current  int
	snapshot []code.Painted
	scanned  bool
	started  bool
	over     bool

	// OnLevelStart fires with the level index whenever a level (re)starts.
	OnLevelStart engine.EventWithArg[int]
	// OnDespawnCode asks for every line and bundle of the finished attempt to be removed.
	OnDespawnCode engine.Event
	OnGameOver    engine.Event
	OnFeedback    engine.EventWithArg[string]
	OnCue         engine.EventWithArg[audio.Cue]
}

func NewManager(levels []Level) *Manager {
	return &Manager{Levels: levels, Timer: NewTimer(0)}
}

// Start begins the first level and starts the clock.
func (m *Manager) Start() {
	m.started = true
	m.StartLevel(0)
	m.Timer.Active = true
}

// StartLevel resets the clock to level n's budget and drops any scan.
func (m *Manager) StartLevel(n int) {
	if n < 0 || n >= len(m.Levels) {
		m.endGame()
		return
	}
	m.current = n
	m.Timer.Reset(m.Levels[n].Duration)
	m.clearSnapshot()
	log.Printf("Level: starting level %d (%s)", n, m.Levels[n].Duration)
	m.OnLevelStart.Invoke(n)
}

// Restart throws the current attempt away and starts the level again.
func (m *Manager) Restart() {
	if m.over {
		return
	}
	m.OnDespawnCode.Invoke()
	m.StartLevel(m.current)
}

// Scan replaces the submission snapshot. Empty scans are ignored.
func (m *Manager) Scan(lines []code.Painted) {
	if len(lines) == 0 {
		return
	}
	m.snapshot = append(m.snapshot[:0], lines...)
	m.scanned = true
}

// Snapshot returns the last scan, if any.
func (m *Manager) Snapshot() ([]code.Painted, bool) {
	return m.snapshot, m.scanned
}

// Submit grades the snapshot. Without one the player forfeits and the game ends.
// A pass advances to the next level, a fail restarts the current one; both clear the playfield.
func (m *Manager) Submit() (score.Result, bool) {
	if m.over {
		return score.Result{}, false
	}
	if !m.scanned {
		log.Printf("Level: submit without a scan, game over")
		m.endGame()
		return score.Result{}, false
	}

	lvl := m.Levels[m.current]
	codeScore := score.Score(lvl.Block.Canonical(), m.snapshot)
	res := score.Evaluate(m.Timer.Left(), m.Timer.Duration(), codeScore)
	log.Printf("Level: level %d scored %d/%d (passed=%v)", m.current, res.Total, res.Possible, res.Passed)
	m.OnFeedback.Invoke(res.Feedback())

	m.OnDespawnCode.Invoke()
	if !res.Passed {
		m.OnCue.Invoke(audio.CueScannerFail)
		m.StartLevel(m.current)
		return res, true
	}

	m.OnCue.Invoke(audio.CueScannerSuccess)
	m.clearSnapshot()
	m.StartLevel(m.current + 1)
	return res, true
}

// Tick advances the clock unless paused. Running out of time ends the game.
func (m *Manager) Tick(dt time.Duration, paused bool) {
	if !m.started || m.over {
		return
	}
	m.Timer.Active = !paused
	m.Timer.Tick(dt)
	if m.Timer.Active && m.Timer.Finished() {
		log.Printf("Level: out of time on level %d", m.current)
		m.endGame()
	}
}

// Current is the index of the level being played.
func (m *Manager) Current() int {
	return m.current
}

// Level is the level being played.
func (m *Manager) Level() Level {
	return m.Levels[m.current]
}

// GameOver reports whether the run has ended.
func (m *Manager) GameOver() bool {
	return m.over
}

func (m *Manager) clearSnapshot() {
	m.snapshot = nil
	m.scanned = false
}

func (m *Manager) endGame() {
	if m.over {
		return
	}
	m.over = true
	m.Timer.Active = false
	m.OnGameOver.Invoke()
}
