package audio

import "fmt"

// Cue is a one-shot sound the game asks for. Gameplay code never touches raylib sounds directly.
type Cue int

const (
	CuePickup Cue = iota
	CueThrow
	CueAttach
	CueHammerHit
	CueHammerMiss
	CueTerminalEnter
	CueTerminalType
	CueTerminalCommandError
	CueTerminalLeave
	CueScannerSuccess
	CueScannerFail
	CueScannerCapture
	CuePaint
	CueDelete
	CueCollision
	CueGameOver
	CueFanHum
	CueFluorescent
	CueMusic
)

// AllCues lists every cue in declaration order.
var AllCues = []Cue{
	CuePickup, CueThrow, CueAttach, CueHammerHit, CueHammerMiss,
	CueTerminalEnter, CueTerminalType, CueTerminalCommandError, CueTerminalLeave,
	CueScannerSuccess, CueScannerFail, CueScannerCapture,
	CuePaint, CueDelete, CueCollision, CueGameOver,
	CueFanHum, CueFluorescent, CueMusic,
}

// Ambience is the background soundscape looped while the office is open.
var Ambience = []Cue{CueFanHum, CueFluorescent, CueMusic}

var cueNames = map[Cue]string{
	CuePickup:               "pickup",
	CueThrow:                "throw",
	CueAttach:               "attach",
	CueHammerHit:            "hammer_hit",
	CueHammerMiss:           "hammer_miss",
	CueTerminalEnter:        "terminal_enter",
	CueTerminalType:         "terminal_type",
	CueTerminalCommandError: "terminal_error",
	CueTerminalLeave:        "terminal_leave",
	CueScannerSuccess:       "scanner_success",
	CueScannerFail:          "scanner_fail",
	CueScannerCapture:       "scanner_capture",
	CuePaint:                "paint",
	CueDelete:               "delete",
	CueCollision:            "collision",
	CueGameOver:             "game_over",
	CueFanHum:               "fan_hum",
	CueFluorescent:          "fluorescent",
	CueMusic:                "music",
}

// cueVolume overrides the full volume some cues would otherwise play at.
var cueVolume = map[Cue]float32{
	CueCollision:   0.7,
	CueGameOver:    0.7,
	CueFanHum:      0.5,
	CueFluorescent: 0.5,
	CueMusic:       0.1,
}

// Volume is the cue's own level before the bank's master volume.
func (c Cue) Volume() float32 {
	if v, ok := cueVolume[c]; ok {
		return v
	}
	return 1
}

// String is also the file stem the cue is loaded from.
func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// Looper keeps cues playing until stopped.
type Looper interface {
	Loop(c Cue)
	Stop(c Cue)
}

// StartAmbience loops the background soundscape if p can loop.
func StartAmbience(p Player) {
	l, ok := p.(Looper)
	if !ok {
		return
	}
	for _, c := range Ambience {
		l.Loop(c)
	}
}

// Silent drops every cue.
type Silent struct{}

func (Silent) Play(Cue) {}

// Recorder remembers every cue it is asked to play, and which are looping.
type Recorder struct {
	Cues    []Cue
	Looping map[Cue]bool
}

func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

func (r *Recorder) Loop(c Cue) {
	if r.Looping == nil {
		r.Looping = make(map[Cue]bool)
	}
	r.Looping[c] = true
}

func (r *Recorder) Stop(c Cue) {
	delete(r.Looping, c)
}

// Last returns the most recent cue, or false if none was played.
func (r *Recorder) Last() (Cue, bool) {
	if len(r.Cues) == 0 {
		return 0, false
	}
	return r.Cues[len(r.Cues)-1], true
}

func (r *Recorder) Reset() {
	r.Cues = nil
	r.Looping = nil
}
