package terminal

import (
	"fmt"
	"strings"
	"unicode"

	"gitoffice/internal/audio"
	"gitoffice/internal/level"
	"gitoffice/internal/player"
	"gitoffice/internal/score"
)

const (
	Prompt = ">>"
	// MaxLines is how many rows fit on the screen.
	MaxLines = 15
	HelpText = "[c]ode | [r]estart | [e]xit | [f]inish"
)

// Levels is the part of the level manager the terminal drives.
type Levels interface {
	Restart()
	Submit() (score.Result, bool)
	Level() level.Level
}

// Terminal holds the scrollback and executes commands typed after the prompt.
type Terminal struct {
	Levels Levels
	State  *player.StateMachine
	Audio  audio.Player
	// Held is optional. Leaving with something in the slot returns to Holding.
	Held *player.HeldSlot

	MaxLines   int
	text       []rune
	inputStart int
}

func New(levels Levels, state *player.StateMachine, sounds audio.Player) *Terminal {
	t := &Terminal{Levels: levels, State: state, Audio: sounds, MaxLines: MaxLines}
	t.text = []rune(Prompt)
	t.inputStart = len(t.text)
	return t
}

// Feed applies one frame of keyboard input. Keys are ignored unless the player is at the terminal.
func (t *Terminal) Feed(k Keys) {
	if t.State == nil || !t.State.Is(player.Interacting) {
		return
	}
	for i := 0; i < k.Pressed; i++ {
		t.play(audio.CueTerminalType)
	}
	for _, r := range k.Chars {
		t.Type(r)
	}
	if k.Backspace {
		t.Backspace()
	}
	if k.Enter {
		t.Enter()
	}
}

// Type appends a printable ASCII character to the input line.
func (t *Terminal) Type(r rune) {
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return
	}
	t.text = append(t.text, r)
}

// Backspace removes the last typed character but never eats into earlier output.
func (t *Terminal) Backspace() {
	if len(t.text) > t.inputStart {
		t.text = t.text[:len(t.text)-1]
	}
}

// Enter runs the command on the input line and prints the response with a fresh prompt.
func (t *Terminal) Enter() {
	input := strings.TrimSpace(string(t.text[t.inputStart:]))
	cmd, err := ParseCommand(input)
	if err != nil {
		t.play(audio.CueTerminalCommandError)
		t.Write(fmt.Sprintf("\ncommand %s not recognised, use help for commands\n%s", input, Prompt))
		return
	}

	var response string
	switch cmd {
	case Restart:
		response = "restarting..."
	case ShowCode:
		response = t.Levels.Level().ShowCode()
	case Send:
		response = "sending off completed code"
	case Exit:
		response = "goodbye git"
	case Help:
		response = HelpText
	}
	t.Write(fmt.Sprintf("\n%s\n%s", response, Prompt))

	switch cmd {
	case Restart:
		t.Levels.Restart()
	case Send:
		t.Levels.Submit()
	case Exit:
		t.State.Change(player.Idle)
		if t.Held != nil && !t.Held.IsEmpty() {
			t.State.Change(player.Holding)
		}
		t.play(audio.CueTerminalLeave)
	}
}

// Write appends output. Input starts after it.
func (t *Terminal) Write(s string) {
	t.text = append(t.text, []rune(s)...)
	t.trim()
	t.inputStart = len(t.text)
}

// Text is the whole scrollback.
func (t *Terminal) Text() string {
	return string(t.text)
}

// Lines is the scrollback split into rows.
func (t *Terminal) Lines() []string {
	return strings.Split(string(t.text), "\n")
}

// Input is what has been typed since the last prompt.
func (t *Terminal) Input() string {
	return string(t.text[t.inputStart:])
}

func (t *Terminal) trim() {
	lines := t.Lines()
	if t.MaxLines <= 0 || len(lines) <= t.MaxLines {
		return
	}
	t.text = []rune(strings.Join(lines[len(lines)-t.MaxLines:], "\n"))
}

func (t *Terminal) play(c audio.Cue) {
	if t.Audio != nil {
		t.Audio.Play(c)
	}
}
