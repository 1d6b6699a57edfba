// Package terminal is the in-world command line the player submits work through.
package terminal

import (
	"errors"
	"fmt"
	"strings"
)

type Command int

const (
	Restart Command = iota
	ShowCode
	Send
	Exit
	Help
)

func (c Command) String() string {
	switch c {
	case Restart:
		return "restart"
	case ShowCode:
		return "code"
	case Send:
		return "finish"
	case Exit:
		return "exit"
	case Help:
		return "help"
	}
	return "unknown"
}

var ErrUnknownCommand = errors.New("unknown command")

// "r" belongs to restart; finish only answers to its long names and "f".
var aliases = map[string]Command{
	"r":         Restart,
	"restart":   Restart,
	"c":         ShowCode,
	"code":      ShowCode,
	"show":      ShowCode,
	"show code": ShowCode,
	"f":         Send,
	"finish":    Send,
	"finished":  Send,
	"release":   Send,
	"e":         Exit,
	"exit":      Exit,
	"h":         Help,
	"help":      Help,
}

// ParseCommand matches trimmed input case-insensitively against the command aliases.
func ParseCommand(s string) (Command, error) {
	if c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
