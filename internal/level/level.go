// Package level owns the level list, the countdown and the submission pipeline.
package level

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gitoffice/internal/code"
)

//go:embed levels.txt
var levelsText string

// Separator splits the embedded level text into levels.
const Separator = "NEXT_LEVEL\n"

// Durations is the time budget of each level, by index.
var Durations = []time.Duration{
	180 * time.Second,
	120 * time.Second,
	150 * time.Second,
	250 * time.Second,
	250 * time.Second,
	300 * time.Second,
}

// Level is one parsed job.
type Level struct {
	Number   int
	Block    code.Block
	Text     string
	Duration time.Duration
}

// Parse splits text into levels. A line without a diff prefix panics.
func Parse(text string, durations []time.Duration) []Level {
	var levels []Level
	for _, chunk := range strings.Split(text, Separator) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		n := len(levels)
		if n >= len(durations) {
			panic(fmt.Sprintf("level %d has no time budget", n))
		}
		levels = append(levels, Level{
			Number:   n,
			Block:    code.ParseBlock(chunk),
			Text:     chunk,
			Duration: durations[n],
		})
	}
	return levels
}

// Load parses text, turning a malformed level into an error.
func Load(text string, durations []time.Duration) (levels []Level, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse levels: %v", r)
		}
	}()
	levels = Parse(text, durations)
	if len(levels) == 0 {
		return nil, fmt.Errorf("parse levels: no levels")
	}
	return levels, nil
}

// Text is the bundled level text.
func Text() string {
	return levelsText
}

// MustLoad parses the bundled levels. Broken bundled data is fatal.
func MustLoad() []Level {
	levels, err := Load(levelsText, Durations)
	if err != nil {
		panic(err)
	}
	return levels
}

// ShowCode is the level's text as the terminal prints it.
func (l Level) ShowCode() string {
	return strings.TrimRight(l.Text, " \t\r\n")
}
