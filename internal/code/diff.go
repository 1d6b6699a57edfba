package code

import (
	"fmt"
	"strings"
)

// Diff classifies a line of code the way a unified diff would.
type Diff int

const (
	Pos Diff = iota // added line
	Neg             // removed line, kept red
	Eq              // unchanged
	Rem             // must not survive submission
)

var diffs = []Diff{Pos, Neg, Eq, Rem}

// Prefix returns the two-character marker used in level text.
func (d Diff) Prefix() string {
	switch d {
	case Pos:
		return "++"
	case Neg:
		return "--"
	case Eq:
		return "=="
	case Rem:
		return "!!"
	}
	return ""
}

func (d Diff) String() string {
	switch d {
	case Pos:
		return "Pos"
	case Neg:
		return "Neg"
	case Eq:
		return "Eq"
	case Rem:
		return "Rem"
	}
	return fmt.Sprintf("Diff(%d)", int(d))
}

// Color maps a diff to the colour a correctly submitted line carries.
func (d Diff) Color() Color {
	switch d {
	case Pos:
		return Green
	case Neg:
		return Red
	case Eq:
		return Normal
	}
	return None
}

// DiffFromLine returns the diff whose prefix starts s.
// Level text is bundled with the binary, so a missing prefix panics.
func DiffFromLine(s string) Diff {
	for _, d := range diffs {
		if strings.HasPrefix(s, d.Prefix()) {
			return d
		}
	}
	panic(fmt.Sprintf("prefix not found in line: %s", s))
}

// Color is the runtime paint of a line entity.
type Color int

const (
	None Color = iota
	Normal
	Green
	Red
)

func (c Color) String() string {
	switch c {
	case None:
		return "None"
	case Normal:
		return "Normal"
	case Green:
		return "Green"
	case Red:
		return "Red"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ToDiff converts a painted colour back into the diff it represents.
func (c Color) ToDiff() Diff {
	switch c {
	case Green:
		return Pos
	case Red:
		return Neg
	}
	return Eq
}

// ParseColor accepts the colour names used in layout files.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "normal", "white":
		return Normal, nil
	case "green":
		return Green, nil
	case "red":
		return Red, nil
	}
	return None, fmt.Errorf("unknown code color %q", s)
}
