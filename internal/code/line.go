package code

import "strings"

// Line is one parsed line of level text.
type Line struct {
	Code string
	Diff Diff
}

// ParseLine splits the diff prefix off a level line.
func ParseLine(s string) Line {
	d := DiffFromLine(s)
	rest := strings.TrimPrefix(s, d.Prefix())
	rest = strings.TrimPrefix(rest, " ")
	return Line{Code: rest, Diff: d}
}

func (l Line) String() string {
	return l.Diff.Prefix() + " " + l.Code
}

// Painted is a line as it exists in the world: its text plus the colour it currently wears.
type Painted struct {
	Code  string
	Color Color
}

// Painted returns the line wearing its canonical colour.
func (l Line) Painted() Painted {
	return Painted{Code: l.Code, Color: l.Diff.Color()}
}

// Block is the ordered canonical solution for one level.
type Block []Line

// ParseBlock parses every non-blank line of text.
func ParseBlock(text string) Block {
	var b Block
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		b = append(b, ParseLine(ln))
	}
	return b
}

// Canonical returns the scoring ground truth: every line except Rem, in canonical colours.
func (b Block) Canonical() []Painted {
	out := make([]Painted, 0, len(b))
	for _, l := range b {
		if l.Diff == Rem {
			continue
		}
		out = append(out, l.Painted())
	}
	return out
}

func (b Block) String() string {
	var sb strings.Builder
	for i, l := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}
