package components

import (
	"gitoffice/internal/code"
	"gitoffice/internal/engine"
)

// CodeLine is a single line-of-code plank. Color starts at the diff colour
// and is repainted by painter sensors.
type CodeLine struct {
	engine.BaseComponent
	Line  code.Line
	Color code.Color
}

func NewCodeLine(l code.Line) *CodeLine {
	return &CodeLine{Line: l, Color: l.Diff.Color()}
}

// Painted returns the line as it would be scored.
func (c *CodeLine) Painted() code.Painted {
	return code.Painted{Code: c.Line.Code, Color: c.Color}
}

// Bundle owns an ordered list of line UIDs. Order is left-to-right placement.
type Bundle struct {
	engine.BaseComponent
	Members []uint64
}

func NewBundle(members ...uint64) *Bundle {
	return &Bundle{Members: append([]uint64(nil), members...)}
}

// Len is the number of member lines.
func (b *Bundle) Len() int {
	return len(b.Members)
}

// Lines resolves the members through the scene, skipping any that vanished.
func (b *Bundle) Lines(scene *engine.Scene) []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(b.Members))
	for _, uid := range b.Members {
		if g := scene.FindByUID(uid); g != nil {
			out = append(out, g)
		}
	}
	return out
}
