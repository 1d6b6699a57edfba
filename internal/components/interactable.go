package components

import "gitoffice/internal/engine"

// Kind is the category of something the player can aim at.
type Kind int

const (
	KindHammer Kind = iota
	KindLineOfCode
	KindBundle
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindHammer:
		return "hammer"
	case KindLineOfCode:
		return "line"
	case KindBundle:
		return "bundle"
	case KindTerminal:
		return "terminal"
	}
	return "unknown"
}

// Interactable tags an object as a ray target for the interaction detector.
type Interactable struct {
	engine.BaseComponent
	Kind Kind
}

func NewInteractable(kind Kind) *Interactable {
	return &Interactable{Kind: kind}
}

// KindOf returns the interactable kind of g, or false if g is untagged.
func KindOf(g *engine.GameObject) (Kind, bool) {
	i := engine.GetComponent[*Interactable](g)
	if i == nil {
		return 0, false
	}
	return i.Kind, true
}
