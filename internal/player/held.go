package player

import (
	"gitoffice/internal/components"
	"gitoffice/internal/engine"
)

// HeldKind is what occupies the held slot.
type HeldKind int

const (
	Empty HeldKind = iota
	HeldHammer
	HeldLine
	HeldBundle
)

func (k HeldKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case HeldHammer:
		return "hammer"
	case HeldLine:
		return "line"
	case HeldBundle:
		return "bundle"
	}
	return "unknown"
}

// HeldKindFor maps an interactable kind to the slot kind. Terminals cannot be held.
func HeldKindFor(k components.Kind) (HeldKind, bool) {
	switch k {
	case components.KindHammer:
		return HeldHammer, true
	case components.KindLineOfCode:
		return HeldLine, true
	case components.KindBundle:
		return HeldBundle, true
	}
	return Empty, false
}

// HeldSlot is the single item the player carries. At most one item is held.
type HeldSlot struct {
	kind HeldKind
	ref  engine.ObjectRef
}

// Hold replaces the slot contents.
func (h *HeldSlot) Hold(kind HeldKind, obj *engine.GameObject) {
	if kind == Empty || obj == nil {
		h.Clear()
		return
	}
	h.kind = kind
	h.ref = engine.RefTo(obj)
}

func (h *HeldSlot) Clear() {
	h.kind = Empty
	h.ref.Clear()
}

// Kind returns the held kind, or Empty.
func (h *HeldSlot) Kind() HeldKind {
	return h.kind
}

func (h *HeldSlot) IsEmpty() bool {
	return h.kind == Empty
}

// Holds reports whether obj is the held item.
func (h *HeldSlot) Holds(obj *engine.GameObject) bool {
	return obj != nil && h.kind != Empty && h.ref.UID == obj.UID
}

// Object resolves the held item. A held item that left the scene empties the slot.
func (h *HeldSlot) Object(scene *engine.Scene) *engine.GameObject {
	if h.kind == Empty {
		return nil
	}
	obj := h.ref.Get(scene)
	if obj == nil {
		h.Clear()
	}
	return obj
}
