package player

import "gitoffice/internal/engine"

// LookedAt caches the interactable under the crosshair. Refreshed by the detector every step.
type LookedAt struct {
	Ref      engine.ObjectRef
	Distance float32
}

func (l *LookedAt) Set(obj *engine.GameObject, distance float32) {
	l.Ref = engine.RefTo(obj)
	l.Distance = distance
}

func (l *LookedAt) Clear() {
	l.Ref.Clear()
	l.Distance = 0
}

// Object resolves the cached target, or nil when nothing is looked at.
func (l *LookedAt) Object(scene *engine.Scene) *engine.GameObject {
	return l.Ref.Get(scene)
}
