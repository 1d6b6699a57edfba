package engine

// ObjectRef is a weak handle to a GameObject by UID.
// It never keeps a despawned object alive; Get returns nil once the object leaves the scene.
type ObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a handle for g, or the empty handle for nil.
func RefTo(g *GameObject) ObjectRef {
	if g == nil {
		return ObjectRef{}
	}
	return ObjectRef{UID: g.UID}
}

// Get resolves the reference through the scene.
func (r ObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something.
// It doesn't check that the object still exists.
func (r ObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *ObjectRef) Set(g *GameObject) {
	*r = RefTo(g)
}

func (r *ObjectRef) Clear() {
	r.UID = 0
}
