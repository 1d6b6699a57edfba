package engine

// Scene is the arena owning every GameObject. Objects are looked up by UID;
// parent/child edges only compose transforms.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject

	// OnAdd fires once for every object entering the scene.
	OnAdd EventWithArg[*GameObject]
	// OnRemove fires for every object leaving the scene, children included.
	OnRemove EventWithArg[*GameObject]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, exists := s.uidMap[g.UID]; exists {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
	s.OnAdd.Invoke(g)
}

// RemoveGameObject removes g and its whole subtree from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for len(g.Children) > 0 {
		child := g.Children[len(g.Children)-1]
		g.RemoveChild(child)
		s.RemoveGameObject(child)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if _, ok := s.uidMap[g.UID]; !ok {
		return
	}
	delete(s.uidMap, g.UID)
	g.Scene = nil
	s.OnRemove.Invoke(g)
}

// Contains reports whether g is still owned by the scene.
func (s *Scene) Contains(g *GameObject) bool {
	return g != nil && s.uidMap[g.UID] == g
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Find returns every object carrying a component of type T, in insertion order.
func Find[T Component](s *Scene) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		for _, c := range g.components {
			if _, ok := c.(T); ok {
				result = append(result, g)
				break
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may despawn objects mid-update.
	objs := make([]*GameObject, len(s.GameObjects))
	copy(objs, s.GameObjects)
	for _, g := range objs {
		if s.Contains(g) {
			g.Update(deltaTime)
		}
	}
}
