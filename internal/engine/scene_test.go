package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	// Test O(1) lookup
	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	// Test non-existent UID
	notFound := scene.FindByUID(99999)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	// Verify UID map was updated
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("UniquePlayer")

	scene.AddGameObject(obj)

	found := scene.FindByName("UniquePlayer")
	if found != obj {
		t.Error("FindByName failed")
	}

	notFound := scene.FindByName("DoesNotExist")
	if notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	// Both parent and child should be removed
	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}

	// Verify UID map cleaned up
	if scene.FindByUID(parent.UID) != nil {
		t.Error("Parent still in UID map after removal")
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := NewScene("Test")

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized in NewScene")
	}

	// Test adding to uninitialized map (defensive programming check)
	scene.uidMap = nil
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestSceneFindByComponent(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	a.AddComponent(&otherComponent{})
	b := NewGameObject("B")
	c := NewGameObject("C")
	c.AddComponent(&otherComponent{})

	scene.AddGameObject(a)
	scene.AddGameObject(b)
	scene.AddGameObject(c)

	found := Find[*otherComponent](scene)
	if len(found) != 2 || found[0] != a || found[1] != c {
		t.Errorf("Find returned %v", found)
	}
}

func TestSceneOnRemoveFiresForSubtree(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Bundle")
	child1 := NewGameObject("Line1")
	child2 := NewGameObject("Line2")
	scene.AddGameObject(parent)
	scene.AddGameObject(child1)
	scene.AddGameObject(child2)
	parent.AddChild(child1)
	parent.AddChild(child2)

	removed := map[uint64]bool{}
	scene.OnRemove.AddListener(func(g *GameObject) { removed[g.UID] = true })

	scene.RemoveGameObject(parent)

	if len(removed) != 3 {
		t.Errorf("Expected 3 removals, got %d", len(removed))
	}
	if scene.Contains(child1) || scene.Contains(child2) {
		t.Error("Children should leave the scene with their parent")
	}
}

func TestSceneAddTwiceIsNoop(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Once")
	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
}

func TestSceneUpdateToleratesRemoval(t *testing.T) {
	scene := NewScene("Test")
	victim := NewGameObject("Victim")
	victimComp := &otherComponent{}
	victim.AddComponent(victimComp)

	killer := NewGameObject("Killer")
	killer.AddComponent(&removerComponent{scene: scene, target: victim})

	scene.AddGameObject(killer)
	scene.AddGameObject(victim)

	scene.Update(0.016)

	if victimComp.updates != 0 {
		t.Error("Object removed earlier in the frame should not update")
	}
}

type removerComponent struct {
	BaseComponent
	scene  *Scene
	target *GameObject
}

func (r *removerComponent) Update(deltaTime float32) {
	r.scene.RemoveGameObject(r.target)
}

func TestSceneOnAddFiresOnce(t *testing.T) {
	scene := NewScene("Test")
	added := 0
	scene.OnAdd.AddListener(func(g *GameObject) { added++ })

	obj := NewGameObject("Line")
	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if added != 1 {
		t.Errorf("Expected 1 add event, got %d", added)
	}
}
