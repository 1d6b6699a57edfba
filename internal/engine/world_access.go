package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess lets gameplay packages spawn and destroy physics objects
// without importing the physics package.
type WorldAccess interface {
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	// Rebody moves g between the dynamic, fixed and kinematic lists after its body type changed.
	Rebody(g *GameObject)
}
