package physics

import (
	"unsafe"

	"gitoffice/internal/components"
	"gitoffice/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// restingSpeed is the normal speed below which a contact stops bouncing.
const restingSpeed = 0.5

// CollisionPair represents two objects that are touching or overlapping
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent collision pair (smaller pointer first)
func makePair(a, b *engine.GameObject) CollisionPair {
	ptrA, ptrB := uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b))
	if ptrA > ptrB {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (the player)
	Statics    []*engine.GameObject // fixed bodies and bare colliders, sensors included
	members    map[*engine.GameObject]bool

	// Collision tracking for callbacks
	activeCollisions  map[CollisionPair]bool
	currentCollisions map[CollisionPair]bool
	activeTriggers    map[CollisionPair]bool // A is always the sensor
	currentTriggers   map[CollisionPair]bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:           make([]*engine.GameObject, 0),
		Kinematics:        make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		members:           make(map[*engine.GameObject]bool),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
		activeTriggers:    make(map[CollisionPair]bool),
		currentTriggers:   make(map[CollisionPair]bool),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if p.members[g] {
		return
	}
	p.members[g] = true
	rb := engine.GetComponent[*components.Rigidbody](g)
	switch {
	case rb == nil || rb.BodyType == components.Fixed:
		p.Statics = append(p.Statics, g)
	case rb.BodyType == components.Kinematic:
		p.Kinematics = append(p.Kinematics, g)
	default:
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	if !p.members[g] {
		return
	}
	delete(p.members, g)
	p.Objects = removeFrom(p.Objects, g)
	p.Kinematics = removeFrom(p.Kinematics, g)
	p.Statics = removeFrom(p.Statics, g)
	for pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, pair)
		}
	}
	for pair := range p.activeTriggers {
		if pair.A == g || pair.B == g {
			delete(p.activeTriggers, pair)
		}
	}
}

// Contains reports whether g is simulated.
func (p *PhysicsWorld) Contains(g *engine.GameObject) bool {
	return p.members[g]
}

// SpawnObject implements engine.WorldAccess.
func (p *PhysicsWorld) SpawnObject(g *engine.GameObject) {
	p.AddObject(g)
}

// Destroy implements engine.WorldAccess. Children are removed too.
func (p *PhysicsWorld) Destroy(g *engine.GameObject) {
	for _, c := range g.Children {
		p.Destroy(c)
	}
	p.RemoveObject(g)
}

// Rebody implements engine.WorldAccess.
func (p *PhysicsWorld) Rebody(g *engine.GameObject) {
	if !p.members[g] {
		p.AddObject(g)
		return
	}
	p.RemoveObject(g)
	p.AddObject(g)
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (p *PhysicsWorld) all() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Objects...)
	all = append(all, p.Kinematics...)
	all = append(all, p.Statics...)
	return all
}

// DynamicObjectCount returns the number of dynamic physics objects
func (p *PhysicsWorld) DynamicObjectCount() int {
	return len(p.Objects)
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	p.currentCollisions = make(map[CollisionPair]bool)
	p.currentTriggers = make(map[CollisionPair]bool)

	// 1. Integrate dynamic bodies
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping {
			continue
		}
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
	}

	// 2. Dynamic vs dynamic
	for i := 0; i < len(p.Objects); i++ {
		for j := i + 1; j < len(p.Objects); j++ {
			p.resolveDynamicPair(p.Objects[i], p.Objects[j])
		}
	}

	// 3. Kinematic pushes dynamic
	for _, kinematic := range p.Kinematics {
		for _, obj := range p.Objects {
			p.resolveKinematicCollision(kinematic, obj)
		}
	}

	// 4. Dynamic and kinematic vs static
	for _, static := range p.Statics {
		for _, obj := range p.Objects {
			p.resolveStaticCollision(obj, static)
		}
		for _, kinematic := range p.Kinematics {
			p.resolveKinematicStaticCollision(kinematic, static)
		}
	}

	// 5. Sleep
	for _, obj := range p.Objects {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
			rb.TrySleep(deltaTime)
		}
	}

	// 6. Sensors
	p.detectTriggers()

	// 7. Callbacks
	p.dispatchCollisionCallbacks()
	p.dispatchTriggerCallbacks()
}

// solidCollider returns g's collider when it takes part in contact resolution.
func solidCollider(g *engine.GameObject) *components.BoxCollider {
	box := engine.GetComponent[*components.BoxCollider](g)
	if box == nil || !box.Enabled || box.IsSensor {
		return nil
	}
	return box
}

func (p *PhysicsWorld) resolveStaticCollision(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	colObj := solidCollider(obj)
	colStatic := solidCollider(static)
	if rb == nil || colObj == nil || colStatic == nil || !colObj.InteractsWith(colStatic) {
		return
	}

	pushOut := ColliderAABB(colObj).Resolve(ColliderAABB(colStatic))
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}
	p.recordCollision(obj, static)

	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)
	bounce(rb, pushOut)
}

// bounce reflects the velocity component along the push-out normal and applies friction.
func bounce(rb *components.Rigidbody, pushOut rl.Vector3) {
	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)
	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal >= 0 {
		return
	}
	tangent := rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, velAlongNormal))
	tangent = rl.Vector3Scale(tangent, 1-rb.Friction)

	reflected := -velAlongNormal * rb.Restitution
	if reflected < restingSpeed {
		reflected = 0
	}
	rb.Velocity = rl.Vector3Add(tangent, rl.Vector3Scale(normal, reflected))
}

func (p *PhysicsWorld) resolveDynamicPair(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	colA := solidCollider(a)
	colB := solidCollider(b)
	if rbA == nil || rbB == nil || colA == nil || colB == nil || !colA.InteractsWith(colB) {
		return
	}

	pushOut := ColliderAABB(colA).Resolve(ColliderAABB(colB))
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}
	p.recordCollision(a, b)

	half := rl.Vector3Scale(pushOut, 0.5)
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, half)
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, half)

	// Exchange the normal velocity components, scaled by the softer restitution
	pushLen := rl.Vector3Length(pushOut)
	normal := rl.Vector3Scale(pushOut, 1/pushLen)
	relVel := rl.Vector3DotProduct(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity), normal)
	if relVel >= 0 {
		return
	}
	e := rbA.Restitution
	if rbB.Restitution < e {
		e = rbB.Restitution
	}
	invA, invB := 1/rbA.Mass, 1/rbB.Mass
	j := -(1 + e) * relVel / (invA + invB)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(normal, j*invA))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(normal, j*invB))
}

func (p *PhysicsWorld) resolveKinematicCollision(kinematic, obj *engine.GameObject) {
	colK := solidCollider(kinematic)
	colObj := solidCollider(obj)
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if colK == nil || colObj == nil || rb == nil || !colK.InteractsWith(colObj) {
		return
	}
	pushOut := ColliderAABB(colObj).Resolve(ColliderAABB(colK))
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}
	p.recordCollision(kinematic, obj)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)
	rb.Wake()
}

func (p *PhysicsWorld) resolveKinematicStaticCollision(kinematic, static *engine.GameObject) {
	colK := solidCollider(kinematic)
	colS := solidCollider(static)
	if colK == nil || colS == nil || !colK.InteractsWith(colS) {
		return
	}
	pushOut := ColliderAABB(colK).Resolve(ColliderAABB(colS))
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}
	// The player walks on a flat floor; never lift it onto props.
	pushOut.Y = 0
	p.recordCollision(kinematic, static)
	kinematic.Transform.Position = rl.Vector3Add(kinematic.Transform.Position, pushOut)
}

// detectTriggers records every sensor overlapping a dynamic or kinematic body it filters for.
func (p *PhysicsWorld) detectTriggers() {
	for _, sensorObj := range p.Statics {
		sensor := engine.GetComponent[*components.BoxCollider](sensorObj)
		if sensor == nil || !sensor.IsSensor || !sensor.Enabled {
			continue
		}
		box := ColliderAABB(sensor)
		for _, list := range [][]*engine.GameObject{p.Objects, p.Kinematics} {
			for _, obj := range list {
				col := solidCollider(obj)
				if col == nil || col.Membership&sensor.Filter == 0 {
					continue
				}
				if box.Intersects(ColliderAABB(col)) {
					p.currentTriggers[CollisionPair{A: sensorObj, B: obj}] = true
				}
			}
		}
	}
}

// recordCollision marks a collision pair as active this frame and wakes sleeping objects
func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject) {
	p.currentCollisions[makePair(a, b)] = true
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	var entered, exited []CollisionPair
	for pair := range p.currentCollisions {
		if !p.activeCollisions[pair] {
			entered = append(entered, pair)
		}
	}
	for pair := range p.activeCollisions {
		if !p.currentCollisions[pair] {
			exited = append(exited, pair)
		}
	}
	p.activeCollisions = p.currentCollisions

	for _, pair := range entered {
		p.notify(pair.A, func(h engine.CollisionHandler) { h.OnCollisionEnter(pair.B) })
		p.notify(pair.B, func(h engine.CollisionHandler) { h.OnCollisionEnter(pair.A) })
	}
	for _, pair := range exited {
		p.notify(pair.A, func(h engine.CollisionHandler) { h.OnCollisionExit(pair.B) })
		p.notify(pair.B, func(h engine.CollisionHandler) { h.OnCollisionExit(pair.A) })
	}
}

// dispatchTriggerCallbacks sends OnTriggerEnter/Exit to the sensor's handlers.
// Handlers may destroy objects; pairs whose objects left the world are skipped.
func (p *PhysicsWorld) dispatchTriggerCallbacks() {
	var entered, exited []CollisionPair
	for pair := range p.currentTriggers {
		if !p.activeTriggers[pair] {
			entered = append(entered, pair)
		}
	}
	for pair := range p.activeTriggers {
		if !p.currentTriggers[pair] {
			exited = append(exited, pair)
		}
	}
	p.activeTriggers = p.currentTriggers

	for _, pair := range entered {
		if !p.members[pair.A] || !p.members[pair.B] {
			continue
		}
		for _, comp := range pair.A.Components() {
			if h, ok := comp.(engine.TriggerHandler); ok {
				h.OnTriggerEnter(pair.B)
			}
		}
	}
	for _, pair := range exited {
		if !p.members[pair.A] {
			continue
		}
		for _, comp := range pair.A.Components() {
			if h, ok := comp.(engine.TriggerHandler); ok {
				h.OnTriggerExit(pair.B)
			}
		}
	}
}

func (p *PhysicsWorld) notify(obj *engine.GameObject, call func(engine.CollisionHandler)) {
	if !p.members[obj] {
		return
	}
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			call(handler)
		}
	}
}
