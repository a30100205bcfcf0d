package impact

import "math"

const (
	// Overlap below the slop is tolerated rather than corrected, which
	// keeps resting contacts from jittering.
	collisionSlop = 0.05
	// Only this fraction of the remaining overlap is corrected per step,
	// under-correcting to avoid overshoot.
	correctionPercent = 0.8

	// Squared-acceleration ceiling under which a slow body counts as idle
	// for sleep accounting.
	sleepAccelThreshold = 0.1

	// Tangential relative speed below this has no meaningful friction to
	// apply.
	frictionEpsilon = 1e-6
)

// World owns the simulated bodies and advances them. It is single
// threaded: Step must finish before the next call, and the body list must
// not be mutated from inside a step except through RemoveBody, which is
// deferred until the step completes.
type World struct {
	gravity Vector
	bodies  []*Body
	grid    *SpatialGrid

	slop    float64
	percent float64

	sleepVelocityThreshold float64
	sleepTimeThreshold     float64

	stepping bool
	removed  []*Body
}

func NewWorld() *World {
	return NewWorldConfig(DefaultConfig())
}

func NewWorldConfig(config Config) *World {
	config = config.withDefaults()
	return &World{
		gravity:                config.Gravity,
		grid:                   NewSpatialGrid(config.CellSize),
		slop:                   config.Slop,
		percent:                config.CorrectionPercent,
		sleepVelocityThreshold: config.SleepVelocityThreshold,
		sleepTimeThreshold:     config.SleepTimeThreshold,
	}
}

func (world *World) Gravity() Vector {
	return world.gravity
}

func (world *World) SetGravity(gravity Vector) {
	world.gravity = gravity
}

// AddBody registers the body with the world. The world does not copy or
// own the body: the caller keeps its reference and may mutate fields
// between steps. Adding a body twice is a no-op. Bodies without sleep
// tuning of their own pick up the world's configured defaults.
func (world *World) AddBody(body *Body) *Body {
	if containsBody(world.bodies, body) {
		return body
	}
	if body.SleepVelocityThreshold <= 0 {
		body.SleepVelocityThreshold = world.sleepVelocityThreshold
	}
	if body.SleepTimeThreshold <= 0 {
		body.SleepTimeThreshold = world.sleepTimeThreshold
	}
	world.bodies = append(world.bodies, body)
	return body
}

// RemoveBody unregisters the body. Removing an absent body is a no-op.
// Calls made during Step (from a Drawer, for instance) are collected and
// applied once the step finishes, so the iteration in flight never sees
// the list shrink.
func (world *World) RemoveBody(body *Body) {
	if world.stepping {
		world.removed = append(world.removed, body)
		return
	}
	for i, b := range world.bodies {
		if b == body {
			world.bodies = append(world.bodies[:i], world.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns a snapshot copy of the current body list, in insertion
// order.
func (world *World) Bodies() []*Body {
	bodies := make([]*Body, len(world.bodies))
	copy(bodies, world.bodies)
	return bodies
}

func (world *World) EachBody(f func(*Body)) {
	for i := 0; i < len(world.bodies); i++ {
		f(world.bodies[i])
	}
}

// Step advances the simulation by dt seconds: integrate awake bodies,
// rebuild the broad phase, then resolve every colliding candidate pair.
// No internal sub-stepping; the caller's scheduler owns the timestep.
func (world *World) Step(dt float64) {
	if dt == 0 {
		return
	}

	world.stepping = true

	for _, body := range world.bodies {
		if !body.IsActive || body.IsSleeping() {
			continue
		}
		world.integrate(body, dt)
	}

	world.grid.Clear()
	for _, body := range world.bodies {
		if !body.IsActive || !body.CheckCollision {
			continue
		}
		world.grid.Insert(body)
	}

	for _, pair := range world.grid.Pairs() {
		a, b := pair.A, pair.B
		info := Collide(a.shape, a.Position, b.shape, b.Position)
		if info.Colliding {
			world.resolve(a, b, info)
		}
	}

	world.stepping = false
	for _, body := range world.removed {
		world.RemoveBody(body)
	}
	world.removed = world.removed[:0]
}

// integrate runs the sleep check and, if the body stays awake,
// semi-implicit Euler with linear drag.
func (world *World) integrate(body *Body, dt float64) {
	total := body.Acceleration
	if body.UseGravity {
		total = total.Add(world.gravity)
	}

	idle := body.Velocity.LengthSq() < body.SleepVelocityThreshold*body.SleepVelocityThreshold &&
		total.LengthSq() < sleepAccelThreshold
	if idle {
		body.sleepTimer += dt
		if body.sleepTimer >= body.SleepTimeThreshold {
			body.sleep()
			return
		}
	} else {
		body.sleepTimer = 0
	}

	body.Velocity = body.Velocity.Add(total.Mult(dt))
	body.AngularVelocity += body.Torque * body.i_inv * dt

	// Heavy drag with a large dt must damp to a stop, not reverse.
	damping := math.Max(0, 1-body.Drag*dt)
	body.Velocity = body.Velocity.Mult(damping)
	body.AngularVelocity *= damping

	body.Position = body.Position.Add(body.Velocity.Mult(dt))
	body.Angle += body.AngularVelocity * dt

	body.Acceleration = Vector{}
	body.Torque = 0
}

// resolve pushes the overlapping pair apart and exchanges impulses.
// The manifold normal points from a toward b.
func (world *World) resolve(a, b *Body, info Manifold) {
	invMassSum := a.m_inv + b.m_inv
	if info.Penetration <= 0 || invMassSum == 0 {
		return
	}

	// A collision always wakes both participants.
	a.Activate()
	b.Activate()

	// Baumgarte-style positional correction, split by inverse mass so the
	// heavier body moves less. Overlap inside the slop is left alone, and
	// a negative remainder must not pull the bodies together.
	correction := math.Max(info.Penetration-world.slop, 0) / invMassSum * world.percent
	a.Position = a.Position.Sub(info.Normal.Mult(correction * a.m_inv))
	b.Position = b.Position.Add(info.Normal.Mult(correction * b.m_inv))

	rv := b.Velocity.Sub(a.Velocity)
	velAlongNormal := rv.Dot(info.Normal)
	if velAlongNormal > 0 {
		// Already separating; an impulse here would add energy.
		return
	}

	e := math.Min(a.Restitution, b.Restitution)
	j := -(1 + e) * velAlongNormal / invMassSum
	a.Velocity = a.Velocity.Sub(info.Normal.Mult(j * a.m_inv))
	b.Velocity = b.Velocity.Add(info.Normal.Mult(j * b.m_inv))

	// Coulomb friction along the contact tangent, clamped so it never
	// exceeds mu times the normal impulse.
	tangent := rv.Sub(info.Normal.Mult(velAlongNormal))
	if tangent.Length() < frictionEpsilon {
		return
	}
	tangent = tangent.Normalize()

	mu := (a.Friction + b.Friction) / 2
	jt := Clamp(-rv.Dot(tangent)/invMassSum, -j*mu, j*mu)
	a.Velocity = a.Velocity.Sub(tangent.Mult(jt * a.m_inv))
	b.Velocity = b.Velocity.Add(tangent.Mult(jt * b.m_inv))
}

func containsBody(bodies []*Body, body *Body) bool {
	for i := 0; i < len(bodies); i++ {
		if bodies[i] == body {
			return true
		}
	}
	return false
}
