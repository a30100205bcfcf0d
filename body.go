package impact

import "fmt"

// Default sleep tuning, applied through the world config. A body slower
// than the velocity threshold (with no meaningful acceleration) for the
// time threshold is put to sleep.
const (
	DefaultSleepVelocityThreshold = 5.0
	DefaultSleepTimeThreshold     = 1.0
)

// Body is one simulated rigid body. Kinematic and material fields are
// exported and may be mutated directly between steps; mass and moment go
// through setters so their cached inverses can never drift.
type Body struct {
	id int

	Position     Vector
	Velocity     Vector
	Acceleration Vector

	// Angle, angular velocity and torque integrate each step, but contact
	// resolution applies linear impulses only.
	Angle           float64
	AngularVelocity float64
	Torque          float64

	// mass, moment of inertia and their inverses. Zero mass means
	// infinite (static): the zero inverse drops the body out of every
	// impulse and correction term.
	m     float64
	m_inv float64
	i     float64
	i_inv float64

	Restitution float64
	Friction    float64
	Drag        float64

	UseGravity     bool
	IsActive       bool
	CheckCollision bool

	// Sleep tuning. Left zero, the world stamps its configured defaults
	// when the body is added.
	SleepVelocityThreshold float64
	SleepTimeThreshold     float64
	awake                  bool
	sleepTimer             float64

	shape Shape

	UserData interface{}
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.id)
}

var bodyCur int = 0

func NewBody(mass float64, shape Shape) *Body {
	assert(shape != nil, "Body needs a shape")

	body := &Body{
		id:             bodyCur,
		shape:          shape,
		Restitution:    0.2,
		Friction:       0.3,
		UseGravity:     true,
		IsActive:       true,
		CheckCollision: true,
		awake:          true,
	}
	bodyCur++

	body.SetMass(mass)
	return body
}

// NewStaticBody returns an immovable body: zero mass, gravity off.
func NewStaticBody(shape Shape) *Body {
	body := NewBody(0, shape)
	body.UseGravity = false
	return body
}

func (body *Body) Shape() Shape {
	return body.shape
}

func (body *Body) SetShape(shape Shape) {
	assert(shape != nil, "Body needs a shape")
	body.shape = shape
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) InvMass() float64 {
	return body.m_inv
}

func (body *Body) SetMass(mass float64) {
	assert(mass >= 0, "Mass must be non-negative")
	body.m = mass
	if mass > 0 {
		body.m_inv = 1 / mass
	} else {
		body.m_inv = 0
	}
}

func (body *Body) Moment() float64 {
	return body.i
}

func (body *Body) InvMoment() float64 {
	return body.i_inv
}

func (body *Body) SetMoment(moment float64) {
	assert(moment >= 0, "Moment must be non-negative")
	body.i = moment
	if moment > 0 {
		body.i_inv = 1 / moment
	} else {
		body.i_inv = 0
	}
}

// IsStatic reports whether the body has infinite mass.
func (body *Body) IsStatic() bool {
	return body.m_inv == 0
}

// ApplyForce accumulates f into the body's acceleration, scaled by inverse
// mass. Static bodies ignore it.
func (body *Body) ApplyForce(f Vector) {
	if body.m_inv == 0 {
		return
	}
	body.Acceleration = body.Acceleration.Add(f.Mult(body.m_inv))
}

// ApplyTorque accumulates t, ignored for bodies with zero moment.
func (body *Body) ApplyTorque(t float64) {
	if body.i <= 0 {
		return
	}
	body.Torque += t
}

// ApplyImpulse changes velocity instantaneously. The caller is responsible
// for any mass scaling, and for calling Activate on a sleeping body — a
// sleeping body keeps the new velocity but stays out of integration until
// woken.
func (body *Body) ApplyImpulse(j Vector) {
	body.Velocity = body.Velocity.Add(j)
}

// Activate wakes the body and restarts its sleep countdown.
func (body *Body) Activate() {
	body.awake = true
	body.sleepTimer = 0
}

func (body *Body) IsSleeping() bool {
	return !body.awake
}

// sleep zeroes motion state and parks the body until something wakes it.
func (body *Body) sleep() {
	body.awake = false
	body.Velocity = Vector{}
	body.Acceleration = Vector{}
}

func (body *Body) KineticEnergy() float64 {
	// Need to do some fudging to avoid NaNs
	vsq := body.Velocity.Dot(body.Velocity)
	wsq := body.AngularVelocity * body.AngularVelocity
	var a, b float64
	if vsq != 0 {
		a = vsq * body.m
	}
	if wsq != 0 {
		b = wsq * body.i
	}
	return a + b
}
