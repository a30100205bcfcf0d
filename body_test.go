package impact

import (
	"math"
	"testing"
)

func TestNewBodyValidation(t *testing.T) {
	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}

	expectPanic("negative mass", func() { NewBody(-1, NewCircle(1)) })
	expectPanic("nil shape", func() { NewBody(1, nil) })
	expectPanic("zero radius", func() { NewCircle(0) })
	expectPanic("two vertices", func() { NewPolygon([]Vector{{0, 0}, {1, 0}}) })
}

func TestMassInverse(t *testing.T) {
	body := NewBody(2, NewCircle(1))
	if body.InvMass() != 0.5 {
		t.Errorf("Expected invMass 0.5 got %v", body.InvMass())
	}

	body.SetMass(0)
	if body.InvMass() != 0 {
		t.Errorf("Static body must have invMass 0, got %v", body.InvMass())
	}
	if !body.IsStatic() {
		t.Error("Zero mass body should be static")
	}
}

func TestApplyForceStatic(t *testing.T) {
	body := NewStaticBody(NewBox(10, 10))
	body.ApplyForce(Vector{100, 100})
	if !body.Acceleration.Equal(Vector{}) {
		t.Error("Force on a static body must be a no-op")
	}
}

func TestApplyForce(t *testing.T) {
	body := NewBody(2, NewCircle(1))
	body.ApplyForce(Vector{10, 0})
	if !body.Acceleration.Equal(Vector{5, 0}) {
		t.Errorf("Expected acceleration 5,0 got %v", body.Acceleration)
	}
}

func TestApplyTorque(t *testing.T) {
	body := NewBody(1, NewCircle(1))
	body.ApplyTorque(5)
	if body.Torque != 0 {
		t.Error("Torque with zero moment must be a no-op")
	}

	body.SetMoment(2)
	body.ApplyTorque(5)
	if body.Torque != 5 {
		t.Errorf("Expected torque 5 got %v", body.Torque)
	}
}

func TestApplyImpulseDoesNotWake(t *testing.T) {
	body := NewBody(1, NewCircle(1))
	body.sleep()

	body.ApplyImpulse(Vector{3, 0})
	if !body.Velocity.Equal(Vector{3, 0}) {
		t.Errorf("Impulse must change velocity, got %v", body.Velocity)
	}
	if !body.IsSleeping() {
		t.Error("Impulse alone must not wake the body; callers call Activate")
	}

	body.Activate()
	if body.IsSleeping() {
		t.Error("Activate must wake the body")
	}
}

func TestKineticEnergy(t *testing.T) {
	body := NewBody(2, NewCircle(1))
	if ke := body.KineticEnergy(); ke != 0 {
		t.Errorf("Expected 0 at rest, got %v", ke)
	}

	body.Velocity = Vector{3, 0}
	if ke := body.KineticEnergy(); ke != 18 {
		t.Errorf("Expected m*v*v = 18, got %v", ke)
	}

	// An infinite moment with zero spin must not produce 0*Inf = NaN.
	body.SetMoment(math.Inf(1))
	if ke := body.KineticEnergy(); math.IsNaN(ke) || ke != 18 {
		t.Errorf("Expected 18 with infinite moment at rest, got %v", ke)
	}
}
