package object

import (
	"math"
	"testing"

	"github.com/tomz197/rocket/internal/geometry"
)

func TestPlayerRotationCancelsWhenBothHeld(t *testing.T) {
	p := NewPlayer(geometry.Point{X: 100, Y: 100}, DefaultPlayerTuning())
	before := p.Heading
	p.Steer(0.1, true, true, false, DefaultPlayerTuning())
	if p.Heading != before {
		t.Fatalf("heading changed from %f to %f with both rotations held", before, p.Heading)
	}
}

func TestPlayerRotationScalesWithTime(t *testing.T) {
	tuning := DefaultPlayerTuning()
	p := NewPlayer(geometry.Point{}, tuning)
	p.Heading = 0
	p.Steer(0.1, false, true, false, tuning)
	want := tuning.RotationSpeed * 0.1
	if math.Abs(p.Heading-want) > 1e-12 {
		t.Fatalf("heading = %f, want %f", p.Heading, want)
	}
}

func TestPlayerBoostIsCapped(t *testing.T) {
	tuning := DefaultPlayerTuning()
	p := NewPlayer(geometry.Point{}, tuning)
	for i := 0; i < 100; i++ {
		p.Steer(0.1, false, false, true, tuning)
	}
	if got := p.Vel.Len(); math.Abs(got-tuning.MaxSpeed) > 1e-9 {
		t.Fatalf("speed = %f, want cap %f", got, tuning.MaxSpeed)
	}
}

func TestPlayerDampingIsFrameRateConsistent(t *testing.T) {
	tuning := DefaultPlayerTuning()

	coarse := NewPlayer(geometry.Point{}, tuning)
	coarse.Vel = geometry.Point{X: 0, Y: -400}
	fine := coarse

	coarse.Steer(0.2, false, false, false, tuning)
	for i := 0; i < 4; i++ {
		fine.Steer(0.05, false, false, false, tuning)
	}

	if math.Abs(coarse.Vel.X-fine.Vel.X) > 1e-9 || math.Abs(coarse.Vel.Y-fine.Vel.Y) > 1e-9 {
		t.Fatalf("one 0.2s step gave %v, four 0.05s steps gave %v", coarse.Vel, fine.Vel)
	}
	if coarse.Vel.Len() >= 400 || coarse.Vel.Len() <= tuning.CruiseSpeed {
		t.Fatalf("expected speed to relax toward cruise speed, got %f", coarse.Vel.Len())
	}
}

func TestPlayerMoveWraps(t *testing.T) {
	size := geometry.NewSize(1024, 600)
	p := Player{Pos: geometry.Point{X: 1020, Y: 300}, Vel: geometry.Point{X: 100, Y: 0}}
	p.Move(0.1, size)
	want := 1020 + 100*0.1 - 1024
	if p.Pos.X != want || p.Pos.Y != 300 {
		t.Fatalf("pos = %v, want (%f, 300)", p.Pos, want)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	var p Player
	if !p.TryFire(0.01, true, 0.1) {
		t.Fatalf("first shot should fire")
	}
	if p.TryFire(0.05, true, 0.1) {
		t.Fatalf("shot fired during cooldown")
	}
	if p.TryFire(0.05, false, 0.1) {
		t.Fatalf("fired without shoot held")
	}
	if p.Cooldown() != 0 {
		t.Fatalf("cooldown should have elapsed, got %f", p.Cooldown())
	}
	if !p.TryFire(0.01, true, 0.1) {
		t.Fatalf("shot should fire once the cooldown elapsed")
	}
}

func TestEnemyChasesTarget(t *testing.T) {
	e := NewEnemy(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0}, 100)
	e.Move(0.1)
	if math.Abs(e.Pos.X-10) > 1e-12 || e.Pos.Y != 0 {
		t.Fatalf("pos = %v, want (10, 0)", e.Pos)
	}

	e.Chase(geometry.Point{X: 10, Y: 50}, 100)
	if e.Vel.X != 0 || math.Abs(e.Vel.Y-100) > 1e-12 {
		t.Fatalf("vel = %v, want (0, 100)", e.Vel)
	}

	// Sitting on the target keeps the old velocity.
	e.Pos = geometry.Point{X: 10, Y: 50}
	e.Chase(geometry.Point{X: 10, Y: 50}, 100)
	if e.Vel.Len() == 0 {
		t.Fatalf("velocity lost when on target")
	}
}

func TestBulletAgesAndExpires(t *testing.T) {
	b := NewBullet(geometry.Point{}, 0, 500, 0.25)
	b.Update(0.1)
	if math.Abs(b.Pos.X-50) > 1e-9 || b.Expired() {
		t.Fatalf("unexpected bullet state %+v", b)
	}
	b.Update(0.2)
	if !b.Expired() {
		t.Fatalf("bullet should expire at ttl <= 0, ttl=%f", b.TTL)
	}
}

func TestExplosionShape(t *testing.T) {
	at := geometry.Point{X: 40, Y: 60}
	ps := AppendExplosion(nil, at, 10)
	if len(ps) != ExplosionSize(10) {
		t.Fatalf("len = %d, want %d", len(ps), ExplosionSize(10))
	}
	for _, p := range ps {
		if p.Pos != at {
			t.Fatalf("particle spawned away from explosion center: %v", p.Pos)
		}
		if p.TTL <= 0 || p.TTL >= 1 {
			t.Fatalf("ttl out of range: %f", p.TTL)
		}
		if math.Abs(p.Vel.Len()-ExplosionSpeed*p.TTL) > 1e-9 {
			t.Fatalf("speed %f does not match ttl %f", p.Vel.Len(), p.TTL)
		}
	}
	if got := AppendExplosion(nil, at, 1); len(got) != 0 {
		t.Fatalf("intensity 1 should emit nothing, got %d", len(got))
	}
}

func TestParticleDecay(t *testing.T) {
	p := NewParticle(geometry.Point{}, geometry.Point{X: 1}, 0.5)
	if p.Decay() != 2.5 {
		t.Fatalf("decay = %f, want 2.5", p.Decay())
	}
	p.Update(0.5)
	if !p.Expired() {
		t.Fatalf("particle should expire")
	}
}

func TestTrailParticleLeavesBehindShip(t *testing.T) {
	p := NewPlayer(geometry.Point{X: 50, Y: 50}, DefaultPlayerTuning())
	p.Heading = 0
	tp := NewTrailParticle(&p)
	if tp.Pos.X >= p.Pos.X {
		t.Fatalf("trail should start behind the ship, got %v", tp.Pos)
	}
	if tp.Vel.X >= 0 {
		t.Fatalf("trail should move backward, got %v", tp.Vel)
	}
	if tp.TTL != TrailTTL {
		t.Fatalf("ttl = %f", tp.TTL)
	}
}

func TestPlayerSteersThroughHugeSteps(t *testing.T) {
	tuning := DefaultPlayerTuning()
	bounds := geometry.NewSize(1024, 600)

	for _, dt := range []float64{1e17, math.MaxFloat64} {
		p := NewPlayer(bounds.Center(), tuning)
		p.Steer(dt, true, false, true, tuning)
		p.Move(dt, bounds)

		if math.IsNaN(p.Heading) || p.Heading < -math.Pi || p.Heading > math.Pi {
			t.Fatalf("dt=%g: heading = %v, want within [-pi, pi]", dt, p.Heading)
		}
		if !p.Vel.IsFinite() || p.Vel.Len() > tuning.MaxSpeed+1e-9 {
			t.Fatalf("dt=%g: velocity = %v", dt, p.Vel)
		}
		if !bounds.Contains(p.Pos) {
			t.Fatalf("dt=%g: position %v left the world", dt, p.Pos)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, math.Pi, 7, -7, 1e17, -1e300} {
		got := normalizeAngle(a)
		if got < -math.Pi || got > math.Pi {
			t.Fatalf("normalizeAngle(%g) = %v", a, got)
		}
		if math.Abs(a) <= math.Pi && got != a {
			t.Fatalf("normalizeAngle(%g) = %v, want unchanged", a, got)
		}
	}
}
