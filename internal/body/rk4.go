package body

import "solarsim/internal/vector3"

// derivative is one Runge-Kutta stage: the velocity and acceleration
// evaluated at that stage's trial position, i.e. d(pos)/dt and
// d(vel)/dt (§4.5).
type derivative struct {
	Vel vector3.Vector3
	Acc vector3.Vector3
}

// SnapshotOrigin saves the particle's (position, velocity) at the
// start of a Runge-Kutta step, into the stateO scratch buffer (§3).
// Every trial stage is computed relative to this saved origin.
func (p *Particle) SnapshotOrigin() {
	p.stateO = state{Pos: p.Pos, Vel: p.Vel}
}

// Origin returns the (position, velocity) saved by SnapshotOrigin.
func (p *Particle) Origin() (pos, vel vector3.Vector3) {
	return p.stateO.Pos, p.stateO.Vel
}

// SetTrial sets the particle's working position and velocity to a
// Runge-Kutta trial point, ahead of an acceleration evaluation.
func (p *Particle) SetTrial(pos, vel vector3.Vector3) {
	p.Pos, p.Vel = pos, vel
}

// RecordStage captures the particle's current velocity and
// already-computed acceleration into scratch buffer i (1-4), per §3's
// "four scratch buffers k1..k4 holding velocity/acceleration pairs".
func (p *Particle) RecordStage(i int) {
	d := derivative{Vel: p.Vel, Acc: p.Acc}
	switch i {
	case 1:
		p.k1 = d
	case 2:
		p.k2 = d
	case 3:
		p.k3 = d
	case 4:
		p.k4 = d
	default:
		panic("body: RecordStage index out of range")
	}
}

// Stage returns the velocity and acceleration recorded by
// RecordStage(i).
func (p *Particle) Stage(i int) (vel, acc vector3.Vector3) {
	var d derivative
	switch i {
	case 1:
		d = p.k1
	case 2:
		d = p.k2
	case 3:
		d = p.k3
	case 4:
		d = p.k4
	default:
		panic("body: Stage index out of range")
	}
	return d.Vel, d.Acc
}

// Combine applies the classical RK4 weighted average of the four
// recorded stages to advance the particle by signed step h from its
// saved origin (§4.5 step 5).
func (p *Particle) Combine(h float64) {
	pos0, vel0 := p.Origin()
	v1, a1 := p.Stage(1)
	v2, a2 := p.Stage(2)
	v3, a3 := p.Stage(3)
	v4, a4 := p.Stage(4)

	dPos := v1.Add(v2.Scale(2)).Add(v3.Scale(2)).Add(v4).Scale(h / 6)
	dVel := a1.Add(a2.Scale(2)).Add(a3.Scale(2)).Add(a4).Scale(h / 6)

	p.Pos = pos0.Add(dPos)
	p.Vel = vel0.Add(dVel)
}
