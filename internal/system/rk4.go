package system

// Step advances every particle in the system by the signed step h
// (seconds; negative for backward integration) using the classical
// fourth-order Runge-Kutta method of §4.5, evaluating accelerations
// through the system's Provider at each of the four stages.
func (s *System) Step(h float64, julianDate float64) {
	s.stepTake = true

	for _, name := range s.order {
		s.byName[name].SnapshotOrigin()
	}

	s.evaluateStage(1, julianDate)
	s.advanceTrial(1, 0.5*h)

	s.evaluateStage(2, julianDate)
	s.advanceTrial(2, 0.5*h)

	s.evaluateStage(3, julianDate)
	s.advanceTrial(3, h)

	s.evaluateStage(4, julianDate)

	for _, name := range s.order {
		s.byName[name].Combine(h)
	}
}

// evaluateStage computes the acceleration of every particle at its
// current (trial) position via the Provider, then records that
// (velocity, acceleration) pair into scratch buffer i.
func (s *System) evaluateStage(i int, julianDate float64) {
	s.provider.Accelerate(s, julianDate)
	for _, name := range s.order {
		s.byName[name].RecordStage(i)
	}
}

// advanceTrial sets every particle's working (position, velocity) to
// origin + dt*(velocity, acceleration) recorded in stage i, ahead of
// the next acceleration evaluation.
func (s *System) advanceTrial(i int, dt float64) {
	for _, name := range s.order {
		p := s.byName[name]
		pos0, vel0 := p.Origin()
		v, a := p.Stage(i)
		p.SetTrial(pos0.Add(v.Scale(dt)), vel0.Add(a.Scale(dt)))
	}
}
