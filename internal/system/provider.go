package system

// NewtonGR is the default acceleration Provider: every particle feels
// the Newtonian (optionally oblate-corrected) sum of every massive
// attractor except itself, plus a post-Newtonian correction when the
// system has general relativity enabled (§4.2). The PN pass only
// begins once every particle's Newtonian acceleration has been
// assigned, per §4.2's evaluation-order requirement.
type NewtonGR struct{}

// Accelerate implements Provider.
func (NewtonGR) Accelerate(sys *System, julianDate float64) {
	massive := sys.Massive()

	for _, name := range sys.order {
		p := sys.byName[name]
		p.Acc = p.NewtonAcceleration(massive, julianDate)
	}

	if !sys.useGR {
		return
	}
	for _, name := range sys.order {
		p := sys.byName[name]
		p.Acc = p.Acc.Add(p.PostNewtonianCorrection(p.Acc, massive))
	}
}
