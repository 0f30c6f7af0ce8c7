package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordStepIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordStep("forward", 0.002)
	c.RecordStep("forward", 0.003)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if !hasCounterValue(families, "solarsim_steps_total", 2) {
		t.Fatalf("solarsim_steps_total not found with value 2 in %v", families)
	}
}

func TestSetSimulatedClockAndDriftResidual(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.SetSimulatedClock(2451545.0)
	c.SetDriftResidual("solar", 0)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if !hasGaugeValue(families, "solarsim_simulated_julian_date", 2451545.0) {
		t.Fatalf("solarsim_simulated_julian_date not recorded in %v", families)
	}
	if !hasGaugeValue(families, "solarsim_drift_residual_meters", 0) {
		t.Fatalf("solarsim_drift_residual_meters not recorded in %v", families)
	}
}

func hasCounterValue(families []*dto.MetricFamily, name string, want float64) bool {
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var total float64
		for _, m := range f.Metric {
			total += m.GetCounter().GetValue()
		}
		return total == want
	}
	return false
}

func hasGaugeValue(families []*dto.MetricFamily, name string, want float64) bool {
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.Metric {
			if m.GetGauge().GetValue() == want {
				return true
			}
		}
	}
	return false
}
