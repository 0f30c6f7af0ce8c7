// Command simulate is the surrounding application collaborator of
// §1/§6: a CLI that drives internal/solarsystem's operations and an
// optional live status server, generalizing the teacher's flag-based
// startup and HTTP serving (main.go) from a latency proxy to a
// physics driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarsim/internal/ephemeris"
	"solarsim/internal/metrics"
	"solarsim/internal/solarsystem"
	"solarsim/internal/telemetry"
)

func main() {
	var (
		startDate = flag.String("date", "2000-01-01T12:00:00Z", "simulation start instant, RFC3339 UTC")
		steps     = flag.Int("steps", 24, "number of 3600s Runge-Kutta steps to advance")
		backward  = flag.Bool("backward", false, "advance backward instead of forward")
		useGR     = flag.Bool("gr", false, "enable general relativity post-Newtonian correction")
		save      = flag.String("save", "", "path to write final state to (JSON), empty to skip")
		load      = flag.String("load", "", "path to load initial state from (JSON), empty to skip")
		serve     = flag.Bool("serve", false, "run a live HTTP/WebSocket status server instead of a batch run")
		addr      = flag.String("addr", ":8080", "address for -serve mode")
		tlsHosts  = flag.String("tls-hosts", "", "comma-separated hostname allowlist; enables autocert TLS when non-empty")
	)
	flag.Parse()

	log := telemetry.Default("simulate")

	at, err := time.Parse(time.RFC3339, *startDate)
	if err != nil {
		log.Errorf("invalid -date %q: %v", *startDate, err)
		os.Exit(1)
	}

	collector := metrics.NewCollector(nil)
	ss, err := solarsystem.Construct(ephemeris.NewKeplerian(), at, collector)
	if err != nil {
		log.Errorf("construct: %v", err)
		os.Exit(1)
	}
	if err := ss.SetGR(*useGR); err != nil {
		log.Errorf("set gr: %v", err)
		os.Exit(1)
	}

	if *load != "" {
		if err := loadState(ss, *load); err != nil {
			log.Errorf("load: %v", err)
			os.Exit(1)
		}
		log.Infof("loaded state from %s, clock now %v", *load, ss.ClockJulianDate())
	}

	if *serve {
		runServer(ss, *addr, *tlsHosts, collector, log)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Infof("received shutdown signal, cancelling batch advance")
		cancel()
	}()

	advance := ss.AdvanceForward
	direction := "forward"
	if *backward {
		advance = ss.AdvanceBackward
		direction = "backward"
	}

	log.Infof("advancing %s %d steps from clock %v", direction, *steps, ss.ClockJulianDate())
	if err := advance(ctx, *steps); err != nil {
		log.Errorf("advance: %v", err)
		os.Exit(1)
	}
	log.Infof("advance complete, clock now %v", ss.ClockJulianDate())

	if *save != "" {
		if err := saveState(ss, *save); err != nil {
			log.Errorf("save: %v", err)
			os.Exit(1)
		}
		log.Infof("saved state to %s", *save)
	}

	fmt.Printf("julian_date=%v\n", ss.ClockJulianDate())
}

func saveState(ss *solarsystem.SolarSystem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return ss.SaveState(f)
}

func loadState(ss *solarsystem.SolarSystem, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ss.LoadState(f)
}
