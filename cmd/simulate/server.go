package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"solarsim/internal/metrics"
	"solarsim/internal/solarsystem"
	"solarsim/internal/telemetry"
)

// serverStep is the wall-clock interval between live-server ticks,
// each of which advances the simulation by one Δt=3600s step; the
// server runs its own background ticker rather than being driven by request
// volume, since there is no per-body traffic here (unlike the
// teacher's per-request latency proxy).
const serverStep = 1 * time.Second

// upgrader finishes the websocket upgrade the teacher's websocket.go
// left commented out: allow all origins, matching the teacher's
// intended (if unfinished) CheckOrigin policy.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// runServer serves the live status/metrics/websocket endpoints,
// generalizing the teacher's startHTTPServer/startHTTPSServer
// (main.go) from a latency-proxy handler to a physics-state feed. It
// blocks until the HTTP server stops; it installs no signal handling
// of its own.
func runServer(ss *solarsystem.SolarSystem, addr, tlsHosts string, collector *metrics.Collector, log *telemetry.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go tickForward(ctx, ss, log)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot(ss)); err != nil {
			log.Errorf("status encode: %v", err)
		}
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWebSocket(ss, w, r, log)
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if tlsHosts != "" {
		hosts := strings.Split(tlsHosts, ",")
		server.TLSConfig = autocertConfig(hosts, log)
		log.Infof("starting TLS status server on %s for hosts %v", addr, hosts)
		if err := server.ListenAndServeTLS("", ""); err != nil {
			log.Errorf("TLS server stopped: %v", err)
		}
		return
	}

	log.Infof("starting status server on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}

// tickForward advances ss by one Δt=3600s step every serverStep of
// wall-clock time, the live-server analogue of §4.7's batch advance
// operations, paced the same way AdvanceForward paces batch steps.
func tickForward(ctx context.Context, ss *solarsystem.SolarSystem, log *telemetry.Logger) {
	ticker := time.NewTicker(serverStep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ss.AdvanceForward(ctx, 1); err != nil {
				log.Warnf("tick advance: %v", err)
			}
		}
	}
}

// serveWebSocket upgrades the connection and streams the post-step
// particle snapshot (position, velocity and orbit polyline of each
// body, per §1's "positions -> consumers (visualisation)" data flow)
// to the viewer once per serverStep, until the client disconnects.
func serveWebSocket(ss *solarsystem.SolarSystem, w http.ResponseWriter, r *http.Request, log *telemetry.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(serverStep)
	defer ticker.Stop()
	for range ticker.C {
		if err := conn.WriteJSON(snapshot(ss)); err != nil {
			log.Infof("websocket client disconnected: %v", err)
			return
		}
	}
}
