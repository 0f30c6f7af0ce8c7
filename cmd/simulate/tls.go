package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/acme/autocert"

	"solarsim/internal/telemetry"
)

// autocertConfig configures TLS via Let's Encrypt for exactly the
// configured hostnames, the same manager shape as the teacher's
// setupTLS (tls.go) reduced to a static allowlist: this server has no
// subdomain-routing grammar to validate against, just the operator's
// -tls-hosts flag.
func autocertConfig(hosts []string, log *telemetry.Logger) *tls.Config {
	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		allowed[strings.ToLower(strings.TrimSpace(h))] = true
	}

	manager := &autocert.Manager{
		Cache:  autocert.DirCache("certs"),
		Prompt: autocert.AcceptTOS,
		HostPolicy: func(ctx context.Context, host string) error {
			if allowed[strings.ToLower(host)] {
				return nil
			}
			log.Warnf("TLS: rejecting certificate request for disallowed host %s", host)
			return fmt.Errorf("host %s not in allowlist", host)
		},
		Email: os.Getenv("SOLARSIM_TLS_EMAIL"),
	}

	return manager.TLSConfig()
}
