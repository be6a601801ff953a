// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/fitiplus/internal/logger"
)

const defaultProbeInterval = 30 * time.Second

const (
	overrideNone int32 = iota
	overrideOnline
	overrideOffline
)

// ConnectivityProbe pings the API on a ticker and remembers whether the last
// ping got any response. It starts out online so the first login attempt
// goes to the network.
//
// SetOnline pins the state regardless of probe results until ResetOverride
// is called.
type ConnectivityProbe struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	online   atomic.Bool
	override atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityProbe returns an idle probe. An interval of zero or less
// defaults to 30 seconds.
func NewConnectivityProbe(pinger Pinger, interval time.Duration, log *logger.Logger) *ConnectivityProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	p := &ConnectivityProbe{pinger: pinger, interval: interval, logger: log}
	p.online.Store(true)
	return p
}

// Online implements service.Connectivity.
func (p *ConnectivityProbe) Online() bool {
	switch p.override.Load() {
	case overrideOnline:
		return true
	case overrideOffline:
		return false
	default:
		return p.online.Load()
	}
}

// SetOnline forces the reported state.
func (p *ConnectivityProbe) SetOnline(online bool) {
	if online {
		p.override.Store(overrideOnline)
	} else {
		p.override.Store(overrideOffline)
	}
}

// ResetOverride returns to reporting probe results.
func (p *ConnectivityProbe) ResetOverride() {
	p.override.Store(overrideNone)
}

// Probe pings once and records the result.
func (p *ConnectivityProbe) Probe(ctx context.Context) bool {
	err := p.pinger.Ping(ctx)
	if ctx.Err() != nil {
		// shutting down, not a connectivity signal
		return p.online.Load()
	}

	online := err == nil
	if was := p.online.Swap(online); was != online {
		ev := p.logger.Info()
		if !online {
			ev = p.logger.Warn().Err(err)
		}
		ev.Str("func", "ConnectivityProbe.Probe").Bool("online", online).Msg("connectivity changed")
	}
	return online
}

// Start stops any previous run, probes once right away and then every
// interval until ctx is cancelled or Stop is called.
func (p *ConnectivityProbe) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and waits for it to exit.
func (p *ConnectivityProbe) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
