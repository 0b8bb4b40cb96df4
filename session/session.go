// Package session hosts the start/available façade described in
// spec.md §4.8: it resets state on startup and on each successful
// emission, and blocks the edge source until either a payload is
// produced or the caller-supplied deadline elapses.
package session

import (
	"log"
	"time"

	"github.com/kreddkrikk/acurite/pulse"
)

// EdgeSource is the external edge-transition producer: a GPIO pin, a
// recorded trace, or a test fixture. NextEdge blocks for up to
// timeout and reports ok=false on timeout with no edge observed.
//
// duration_us is the time since the previous transition of the
// opposite level, per spec.md §9: out-of-order or coalesced edges
// silently corrupt framing, so implementations on interrupt-driven
// platforms must timestamp in the ISR and deliver events in order.
type EdgeSource interface {
	NextEdge(timeout time.Duration) (level uint8, durationUS uint32, ok bool)
}

// minPulseWidth is the noise floor; the host discards anything
// shorter before it ever reaches a classifier (spec.md §6).
const minPulseWidth = 100

// Session owns a Dispatcher and the EdgeSource driving it, providing
// the blocking start/available surface hosts use. All state --
// framing machines, latched device readings -- lives for the life of
// the Session; nothing is package-scoped or shared across sessions.
type Session struct {
	source     EdgeSource
	dispatcher *pulse.Dispatcher
	onAccept   func(pulse.Device)

	// Logger receives framing-rejection (debug) and emission (info)
	// log lines. Defaults to log.Default(); tests inject their own to
	// assert on log output without touching the process-wide logger.
	Logger *log.Logger
}

// New builds a Session over the given edge source and models. Devices
// are reached through each model's Devices(), per pulse.Dispatcher.
func New(source EdgeSource, models ...pulse.Model) *Session {
	s := &Session{
		source:     source,
		dispatcher: pulse.NewDispatcher(models...),
		Logger:     log.Default(),
	}
	s.dispatcher.OnAccept = func(dev pulse.Device) {
		s.logf("session: accepted payload from device %d", dev.ID())
		if s.onAccept != nil {
			s.onAccept(dev)
		}
	}
	s.dispatcher.OnReject = func(modelID uint16, candidate uint64) {
		s.logf("session: debug: model %d framed candidate %#x, no device validated it", modelID, candidate)
	}
	return s
}

// logf writes to Logger if one is set. A caller that sets Logger to
// nil to silence logging doesn't crash the session on the next event.
func (s *Session) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// OnAccept registers a callback invoked with the accepting Device
// whenever a candidate is promoted to a Payload, letting a host
// update stats without the core depending on a metrics library.
func (s *Session) OnAccept(fn func(pulse.Device)) {
	s.onAccept = fn
}

// Start arms the session. Framing state was already zero-valued at
// construction; Start exists as a named lifecycle hook matching
// spec.md §4.8 and §9 ("construct at start(), drop at teardown") so
// hosts have a single place to call before polling Available.
func (s *Session) Start() {}

// Available blocks until a payload is emitted or timeout elapses. It
// reports (payload, true) on success, or a Payload with
// Status=StatusTimeout and false on timeout, matching the
// "status = TIMEOUT or absence-of-value" convention in spec.md §7.
func (s *Session) Available(timeout time.Duration) (pulse.Payload, bool) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return pulse.Payload{Status: pulse.StatusTimeout}, false
		}
		level, durationUS, ok := s.source.NextEdge(remaining)
		if !ok {
			continue
		}
		if durationUS < minPulseWidth {
			continue
		}
		if payload, accepted := s.dispatcher.Feed(durationUS, level); accepted {
			return payload, true
		}
	}
}
