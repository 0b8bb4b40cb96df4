// Package gpioedge implements the session.EdgeSource over a real GPIO
// pin using periph.io, in the same style as seedhammer's button/
// joystick driver (periph.io/x/conn/v3/gpio, BothEdges,
// WaitForEdge/Read): open a pin, wait for edges, and report the level
// that just ended plus its duration.
package gpioedge

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Source reads edge transitions from the superheterodyne receiver's
// data pin.
type Source struct {
	pin gpio.PinIO

	lastEdge  time.Time
	lastLevel gpio.Level
}

// Open configures pinName for both-edge interrupts and begins
// tracking transitions from its current level.
func Open(pinName string) (*Source, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpioedge: init: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("gpioedge: unknown pin %q", pinName)
	}
	if err := pin.In(gpio.PullNoChange, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("gpioedge: configure %s: %w", pinName, err)
	}
	return &Source{
		pin:       pin,
		lastEdge:  time.Now(),
		lastLevel: pin.Read(),
	}, nil
}

// NextEdge blocks until the pin transitions or timeout elapses. On a
// transition it reports the level that just ended and the duration
// since the previous transition, per spec.md §9's edge-source
// contract: out-of-order or coalesced edges silently corrupt framing,
// so this must be called from a single reader in transition order.
func (s *Source) NextEdge(timeout time.Duration) (level uint8, durationUS uint32, ok bool) {
	if !s.pin.WaitForEdge(timeout) {
		return 0, 0, false
	}
	now := time.Now()
	ended := s.lastLevel
	elapsed := now.Sub(s.lastEdge)

	s.lastLevel = s.pin.Read()
	s.lastEdge = now

	return levelToUint8(ended), uint32(elapsed.Microseconds()), true
}

// Close releases the pin, returning it to its default mode.
func (s *Source) Close() error {
	return s.pin.In(gpio.PullNoChange, gpio.NoEdge)
}

func levelToUint8(l gpio.Level) uint8 {
	if l == gpio.High {
		return 1
	}
	return 0
}
