// Package serialout implements the transport that carries emitted
// payloads (spec.md §1, declared external to the core): a thin
// wrapper over github.com/tarm/serial writing each Payload's 14 wire
// bytes unmodified, in the same io.ReadWriter-wrapper idiom as
// driver/tmc2209's UART device.
package serialout

import (
	"fmt"

	"github.com/tarm/serial"

	"github.com/kreddkrikk/acurite/pulse"
)

// Sink writes Payload records to a serial port, one wire-format
// record per Write.
type Sink struct {
	port *serial.Port
}

// Open opens a serial port at name/baud for payload output.
func Open(name string, baud int) (*Sink, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("serialout: open %s: %w", name, err)
	}
	return &Sink{port: port}, nil
}

// Write encodes p and writes its 14 bytes to the underlying port.
func (s *Sink) Write(p pulse.Payload) error {
	buf, err := p.MarshalBinary()
	if err != nil {
		return fmt.Errorf("serialout: encode payload: %w", err)
	}
	if _, err := s.port.Write(buf); err != nil {
		return fmt.Errorf("serialout: write payload: %w", err)
	}
	return nil
}

// Close closes the underlying serial port.
func (s *Sink) Close() error {
	return s.port.Close()
}
