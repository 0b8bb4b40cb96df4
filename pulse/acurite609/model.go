package acurite609

import "github.com/kreddkrikk/acurite/pulse"

// Model wires a FramingState to its registered devices, implementing
// pulse.Model.
type Model struct {
	framing FramingState
	devices []pulse.Device
}

// NewModel builds a 00609 Model registered with the given devices, in
// the order the Dispatcher will try them.
func NewModel(devices ...*Device) *Model {
	m := &Model{}
	for _, d := range devices {
		m.devices = append(m.devices, d)
	}
	return m
}

func (m *Model) ID() uint16 { return pulse.ModelAcurite609 }

func (m *Model) ParseRF(durationUS uint32, level uint8) uint64 {
	return m.framing.ParseRF(durationUS, level)
}

func (m *Model) Clear() { m.framing.Clear() }

func (m *Model) Devices() []pulse.Device { return m.devices }
