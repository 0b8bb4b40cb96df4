package pulse

// Dispatcher fans each pulse event to every registered Model and
// accepts the candidate word from the first Device that validates it.
//
// Models are polled in registration order (§4.7); two models cannot
// both produce a word on the same event because their classification
// tables are disjoint.
type Dispatcher struct {
	models []Model

	// OnAccept, if set, is invoked after a candidate is accepted but
	// before models are cleared, letting a host update stats without
	// the core depending on a metrics library.
	OnAccept func(Device)

	// OnReject, if set, is invoked when a model frames a full candidate
	// word but no registered Device validates it, letting a host log
	// the rejection without the core depending on a logging library.
	OnReject func(modelID uint16, candidate uint64)
}

// NewDispatcher builds a Dispatcher over the given models, in poll order.
func NewDispatcher(models ...Model) *Dispatcher {
	return &Dispatcher{models: models}
}

// Feed runs one pulse event through every model and returns the
// Payload and true if a device accepted a resulting candidate.
func (d *Dispatcher) Feed(durationUS uint32, level uint8) (Payload, bool) {
	for _, m := range d.models {
		candidate := m.ParseRF(durationUS, level)
		if candidate == 0 {
			continue
		}
		for _, dev := range m.Devices() {
			if !dev.Validate(candidate) {
				continue
			}
			if d.OnAccept != nil {
				d.OnAccept(dev)
			}
			payload := dev.CreatePayload(StatusOK)
			d.clearAll()
			return payload, true
		}
		if d.OnReject != nil {
			d.OnReject(m.ID(), candidate)
		}
	}
	return Payload{}, false
}

// clearAll resets every model's framing state, discarding the rest of
// the current burst's repeated blocks now that one has been accepted.
func (d *Dispatcher) clearAll() {
	for _, m := range d.models {
		m.Clear()
	}
}
