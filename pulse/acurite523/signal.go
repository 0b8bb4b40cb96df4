// Package acurite523 implements pulse classification, framing, and
// device validation for the AcuRite 00523 refrigerator/freezer
// sensor.
package acurite523

// signalClass is the per-pulse classification produced by classify.
type signalClass int

const (
	classBit0Off signalClass = iota
	classBit0On
	classBit1Off
	classBit1On
	classBitstreamOff
	classBitstreamOn
	classChunkEnd
	classInvalid
)

// BitLength is the width of a 00523 candidate bitstream.
const BitLength = 48

// classify maps one (level, duration_us) pulse to a signalClass. The
// 00523 encodes each bit as an OFF half followed by an ON half of
// matching width-class; preamble pulses are wider, inter-chunk gaps
// wider still. Anything under 100us is noise.
func classify(level uint8, durationUS uint32) signalClass {
	switch level {
	case 0:
		switch {
		case durationUS >= 100 && durationUS < 300:
			return classBit0Off
		case durationUS >= 300 && durationUS < 500:
			return classBit1Off
		case durationUS >= 500 && durationUS < 700:
			return classBitstreamOff
		}
	case 1:
		switch {
		case durationUS >= 100 && durationUS < 300:
			return classBit1On
		case durationUS >= 300 && durationUS < 500:
			return classBit0On
		case durationUS >= 500 && durationUS < 700:
			return classBitstreamOn
		case durationUS >= 20000 && durationUS < 60000:
			return classChunkEnd
		}
	}
	return classInvalid
}
