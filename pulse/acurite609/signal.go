// Package acurite609 implements pulse classification, framing, and
// device validation for the AcuRite 00609 outdoor thermometer.
package acurite609

// signalClass is the per-pulse classification produced by classify.
type signalClass int

const (
	classOff signalClass = iota
	classBit0
	classBit1
	classBitstreamStart
	classBitstreamEnd
	classChunkStart
	classChunkEnd
	classInvalid
)

// BitLength is the width of a 00609 candidate bitstream.
const BitLength = 40

// classify maps one (level, duration_us) pulse to a signalClass. The
// 00609 is a true pulse-width scheme on the ON half only; the OFF
// half is a fixed idle.
func classify(level uint8, durationUS uint32) signalClass {
	switch level {
	case 0:
		if durationUS < 1200 {
			return classOff
		}
	case 1:
		switch {
		case durationUS < 300:
			return classChunkStart
		case durationUS < 1200:
			return classBit0
		case durationUS < 3000:
			return classBit1
		case durationUS >= 8700 && durationUS < 9000:
			return classBitstreamStart
		case durationUS >= 10000 && durationUS < 20000:
			return classBitstreamEnd
		case durationUS >= 20000 && durationUS < 40000:
			return classChunkEnd
		}
	}
	return classInvalid
}
