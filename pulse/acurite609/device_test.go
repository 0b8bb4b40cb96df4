package acurite609

import (
	"testing"

	"github.com/kreddkrikk/acurite/pulse"
)

// encode builds a syntactically valid 00609 candidate word from its
// fields, computing the checksum the way §4.6 specifies. temp13 is
// the raw 13-bit two's-complement temperature field.
func encode(signature, battery, channel uint8, temp13 uint16, humidity uint8) uint64 {
	c := uint64(signature) << 32
	c |= uint64(battery&0b11) << 30
	c |= uint64(channel&0b11) << 28
	c |= uint64(temp13&0x1FFF) << 15
	c |= uint64(humidity&0x7F) << 8

	a := byte(c >> 32)
	b := byte(c >> 24)
	cc := byte(c >> 16)
	d := byte(c >> 8)
	checksum := pulse.LowByte(a, b, cc, d)
	c |= uint64(checksum)
	return c
}

// signed13 encodes a signed temperature in 0.05 °C units into the
// 13-bit two's-complement field 00609 uses (sign via 0x2000).
func signed13(twentieths int32) uint16 {
	if twentieths < 0 {
		return uint16(0x2000 + twentieths)
	}
	return uint16(twentieths)
}

func TestDeviceValidateAccepts(t *testing.T) {
	// 694 * 0.05 = 34.7C, matches scenario S3's raw temp.
	cand := encode(0xC0, 0b10, requiredChannel, signed13(694), 37)
	d := NewOutdoor()
	if !d.Validate(cand) {
		t.Fatalf("expected candidate %#x to validate", cand)
	}
	p := d.CreatePayload(pulse.StatusOK)
	if p.Temperature != 347 {
		t.Errorf("temperature = %d, want 347", p.Temperature)
	}
	if p.Humidity != 370 {
		t.Errorf("humidity = %d, want 370", p.Humidity)
	}
	if p.Battery != 0b10 {
		t.Errorf("battery = %#b, want 0b10", p.Battery)
	}
}

func TestDeviceValidateNegativeTemperature(t *testing.T) {
	// Scenario S4: -6.2C, humidity 69%.
	cand := encode(0xAB, 0, requiredChannel, signed13(-124), 69)
	d := NewOutdoor()
	if !d.Validate(cand) {
		t.Fatalf("expected candidate %#x to validate", cand)
	}
	p := d.CreatePayload(pulse.StatusOK)
	if p.Temperature != -62 {
		t.Errorf("temperature = %d, want -62", p.Temperature)
	}
}

func TestDeviceLatchesSignatureOnFirstDecode(t *testing.T) {
	d := NewOutdoor()
	first := encode(0x42, 0, requiredChannel, signed13(100), 50)
	if !d.Validate(first) {
		t.Fatal("expected first candidate to validate and latch signature")
	}
	mismatched := encode(0x43, 0, requiredChannel, signed13(100), 50)
	if d.Validate(mismatched) {
		t.Fatal("expected a candidate with a different signature to be rejected once latched")
	}
	again := encode(0x42, 0, requiredChannel, signed13(100), 50)
	if !d.Validate(again) {
		t.Fatal("expected a candidate matching the latched signature to validate")
	}
}

func TestDeviceValidateRejectsWrongChannel(t *testing.T) {
	cand := encode(0xC0, 0, 1, signed13(100), 50)
	d := NewOutdoor()
	if d.Validate(cand) {
		t.Fatal("expected channel != 2 to be rejected")
	}
}

func TestDeviceValidateRejectsBadChecksum(t *testing.T) {
	cand := encode(0xC0, 0, requiredChannel, signed13(100), 50)
	cand ^= 1
	d := NewOutdoor()
	if d.Validate(cand) {
		t.Fatal("expected corrupted checksum to be rejected")
	}
}

func TestDeviceValidateRejectsOutOfRangeHumidity(t *testing.T) {
	cand := encode(0xC0, 0, requiredChannel, signed13(100), 0)
	d := NewOutdoor()
	if d.Validate(cand) {
		t.Fatal("expected humidity 0 to be rejected")
	}
	cand = encode(0xC0, 0, requiredChannel, signed13(100), 100)
	d = NewOutdoor()
	if d.Validate(cand) {
		t.Fatal("expected humidity 100 to be rejected")
	}
}

func TestDeviceValidateRejectsZeroCandidate(t *testing.T) {
	d := NewOutdoor()
	if d.Validate(0) {
		t.Fatal("expected zero candidate to be rejected")
	}
}
