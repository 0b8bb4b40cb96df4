package acurite523

import (
	"math/bits"

	"github.com/kreddkrikk/acurite/pulse"
)

// Signatures are hardcoded; discovered empirically and treated as
// immutable device identifiers (§6).
const (
	SignatureFreezer uint16 = 0xC049
	SignatureFridge  uint16 = 0xC07C
)

// Device validates 00523 candidate words against a fixed signature
// and latches battery/temperature on success.
type Device struct {
	id        uint16
	signature uint16

	battery     uint8
	temperature float32
}

// NewFreezer builds the registered freezer Device.
func NewFreezer() *Device {
	return &Device{id: pulse.DeviceFreezer, signature: SignatureFreezer}
}

// NewFridge builds the registered fridge Device.
func NewFridge() *Device {
	return &Device{id: pulse.DeviceFridge, signature: SignatureFridge}
}

func (d *Device) ID() uint16 { return d.id }

// Temperature is a read-only snapshot of the last accepted decode, in
// degrees Celsius.
func (d *Device) Temperature() float32 { return d.temperature }

// Battery is the raw 2-bit field from the last accepted decode; 00 is
// good, any other value is low (§9: the 2-bit field is preserved
// as-is rather than collapsed to a boolean).
func (d *Device) Battery() uint8 { return d.battery }

// Validate checks signature, checksum, parity and temperature range
// on a 48-bit candidate, in that fail-fast order (§4.5), latching
// battery/temperature on success.
func (d *Device) Validate(candidate uint64) bool {
	if candidate == 0 {
		return false
	}

	signature := uint16(candidate >> 32 & 0xFFFF)
	if signature != d.signature {
		return false
	}

	b47_40 := byte(candidate >> 40)
	b39_32 := byte(candidate >> 32)
	b31_24 := byte(candidate >> 24)
	b23_16 := byte(candidate >> 16) // parity | byte2
	b15_8 := byte(candidate >> 8)   // parity | byte1
	checksum := byte(candidate)

	if pulse.LowByte(b47_40, b39_32, b31_24, b23_16, b15_8) != checksum {
		return false
	}

	parity2 := b23_16>>7&1 == 1
	byte2 := b23_16 & 0x7F
	if !parityOK(byte2, parity2) {
		return false
	}
	parity1 := b15_8>>7&1 == 1
	byte1 := b15_8 & 0x7F
	if !parityOK(byte1, parity1) {
		return false
	}

	battery := uint8(candidate >> 30 & 0b11)

	raw := int32(byte2)<<7 | int32(byte1)
	tempC := (float32(raw) - 1800) / 18
	if tempC < -40 || tempC >= 70 {
		return false
	}

	d.battery = battery
	d.temperature = tempC
	return true
}

// parityOK reports whether data's popcount parity matches parityOdd:
// true (parity bit 1) means odd, false (parity bit 0) means even.
func parityOK(data byte, parityOdd bool) bool {
	odd := bits.OnesCount8(data)%2 == 1
	return odd == parityOdd
}

// CreatePayload builds a Payload from the device's latched state.
// Humidity is not reported by 00523 (wire field absent).
func (d *Device) CreatePayload(status pulse.Status) pulse.Payload {
	return pulse.Payload{
		Tag:         pulse.Tag,
		Model:       pulse.ModelAcurite523,
		Device:      d.id,
		Status:      status,
		Battery:     d.battery,
		Temperature: round10(d.temperature),
		Humidity:    0,
	}
}

func round10(c float32) int16 {
	v := c * 10
	if v >= 0 {
		return int16(v + 0.5)
	}
	return int16(v - 0.5)
}
