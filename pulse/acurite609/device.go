package acurite609

import "github.com/kreddkrikk/acurite/pulse"

const requiredChannel = 2

// Device validates 00609 candidate words and latches signature,
// battery, humidity and temperature on success.
//
// Unlike 00523, the signature is not a constant: the sensor
// randomizes its 8-bit signature at every power-on, so it is latched
// from the first accepted candidate (§4.6, §9) and enforced
// thereafter for the life of the session.
type Device struct {
	id        uint16
	signature uint16 // 0 means "not yet latched"

	battery     uint8
	temperature float32
	humidity    float32
}

// NewOutdoor builds the registered outdoor thermometer Device.
func NewOutdoor() *Device {
	return &Device{id: pulse.DeviceOutdoor}
}

func (d *Device) ID() uint16 { return d.id }

// Temperature is a read-only snapshot of the last accepted decode, in
// degrees Celsius.
func (d *Device) Temperature() float32 { return d.temperature }

// Humidity is a read-only snapshot of the last accepted decode, in
// percent relative humidity.
func (d *Device) Humidity() float32 { return d.humidity }

// Battery is the raw 2-bit field from the last accepted decode; 00 is
// good.
func (d *Device) Battery() uint8 { return d.battery }

// Validate checks signature, channel, checksum and physical range on
// a 40-bit candidate, in that fail-fast order (§4.6), latching
// signature/battery/humidity/temperature on success.
func (d *Device) Validate(candidate uint64) bool {
	if candidate == 0 {
		return false
	}

	signature := uint16(candidate >> 32 & 0xFF)
	if d.signature != 0 && signature != d.signature {
		return false
	}

	channel := uint8(candidate >> 28 & 0b11)
	if channel != requiredChannel {
		return false
	}

	a := byte(candidate >> 32)
	b := byte(candidate >> 24)
	c := byte(candidate >> 16)
	e := byte(candidate >> 8)
	checksum := byte(candidate)
	if pulse.LowByte(a, b, c, e) != checksum {
		return false
	}

	raw := uint16(candidate >> 15 & 0x1FFF)
	var signed int32
	if raw&0x1000 == 0x1000 {
		signed = -int32(0x2000 - raw)
	} else {
		signed = int32(raw)
	}
	tempC := float32(signed) / 20

	humidity := uint8(candidate >> 8 & 0x7F)
	if humidity < 1 || humidity > 99 {
		return false
	}
	if tempC < -40 || tempC > 70 {
		return false
	}

	if d.signature == 0 {
		d.signature = signature
	}
	d.battery = uint8(candidate >> 30 & 0b11)
	d.humidity = float32(humidity)
	d.temperature = tempC
	return true
}

// CreatePayload builds a Payload from the device's latched state.
func (d *Device) CreatePayload(status pulse.Status) pulse.Payload {
	return pulse.Payload{
		Tag:         pulse.Tag,
		Model:       pulse.ModelAcurite609,
		Device:      d.id,
		Status:      status,
		Battery:     d.battery,
		Temperature: round10(d.temperature),
		Humidity:    round10(d.humidity),
	}
}

func round10(v float32) int16 {
	v *= 10
	if v >= 0 {
		return int16(v + 0.5)
	}
	return int16(v - 0.5)
}
