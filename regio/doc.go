// Package regio provides master-side access to register-file I2C
// slaves.
//
// A [Device] wraps any bus implementing the I2C interface from
// tinygo.org/x/drivers and speaks the usual register protocol: a write
// is START, address+W, offset, data, STOP; a read is START, address+W,
// offset, repeated START, address+R, data, NAK, STOP. It works against
// real hardware buses (machine.I2C on TinyGo) and against the simulated
// slave in [github.com/usedbytes/usi-i2c-slave/slave/hal/sim] alike.
//
//	dev := regio.New(bus, 0x40)
//	if err := dev.WriteReg(0x00, 0xAB); err != nil {
//	    ...
//	}
//	v, err := dev.ReadReg(0x00)
//
// Transfers reuse a fixed scratch buffer, so the package allocates
// nothing after construction; multi-byte writes are limited to
// [MaxTransfer] bytes, while reads fill the caller's buffer whatever its
// length.
package regio
