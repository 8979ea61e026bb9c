package regio

import (
	"tinygo.org/x/drivers"

	"github.com/usedbytes/usi-i2c-slave/pkg"
)

// MaxTransfer is the longest register run a single WriteRegs call can
// move.
const MaxTransfer = 16

// Device is a register-file slave on an I2C bus.
type Device struct {
	bus  drivers.I2C
	addr uint16

	// Scratch for offset+data writes, reused across calls.
	scratch [MaxTransfer + 1]byte
}

// New creates a device handle for the slave at the given 7-bit address.
func New(bus drivers.I2C, addr uint8) *Device {
	return &Device{
		bus:  bus,
		addr: uint16(addr),
	}
}

// ReadReg reads a single register.
func (d *Device) ReadReg(reg uint8) (uint8, error) {
	d.scratch[0] = reg
	if err := d.bus.Tx(d.addr, d.scratch[:1], d.scratch[1:2]); err != nil {
		return 0, err
	}
	return d.scratch[1], nil
}

// ReadRegs reads a run of registers starting at reg into buf. The run
// wraps at the end of the slave's register file.
func (d *Device) ReadRegs(reg uint8, buf []byte) error {
	d.scratch[0] = reg
	return d.bus.Tx(d.addr, d.scratch[:1], buf)
}

// WriteReg writes a single register.
func (d *Device) WriteReg(reg, v uint8) error {
	d.scratch[0] = reg
	d.scratch[1] = v
	return d.bus.Tx(d.addr, d.scratch[:2], nil)
}

// WriteRegs writes a run of registers starting at reg. The run wraps at
// the end of the slave's register file. Returns ErrTransferTooLong for
// runs beyond MaxTransfer bytes.
func (d *Device) WriteRegs(reg uint8, data []byte) error {
	if len(data) > MaxTransfer {
		return pkg.ErrTransferTooLong
	}
	d.scratch[0] = reg
	n := copy(d.scratch[1:], data)
	err := d.bus.Tx(d.addr, d.scratch[:1+n], nil)
	if err != nil {
		pkg.LogWarn(pkg.ComponentRegisters, "register write failed",
			"reg", reg, "len", n, "error", err)
	}
	return err
}
