package regio

import (
	"bytes"
	"errors"
	"testing"

	"tinygo.org/x/drivers"

	"github.com/usedbytes/usi-i2c-slave/pkg"
	"github.com/usedbytes/usi-i2c-slave/slave"
	"github.com/usedbytes/usi-i2c-slave/slave/hal/sim"
)

// newSlave builds a simulated 4-register slave at 0x40 with the last
// register read-only.
func newSlave(t *testing.T) (*slave.Engine, drivers.I2C) {
	t.Helper()

	u := sim.New()
	eng, err := slave.New(u, 0x40, make([]byte, 4), []byte{0xFF, 0xFF, 0xFF, 0x00})
	if err != nil {
		t.Fatalf("slave.New() error: %v", err)
	}
	u.Wire(eng.OnStart, eng.OnOverflow)
	if err := eng.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return eng, sim.NewMaster(u)
}

func TestWriteReadSingle(t *testing.T) {
	_, bus := newSlave(t)
	dev := New(bus, 0x40)

	if err := dev.WriteReg(0x02, 0x5A); err != nil {
		t.Fatalf("WriteReg() error: %v", err)
	}
	v, err := dev.ReadReg(0x02)
	if err != nil {
		t.Fatalf("ReadReg() error: %v", err)
	}
	if v != 0x5A {
		t.Errorf("ReadReg() = %#02x, want 0x5A", v)
	}
}

func TestWriteReadRun(t *testing.T) {
	_, bus := newSlave(t)
	dev := New(bus, 0x40)

	data := []byte{0x11, 0x22, 0x33}
	if err := dev.WriteRegs(0x00, data); err != nil {
		t.Fatalf("WriteRegs() error: %v", err)
	}

	got := make([]byte, 3)
	if err := dev.ReadRegs(0x00, got); err != nil {
		t.Fatalf("ReadRegs() error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadRegs() = %#02x, want %#02x", got, data)
	}
}

func TestReadOnlyRegister(t *testing.T) {
	eng, bus := newSlave(t)
	eng.Registers[3] = 0x77
	dev := New(bus, 0x40)

	// The slave ACKs but masks the write off.
	if err := dev.WriteReg(0x03, 0xFF); err != nil {
		t.Fatalf("WriteReg() error: %v", err)
	}
	v, err := dev.ReadReg(0x03)
	if err != nil {
		t.Fatalf("ReadReg() error: %v", err)
	}
	if v != 0x77 {
		t.Errorf("ReadReg() = %#02x, want 0x77 (read-only)", v)
	}
}

func TestWrongAddress(t *testing.T) {
	_, bus := newSlave(t)
	dev := New(bus, 0x23)

	if err := dev.WriteReg(0x00, 0x01); !errors.Is(err, pkg.ErrAddressNAK) {
		t.Errorf("WriteReg() error = %v, want %v", err, pkg.ErrAddressNAK)
	}
	if _, err := dev.ReadReg(0x00); !errors.Is(err, pkg.ErrAddressNAK) {
		t.Errorf("ReadReg() error = %v, want %v", err, pkg.ErrAddressNAK)
	}
}

func TestInvalidOffset(t *testing.T) {
	_, bus := newSlave(t)
	dev := New(bus, 0x40)

	if err := dev.WriteReg(0x09, 0x01); !errors.Is(err, pkg.ErrDataNAK) {
		t.Errorf("WriteReg() error = %v, want %v", err, pkg.ErrDataNAK)
	}
}

func TestTransferTooLong(t *testing.T) {
	_, bus := newSlave(t)
	dev := New(bus, 0x40)

	if err := dev.WriteRegs(0x00, make([]byte, MaxTransfer+1)); !errors.Is(err, pkg.ErrTransferTooLong) {
		t.Errorf("WriteRegs() error = %v, want %v", err, pkg.ErrTransferTooLong)
	}
}
