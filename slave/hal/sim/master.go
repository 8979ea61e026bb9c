package sim

import (
	"tinygo.org/x/drivers"

	"github.com/usedbytes/usi-i2c-slave/pkg"
	"github.com/usedbytes/usi-i2c-slave/slave/hal"
)

// Master bit-bangs I2C transactions against a simulated [USI].
//
// It implements the drivers.I2C interface from tinygo.org/x/drivers via
// [Master.Tx], and also exposes the individual framing events
// (Start/Stop/WriteByte/ReadByte) for protocol-edge tests.
type Master struct {
	usi *USI
}

var _ drivers.I2C = (*Master)(nil)

// NewMaster creates a master attached to the simulated peripheral.
func NewMaster(u *USI) *Master {
	return &Master{usi: u}
}

// Start issues a start (or repeated start) condition.
func (m *Master) Start() {
	m.usi.start()
}

// Stop issues a stop condition and releases the bus.
func (m *Master) Stop() {
	m.usi.stop()
}

// clockBit runs one full SCL cycle. level is what the master puts on
// SDA, or true (released, pulled up) when listening. The slave's shift
// register wins the line whenever its direction latch is out. Returns
// the sampled line level.
func (m *Master) clockBit(level bool) bool {
	line := level
	if m.usi.dir == hal.SDAOut {
		line = m.usi.shift&0x80 != 0
	}
	m.usi.scl = true
	m.usi.shift = m.usi.shift<<1 | b2u(line)
	m.usi.tickEdge()
	m.usi.scl = false
	m.usi.tickEdge()
	return line
}

// WriteByte clocks one byte onto the bus, MSB first, then samples the
// ACK slot with SDA released.
func (m *Master) WriteByte(b uint8) pkg.Response {
	for i := 7; i >= 0; i-- {
		m.clockBit(b&(1<<uint(i)) != 0)
	}
	if m.clockBit(true) {
		return pkg.ResponseNAK
	}
	return pkg.ResponseACK
}

// ReadByte clocks one byte off the bus with SDA released, then drives
// the ACK slot: low to ACK, high to NAK.
func (m *Master) ReadByte(ack bool) uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		v = v<<1 | b2u(m.clockBit(true))
	}
	m.clockBit(!ack)
	return v
}

// Tx performs a standard I2C transaction against the slave: a write
// phase for w (if any), a repeated start, then a read phase filling r
// (if any), NAKing the final byte. It satisfies the drivers.I2C
// interface so code written against tinygo.org/x/drivers can talk to
// the simulated slave.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 && len(r) == 0 {
		return nil
	}

	if len(w) > 0 {
		m.Start()
		if !m.WriteByte(uint8(addr) << 1).Ack() {
			m.Stop()
			return pkg.ErrAddressNAK
		}
		for _, b := range w {
			if !m.WriteByte(b).Ack() {
				m.Stop()
				return pkg.ErrDataNAK
			}
		}
		if len(r) == 0 {
			m.Stop()
			pkg.LogDebug(pkg.ComponentMaster, "write complete",
				"addr", addr, "bytes", len(w))
			return nil
		}
	}

	m.Start()
	if !m.WriteByte(uint8(addr)<<1 | 1).Ack() {
		m.Stop()
		return pkg.ErrAddressNAK
	}
	for i := range r {
		r[i] = m.ReadByte(i != len(r)-1)
	}
	m.Stop()
	pkg.LogDebug(pkg.ComponentMaster, "transaction complete",
		"addr", addr, "wrote", len(w), "read", len(r))
	return nil
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
