// Package sim provides a bit-accurate simulated USI peripheral and an
// in-process I2C master for host-side testing of the slave engine.
//
// The [USI] type implements [hal.USI] in memory: the shift register, the
// 4-bit edge counter, the write-to-clear status flags and the SDA
// direction latch all behave as the hardware does. The [Master] type
// bit-bangs transactions against it, clocking one SCL cycle at a time,
// honoring the SDA direction latch to decide who drives the line, and
// invoking the wired start/overflow handlers exactly where the hardware
// would raise its interrupts.
//
// # Wiring
//
// The simulated peripheral stands in for the platform layer's interrupt
// trampolines:
//
//	usi := sim.New()
//	eng, _ := slave.New(usi, 0x40, regs, masks)
//	usi.Wire(eng.OnStart, eng.OnOverflow)
//	eng.Init()
//
//	m := sim.NewMaster(usi)
//	err := m.Tx(0x40, []byte{0x00, 0xAB}, nil)
//
// # Master Interface
//
// [Master] implements the I2C interface from tinygo.org/x/drivers, so
// anything written against that interface can talk to the simulated
// slave. Lower-level Start/Stop/WriteByte/ReadByte methods expose the
// individual framing events for protocol-edge tests.
//
// # Fidelity Notes
//
// The counter counts both SCL edges, two per bit, so the engine's armed
// values of 0 (16 edges) and 14 (2 edges) overflow after a full byte and
// after the ACK slot respectively. Overflow lands on the falling edge,
// so handlers observe SCL low, and the engine's start-handler spin on
// SCL terminates immediately. Everything runs synchronously on the
// calling goroutine; there is no concurrency in the simulation.
package sim
