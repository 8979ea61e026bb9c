// Package slave implements an I2C slave protocol engine on top of a
// bare USI shift-register peripheral.
//
// The USI gives firmware only raw shift and latch events: an 8-bit shift
// register, a 4-bit edge counter that interrupts on overflow, and a
// start-condition detector. This package synthesizes the rest of the I2C
// slave protocol (address matching, ACK/NAK framing, SDA direction
// switching and stop detection) and exposes a byte-addressable register
// file that a master reads and writes by (address, offset).
//
// # Architecture
//
//   - [Engine] holds the protocol state and the register file
//   - [Engine.OnStart] and [Engine.OnOverflow] are the two interrupt
//     entry points; the platform layer wires them to the chip's vectors
//   - [Engine.CheckStop] is the stop poller, called from the main loop
//   - [Engine.TransactionOngoing] is a non-blocking bus activity query
//
// # State Machine
//
// Five states with the following transitions:
//
//	         to: ADDR  REG    MREAD  MWRITE IDLE
//	 from ADDR:        a      b             h
//	 from REG:                       d      c,i
//	 from MREAD:              f             c,e
//	 from MWRITE:                    g      c
//	 from IDLE:  j
//
//	j: start condition           -- prime for the address byte
//	h: address mismatch          -- NAK
//	a: address match, write mode -- ACK, reset offset
//	b: address match, read mode  -- ACK
//	d: valid register offset     -- ACK, adopt offset
//	i: offset out of range       -- NAK
//	g: write data byte           -- ACK, merge under write mask
//	f: master ACKed read byte    -- load next register
//	e: master NAKed read byte    -- done
//	c: stop observed by the poller
//
// # The Two-Phase Overflow Handler
//
// Each byte on the wire raises the overflow interrupt twice: once after
// the 8 data bits, once after the single ACK/NAK bit. A persistent
// post-ACK flag distinguishes the phases. The pre-ACK phase dispatches
// on the state and stages the ACK slot: shift register 0x00 to ACK,
// 0x80 to NAK, direction out; or direction in to let the master drive
// it. The post-ACK phase only does work for master reads, where it
// samples the master's ACK/NAK and sources the next byte.
//
// # Interrupt Discipline
//
// Both handlers run to completion well inside one bit time: no
// allocation, no division, no unbounded loops (the start handler's SCL
// wait is bounded by the master's clock period). The stop poller's
// read-modify-write of the update counter runs inside an
// interrupts-disabled critical section.
//
// # Concurrency With the Application
//
// The register file is shared with the application. Multi-byte reads by
// the application are not atomic; gate them on [Engine.TransactionOngoing]
// returning false, or a brief critical section.
//
// # Example
//
//	regs := make([]byte, 4)
//	eng, err := slave.New(usi, 0x40, regs, []byte{0xFF, 0xFF, 0x0F, 0x00})
//	if err != nil {
//	    ...
//	}
//	// platform wires eng.OnStart / eng.OnOverflow to the USI vectors
//	if err := eng.Init(); err != nil {
//	    ...
//	}
//	for {
//	    if eng.CheckStop() != 0 {
//	        // act on changed registers
//	    }
//	}
//
// A bit-accurate simulated bus for host-side testing lives in
// [github.com/usedbytes/usi-i2c-slave/slave/hal/sim].
package slave
