package slave

import (
	"github.com/usedbytes/usi-i2c-slave/pkg"
	"github.com/usedbytes/usi-i2c-slave/slave/hal"
)

// State is a protocol engine state.
type State uint8

// Protocol states.
const (
	StateAddressMatch State = iota // Waiting for the address byte
	StateRegAddress                // Receiving the register offset
	StateMasterRead                // Sourcing bytes to the master
	StateMasterWrite               // Receiving bytes from the master
	StateIdle                      // Bus idle or address not matched
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAddressMatch:
		return "address-match"
	case StateRegAddress:
		return "reg-address"
	case StateMasterRead:
		return "master-read"
	case StateMasterWrite:
		return "master-write"
	case StateIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// ACK slot encodings. The 9th clock bit is whatever the shift register
// MSB holds while SDA is driven out.
const (
	shiftACK = 0x00
	shiftNAK = 0x80
)

// MaxRegisters is the largest register file the byte-granular offset
// can address.
const MaxRegisters = 256

// Engine is the I2C slave protocol engine bound to one USI peripheral.
//
// The exported Registers field is the live register file: the engine
// commits master writes into it and sources master reads from it. The
// application owns its contents between transactions.
type Engine struct {
	// Registers is the byte-addressable register file.
	Registers []byte

	usi  hal.USI
	addr uint8

	// Write-mask configuration: exactly one of masks/globalMask is in
	// effect, chosen at construction.
	masks      []byte
	globalMask uint8
	global     bool

	// strict rejects the zero (general-call) address instead of
	// treating it as our own.
	strict bool

	// Shared with the interrupt handlers. state and update are also
	// mutated by CheckStop inside a critical section; offset and
	// postAck are interrupt-only.
	state   State
	offset  uint8
	update  uint8
	postAck bool
}

// New creates an engine with a per-register write mask. masks must have
// one byte per register; a 0 bit is read-only and survives master
// writes, a mask of 0x00 makes the whole register read-only.
func New(usi hal.USI, addr uint8, regs, masks []byte) (*Engine, error) {
	if len(masks) != len(regs) {
		return nil, pkg.ErrMaskLength
	}
	return newEngine(usi, addr, regs, masks, 0, false)
}

// NewWithGlobalMask creates an engine with a single write mask applied
// to every register, avoiding the per-register mask storage.
func NewWithGlobalMask(usi hal.USI, addr uint8, regs []byte, mask uint8) (*Engine, error) {
	return newEngine(usi, addr, regs, nil, mask, true)
}

func newEngine(usi hal.USI, addr uint8, regs, masks []byte, globalMask uint8, global bool) (*Engine, error) {
	if addr > 0x7F {
		return nil, pkg.ErrInvalidAddress
	}
	if len(regs) == 0 {
		return nil, pkg.ErrNoRegisters
	}
	if len(regs) > MaxRegisters {
		return nil, pkg.ErrTooManyRegisters
	}
	return &Engine{
		Registers:  regs,
		usi:        usi,
		addr:       addr,
		masks:      masks,
		globalMask: globalMask,
		global:     global,
		state:      StateIdle,
	}, nil
}

// WithStrictAddressing makes the engine NAK the zero (general-call)
// address. By default an all-zero address byte is treated like our own
// address and ACKed, preserving the historic behavior of the engine.
func (e *Engine) WithStrictAddressing() *Engine {
	e.strict = true
	return e
}

// Init configures the USI peripheral and arms it for the first address
// byte. Call once before enabling interrupts; the platform layer must
// have wired OnStart and OnOverflow to the chip's vectors.
func (e *Engine) Init() error {
	e.state = StateIdle
	e.offset = 0
	e.update = 0
	e.postAck = false
	if err := e.usi.Configure(); err != nil {
		return err
	}
	e.usi.WriteStatus(hal.StatusArmByte)
	return nil
}

// OnStart services the start-condition interrupt. It resets the protocol
// to expect an address byte, waits out the remainder of the start
// condition (SCL release, bounded by the master's clock period), then
// clears the start flag and arms the counter for 8 bits.
func (e *Engine) OnStart() {
	e.state = StateAddressMatch
	for e.usi.SCL() {
	}
	e.usi.WriteStatus(hal.StatusArmByte)
}

// OnOverflow services the bit-counter overflow interrupt. It fires twice
// per byte: after the 8 data bits (pre-ACK phase) and after the single
// ACK/NAK bit (post-ACK phase).
func (e *Engine) OnOverflow() {
	status := uint8(hal.StatusArmByte &^ hal.FlagStop)
	dir := hal.SDAOut

	if !e.postAck {
		// Stage the ACK slot the slave is about to drive.
		switch e.state {
		case StateAddressMatch:
			rx := e.usi.ReadShift()
			if a := rx >> 1; a != e.addr && (a != 0 || e.strict) {
				// Transition h
				e.state = StateIdle
				e.usi.WriteShift(shiftNAK)
			} else {
				if rx&1 != 0 {
					// Transition b
					e.state = StateMasterRead
				} else {
					// Transition a
					e.offset = 0
					e.state = StateRegAddress
				}
				e.usi.WriteShift(shiftACK)
			}
		case StateRegAddress:
			rx := e.usi.ReadShift()
			if int(rx) >= len(e.Registers) {
				// Transition i
				e.state = StateIdle
				e.usi.WriteShift(shiftNAK)
			} else {
				// Transition d
				e.offset = rx
				e.state = StateMasterWrite
				e.usi.WriteShift(shiftACK)
			}
		case StateMasterRead:
			// The master drives this ACK slot. A sampled 0 reads as
			// ACK; the transition happens post-ACK.
			e.usi.WriteShift(0)
			dir = hal.SDAIn
		case StateMasterWrite:
			// Transition g
			mask := e.globalMask
			if !e.global {
				mask = e.masks[e.offset]
			}
			if mask != 0 {
				e.Registers[e.offset] = (e.Registers[e.offset] &^ mask) | (e.usi.ReadShift() & mask)
			}
			if e.update != 0xFF {
				e.update++
			}
			e.offset++
			e.usi.WriteShift(shiftACK)
		default:
			e.usi.WriteShift(shiftNAK)
		}
		// Counter overflows again after the ACK slot.
		status = hal.StatusArmAck
		e.postAck = true
	} else {
		// Release the bus for the next byte.
		dir = hal.SDAIn
		if e.state == StateMasterRead {
			if e.usi.ReadShift() != 0 {
				// Transition e
				e.offset = 0
				e.state = StateIdle
			} else {
				// Transition f
				dir = hal.SDAOut
				e.usi.WriteShift(e.Registers[e.offset])
				e.offset++
			}
		}
		e.postAck = false
	}

	if int(e.offset) >= len(e.Registers) {
		e.offset = 0
	}

	e.usi.SetSDADir(dir)
	e.usi.WriteStatus(status)
}

// CheckStop detects a stop condition ending a write transaction. The
// hardware raises no interrupt on stop, so the application must call
// this from its main loop. It returns non-zero when at least one
// register write has committed and the bus has released, and zero
// otherwise. The value is the number of data bytes committed since the
// last successful poll, saturating at 255.
func (e *Engine) CheckStop() uint8 {
	if e.state != StateMasterWrite || e.update == 0 {
		return 0
	}

	var n uint8
	mask := disableInterrupts()
	if e.usi.ReadStatus()&hal.FlagStop != 0 {
		e.state = StateIdle
		n = e.update
		e.update = 0
	}
	restoreInterrupts(mask)
	return n
}

// TransactionOngoing reports whether the slave address has been matched
// without a stop being observed yet. It is a single word-sized read and
// needs no critical section; use it to defer long-running work that
// would starve the interrupt handlers.
func (e *Engine) TransactionOngoing() bool {
	s := e.state
	return s != StateIdle && s != StateAddressMatch
}

// State returns the current protocol state.
func (e *Engine) State() State {
	return e.state
}
