//go:build tinygo && avr

package attiny

import (
	"device/avr"
	"runtime/interrupt"

	"github.com/usedbytes/usi-i2c-slave/pkg"
	"github.com/usedbytes/usi-i2c-slave/slave/hal"
)

// USI pinout on port B (ATtiny25/45/85).
const (
	pinSDA = 0 // PB0
	pinSCL = 2 // PB2
)

// Handlers wired by Wire. The trampolines below are the only callers.
var (
	onStart    func()
	onOverflow func()
)

// USI implements [hal.USI] on the AVR USI peripheral.
type USI struct {
	configured bool
}

// New returns the chip's USI peripheral.
func New() *USI {
	return &USI{}
}

// Wire attaches the engine's interrupt entry points to the USI start
// and overflow vectors. Call before Configure.
func (u *USI) Wire(start, overflow func()) {
	onStart = start
	onOverflow = overflow
	interrupt.New(avr.IRQ_USI_START, handleStart)
	interrupt.New(avr.IRQ_USI_OVF, handleOverflow)
}

func handleStart(interrupt.Interrupt) {
	if onStart != nil {
		onStart()
	}
}

func handleOverflow(interrupt.Interrupt) {
	if onOverflow != nil {
		onOverflow()
	}
}

// Configure implements [hal.USI]: two-wire mode with SCL held low on
// counter overflow, start and overflow interrupts enabled, external
// positive-edge shift clock; SCL as output so the hold works, SDA as
// input, pull-ups on both.
func (u *USI) Configure() error {
	if onStart == nil || onOverflow == nil {
		return pkg.ErrNotWired
	}
	if u.configured {
		return pkg.ErrAlreadyConfigured
	}

	avr.USICR.Set(avr.USICR_USISIE | avr.USICR_USIOIE |
		avr.USICR_USIWM1 | avr.USICR_USIWM0 | avr.USICR_USICS1)
	avr.DDRB.SetBits(1 << pinSCL)
	avr.DDRB.ClearBits(1 << pinSDA)
	avr.PORTB.SetBits(1<<pinSDA | 1<<pinSCL)

	u.configured = true
	return nil
}

// ReadShift implements [hal.USI].
func (u *USI) ReadShift() uint8 {
	return avr.USIDR.Get()
}

// WriteShift implements [hal.USI].
func (u *USI) WriteShift(v uint8) {
	avr.USIDR.Set(v)
}

// ReadStatus implements [hal.USI].
func (u *USI) ReadStatus() uint8 {
	return avr.USISR.Get()
}

// WriteStatus implements [hal.USI]. Writing USISR is side-effecting:
// flag bits written as 1 clear, and the low nibble loads the counter.
func (u *USI) WriteStatus(v uint8) {
	avr.USISR.Set(v)
}

// SetSDADir implements [hal.USI] by flipping the SDA bit in the port
// direction register.
func (u *USI) SetSDADir(d hal.SDADir) {
	if d == hal.SDAOut {
		avr.DDRB.SetBits(1 << pinSDA)
	} else {
		avr.DDRB.ClearBits(1 << pinSDA)
	}
}

// SCL implements [hal.USI] by sampling the SCL line level.
func (u *USI) SCL() bool {
	return avr.PINB.Get()&(1<<pinSCL) != 0
}
