package sim

import (
	"github.com/usedbytes/usi-i2c-slave/pkg"
	"github.com/usedbytes/usi-i2c-slave/slave/hal"
)

// USI is an in-memory USI peripheral implementing [hal.USI].
//
// It is driven from two sides: the engine reads and writes it through
// the hal.USI methods, and a [Master] feeds it clock edges and line
// levels. All of it runs on one goroutine.
type USI struct {
	shift   uint8
	flags   uint8 // flag bits, high nibble
	counter uint8 // 4-bit edge counter
	dir     hal.SDADir
	scl     bool

	configured bool

	onStart    func()
	onOverflow func()
}

// New creates a simulated USI with an idle (high) SCL line and SDA
// released.
func New() *USI {
	return &USI{scl: true}
}

// Wire attaches the start and overflow handlers, standing in for the
// platform layer's interrupt trampolines.
func (u *USI) Wire(onStart, onOverflow func()) {
	u.onStart = onStart
	u.onOverflow = onOverflow
}

// Configure implements [hal.USI]. The simulation has no pins to set up;
// it only tracks that bring-up happened exactly once.
func (u *USI) Configure() error {
	if u.onStart == nil || u.onOverflow == nil {
		return pkg.ErrNotWired
	}
	if u.configured {
		return pkg.ErrAlreadyConfigured
	}
	u.configured = true
	pkg.LogDebug(pkg.ComponentSim, "usi configured")
	return nil
}

// ReadShift implements [hal.USI].
func (u *USI) ReadShift() uint8 {
	return u.shift
}

// WriteShift implements [hal.USI].
func (u *USI) WriteShift(v uint8) {
	u.shift = v
}

// ReadStatus implements [hal.USI]: flags in the high nibble, counter in
// the low nibble.
func (u *USI) ReadStatus() uint8 {
	return u.flags | u.counter
}

// WriteStatus implements [hal.USI]: a 1 written to a flag bit clears
// it, and the low nibble loads the counter.
func (u *USI) WriteStatus(v uint8) {
	u.flags &^= v & hal.FlagMask
	u.counter = v & hal.CounterMask
}

// SetSDADir implements [hal.USI].
func (u *USI) SetSDADir(d hal.SDADir) {
	u.dir = d
}

// SCL implements [hal.USI].
func (u *USI) SCL() bool {
	return u.scl
}

// SDADir returns the current direction latch, for assertions.
func (u *USI) SDADir() hal.SDADir {
	return u.dir
}

// Flags returns the raw flag bits, for assertions.
func (u *USI) Flags() uint8 {
	return u.flags
}

// Counter returns the raw counter value, for assertions.
func (u *USI) Counter() uint8 {
	return u.counter
}

// tickEdge advances the edge counter by one SCL edge, raising the
// overflow flag and invoking the handler on wrap.
func (u *USI) tickEdge() {
	u.counter = (u.counter + 1) & hal.CounterMask
	if u.counter == 0 {
		u.flags |= hal.FlagOverflow
		if u.onOverflow != nil {
			u.onOverflow()
		}
	}
}

// start raises the start-condition flag and invokes the handler, with
// SCL held low as the master completes the condition.
func (u *USI) start() {
	u.scl = false
	u.flags |= hal.FlagStart
	if u.onStart != nil {
		u.onStart()
	}
}

// stop raises the stop flag and returns the bus to idle.
func (u *USI) stop() {
	u.flags |= hal.FlagStop
	u.scl = true
}
