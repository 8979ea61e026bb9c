//go:build tinygo && avr

// Package attiny implements the USI HAL on AVR ATtiny-class chips
// under TinyGo.
//
// It maps the [hal.USI] contract directly onto the USIDR, USISR and
// USICR registers and the port B pins carrying SDA (PB0) and SCL (PB2),
// the standard USI pinout on the ATtiny25/45/85. The package also
// provides the interrupt trampolines: Wire attaches the engine's
// OnStart and OnOverflow methods to the USI start and overflow vectors,
// whose names vary between AVR parts but resolve to the same two
// interrupt numbers here.
//
// The repository ships no firmware application; an application package
// that uses this HAL is built and flashed with:
//
//	tinygo flash -target=attiny85 ./path/to/app
//
// The whole package is build-tagged tinygo && avr; it has no host-side
// compilation surface. Use the simulated peripheral in
// [github.com/usedbytes/usi-i2c-slave/slave/hal/sim] for host testing.
package attiny
