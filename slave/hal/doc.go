// Package hal defines the Hardware Abstraction Layer interface for the
// USI-based I2C slave engine.
//
// The HAL provides a platform-agnostic interface between the protocol
// engine and the Universal Serial Interface peripheral found on small
// microcontrollers. The USI is not an I2C controller: it offers only an
// 8-bit shift register, a 4-bit edge counter with an overflow interrupt,
// and a start-condition detector. Everything else (address matching,
// ACK/NAK framing, direction switching, stop detection) lives in the
// engine, above this interface.
//
// # Design Principles
//
// The HAL is designed to be:
//
//   - Minimal: Only expose the registers and pins the engine touches
//   - Generic: No chip-specific assumptions beyond the USI register model
//   - Interrupt-safe: Every method is callable from interrupt context
//
// # Interface Overview
//
// The [USI] interface defines the contract:
//
//   - Shift register access (ReadShift/WriteShift)
//   - Status register access with its write-to-clear flag semantics
//   - SDA direction steering and SCL line sampling
//   - Peripheral bring-up (Configure)
//
// # The Status Register
//
// Writing the status register is side-effecting: a 1 written to a flag
// bit clears that flag, and the low nibble loads the bit counter. The
// engine writes [StatusArmByte] (clear all flags, count 8 bits) at
// bring-up and on every start condition, [StatusArmAck] (clear the
// overflow flag, preserve the stop flag, count 1 bit) before each ACK
// slot, and StatusArmByte with the stop bit left out (0xD0: preserve the
// stop flag, count 8 bits) after each ACK slot.
//
// # Implementing a HAL
//
// To implement a HAL for a new chip:
//
//  1. Map ReadShift/WriteShift onto the USI data register
//  2. Map ReadStatus/WriteStatus onto the USI status register
//  3. Map SetSDADir onto the port direction register bit for SDA
//  4. Implement Configure for two-wire mode, interrupt enables and pull-ups
//  5. Wire the chip's start and overflow vectors to the engine's
//     OnStart and OnOverflow methods
//
// A bit-accurate simulated peripheral for host-side testing is available
// in [github.com/usedbytes/usi-i2c-slave/slave/hal/sim].
package hal
