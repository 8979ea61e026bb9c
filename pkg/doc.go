// Package pkg provides shared utilities for the usi-i2c-slave stack.
//
// This package contains common functionality used across the slave engine,
// the simulated bus, and the master-side register helpers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for I2C bus errors
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with bus-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentMaster, "transaction complete", "bytes", 3)
//
// Interrupt-context code never logs: the slave engine's handlers run
// inside bit-time deadlines, so logging is confined to the simulator,
// the master, and application code.
//
// # Errors
//
// Common bus errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrAddressNAK) {
//	    // No slave answered the address byte
//	}
package pkg
