// Package harness provides utilities for integration testing the speechtimer CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SPEECHTIMER_HOME: Isolated per test (temp directory)
//   - SPEECHTIMER_DEBUG: Disabled to reduce noise
package harness
