// Package testutils provides in-memory store fakes and logging helpers
// shared by tests across packages. Production code must not import it.
package testutils
