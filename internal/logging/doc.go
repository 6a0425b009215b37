// Package logging provides concrete implementations of the vfsh.Logger
// interface: a console logger writing to stderr and a no-op logger for
// tests and quiet runs.
package logging
