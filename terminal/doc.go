// Package terminal provides raw terminal session management and the ANSI
// escape emission used by the renderer. It owns the process-wide saved
// terminal mode: Session.Begin acquires it, Session.End releases it, and
// EmergencyReset recovers it from crash paths.
package terminal
