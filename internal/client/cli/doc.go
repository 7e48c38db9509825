// Package cli provides the interactive PlanWise command-line client.
//
// It wires configuration, the local session cache and the gRPC client into
// a REPL. Team members log in through the bootstrap flow (first-time
// password creation, login, recovery); admins log in with email and
// password and manage their account and the team roster.
//
// A successful login is cached in the local SQLite database and resumed on
// the next start until the token expires. The REPL is started via App.Run,
// which blocks until the user exits or the context is cancelled.
package cli
