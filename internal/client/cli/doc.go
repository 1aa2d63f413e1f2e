// Package cli provides the interactive GophAdmin console.
//
// It wires configuration, the persistent token store, the HTTP API client
// and the session and roster controllers behind a line-oriented REPL.
// Typical flow: log in (or sign up first), inspect the user roster, narrow
// it with filters, then change a user's status or delete the user.
//
// Commands:
//   - login / signup / logout / whoami
//   - users (l), refresh
//   - filter key=value..., reset, stats
//   - status <id> <active|suspended|banned>
//   - delete <id> (asks for confirmation)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
