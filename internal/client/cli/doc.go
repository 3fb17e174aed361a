// Package cli provides the interactive storerating command-line client.
//
// It wires configuration, the gRPC client and the login session into a REPL.
// Anonymous users can sign up or log in; once authenticated, the user's role
// selects one dashboard (admin, user or store owner) whose commands become
// available. The REPL is started via App.Run(ctx), which blocks until the
// user exits or ctx is cancelled.
package cli
