// Package client contains the CLI's transport to the PlanWise server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the credential flow, admin account management and the team roster.
//  2. A concrete gRPC implementation (see GRPCClient) over the JSON codec.
//     Authenticated calls take the session token explicitly; the client
//     keeps no login state of its own.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI's SQLite database.
//
// # Error Handling
//
// Status codes are mapped back to the sentinels of package common
// (ErrorNotFound, ErrorConflict, ErrorUnauthorized, ...) so callers use
// errors.Is on both sides of the wire. An unreachable server yields
// ErrUnavailable.
package client
