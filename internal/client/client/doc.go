// Package client contains the transport layer of the jobwizard CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     draft service: reads, field saves, step moves, appraisal, payment
//     intents, verification, photo uploads and the test hooks.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, applies a
//     per-call timeout and maps gRPC status codes to sentinel errors.
//  3. The local sqlite cache (see OpenCache) holding the last draft seen,
//     migrated with goose on open.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors matched with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrRejected.
// Version conflicts and invalid steps are not errors; they come back as
// the Outcome of a successful call.
package client
