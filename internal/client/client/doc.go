// Package client talks to the agenda server.
//
// The Client interface is the transport-agnostic contract used by the
// repositories; GRPCClient implements it over the JSON-coded gRPC service,
// remembers the access token returned by Login and attaches it to every
// later call. gRPC status codes are mapped to the sentinel errors in
// errors.go so callers can match them with errors.Is.
package client
