// Package api declares the agenda.v1.Agenda gRPC service shared by the
// server and the terminal client: request/response messages, the service
// descriptor, a typed client and the JSON codec both sides speak.
//
// Messages are plain Go structs. User records carry arbitrary columns and
// travel as google.protobuf.Struct values encoded with protojson.
package api
