// Package api defines the wire messages of the settleup RPC services.
//
// Messages travel over the Connect protocol encoded as JSON (see Codec).
// Field names follow the snake_case JSON convention used by protojson so
// browser clients can talk to the server with plain fetch calls.
package api
