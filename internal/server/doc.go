// Package server implements the MCP (Model Context Protocol) surface of the
// template matcher.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// It owns the process-wide image cache and the optional named-template
// registry; the actual matching is delegated to internal/match and the
// image plumbing to internal/imaging.
//
// # Protocol
//
// Supported methods:
//
//   - initialize / notifications/initialized: MCP handshake
//   - tools/list: advertise the tool catalog
//   - tools/call: execute a tool
//   - ping: liveness check
//
// Tool results are wrapped in MCP's content format as pretty-printed JSON
// text. Tool failures (bad arguments, missing files, template larger than
// parent) come back as JSON-RPC errors with code -32000; a match that finds
// nothing is a successful result with empty arrays, not an error.
//
// # Logging
//
// All logging goes to stderr; stdout carries protocol traffic only.
package server
