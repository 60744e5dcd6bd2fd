// Package server implements the MCP (Model Context Protocol) server for the
// junction detector.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_count_intersections: Count stroke intersections
//   - image_annotate_intersections: Count and return a marked-up PNG
//
// The junction tools accept optional overrides for every detector heuristic
// (stride, closeness, row_skip, min_iterations, max_iterations). Omitted
// values keep the calibrated defaults.
//
// # Error Codes
//
//   - -32601: Method not found
//   - -32602: Invalid params
//   - -32000: Tool execution failed (bad path, undecodable image, invalid overrides)
//
// # Image Caching
//
// Decoded images and their grayscale versions are cached by path for the
// lifetime of the server, so repeated calls on one drawing decode it once.
package server
