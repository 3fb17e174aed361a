// Package client talks to the storerating server.
//
// GRPCClient implements Client over the JSON-coded gRPC API. It keeps the
// access token returned by Login or Signup and attaches it to every later
// call. Status codes are mapped back to the sentinels in internal/common,
// so callers match errors with errors.Is exactly as on the server; rejected
// input comes back as validation.Errors with one entry per offending field.
package client
