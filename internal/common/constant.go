// Package common contains shared constants and sentinel errors used across
// storerating components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ServiceName is reported by the health endpoint and used as metrics namespace.
const ServiceName = "storerating"
