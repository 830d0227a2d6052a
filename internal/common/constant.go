// Package common contains shared constants and sentinel errors used across
// jobwizard components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultCurrency is used for payment intents when the server config leaves
// the currency unset.
const DefaultCurrency = "usd"
