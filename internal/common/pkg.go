// Package common holds small generic helpers shared by the internal packages.
package common

// UnknownStr is the fallback name of an unrecognized enum value.
const UnknownStr = "unknown"
