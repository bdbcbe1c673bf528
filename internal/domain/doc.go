// Package domain defines the contracts shared between rsakit's stores,
// services and CLI. It contains interfaces and small request/result types
// only; the key model itself lives in internal/rsa.
package domain
