// Package arm64 registers the NEON entry.
package arm64
