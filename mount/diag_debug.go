//go:build debug

package mount

const diagnostics = true
