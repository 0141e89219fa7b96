//go:build !debug

package mount

const diagnostics = false
