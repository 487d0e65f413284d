//go:build !mazedebug

package maze

const debugAssertions = false
