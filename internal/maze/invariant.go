package maze

import "fmt"

// invariant panics on a violated precondition when built with the
// mazedebug tag and does nothing otherwise.
func invariant(cond bool, format string, args ...any) {
	if cond || !debugAssertions {
		return
	}
	panic("maze: invariant violated: " + fmt.Sprintf(format, args...))
}
