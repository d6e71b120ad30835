package scanner

import (
	"os"
	"strings"
)

// DefaultProtectedPrefixes returns the pseudo- and system-filesystem prefixes
// skipped when a request sets SkipRestricted. Each prefix ends in a separator.
func DefaultProtectedPrefixes() []string {
	return platformProtectedPrefixes()
}

// isProtected reports whether dir is one of prefixes or lies below one
func isProtected(dir string, prefixes []string) bool {
	withSep := dir
	if !strings.HasSuffix(withSep, string(os.PathSeparator)) {
		withSep += string(os.PathSeparator)
	}
	for _, p := range prefixes {
		if hasPathPrefix(withSep, p) {
			return true
		}
	}
	return false
}
