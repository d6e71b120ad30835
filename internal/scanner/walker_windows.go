//go:build windows

package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// platformProtectedPrefixes returns system folders of the system drive
func platformProtectedPrefixes() []string {
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		drive = "C:"
	}
	prefixes := []string{
		drive + `\$Recycle.Bin\`,
		drive + `\System Volume Information\`,
		drive + `\Windows\WinSxS\`,
	}
	if tmp := os.TempDir(); tmp != "" {
		prefixes = append(prefixes, filepath.Clean(tmp)+`\`)
	}
	return prefixes
}

// hasPathPrefix compares case-insensitively, as NTFS paths do
func hasPathPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && strings.EqualFold(path[:len(prefix)], prefix)
}

func describeSpecial(info fs.FileInfo) string {
	return "special file (" + info.Mode().Type().String() + ")"
}
