//go:build !windows

package scanner

import (
	"fmt"
	"io/fs"
	"runtime"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// platformProtectedPrefixes returns pseudo and system filesystem roots
func platformProtectedPrefixes() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/dev/", "/System/Volumes/", "/Volumes/", "/private/var/vm/", "/private/tmp/", "/tmp/", "/cores/"}
	}
	return []string{"/sys/", "/proc/", "/dev/", "/run/", "/mnt/", "/boot/", "/tmp/"}
}

func hasPathPrefix(path, prefix string) bool {
	return strings.HasPrefix(path, prefix)
}

// describeSpecial names the type of a special file, with device numbers
// for device nodes
func describeSpecial(info fs.FileInfo) string {
	mode := info.Mode()

	var kind string
	switch {
	case mode&fs.ModeCharDevice != 0:
		kind = "character device"
	case mode&fs.ModeDevice != 0:
		kind = "block device"
	case mode&fs.ModeSocket != 0:
		return "socket"
	case mode&fs.ModeNamedPipe != 0:
		return "named pipe"
	case mode&fs.ModeIrregular != 0:
		return "irregular file"
	default:
		return "special file (" + mode.Type().String() + ")"
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return kind
	}
	rdev := uint64(stat.Rdev)
	return fmt.Sprintf("%s %d:%d", kind, unix.Major(rdev), unix.Minor(rdev))
}
