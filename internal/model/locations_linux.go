//go:build linux

package model

import (
	"bufio"
	"os"
	"strings"
)

// pseudoFilesystems are never offered as search roots
var pseudoFilesystems = map[string]bool{
	"proc": true, "sysfs": true, "devtmpfs": true, "devpts": true, "tmpfs": true,
	"cgroup": true, "cgroup2": true, "securityfs": true, "debugfs": true, "tracefs": true,
	"pstore": true, "bpf": true, "mqueue": true, "hugetlbfs": true, "configfs": true,
	"fusectl": true, "autofs": true, "binfmt_misc": true, "overlay": true, "nsfs": true,
	"squashfs": true, "efivarfs": true, "rpc_pipefs": true,
}

func platformLocations() []Location {
	locs := []Location{{Label: "Filesystem root", Path: "/"}}

	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		return locs
	}
	defer f.Close()

	return append(locs, parseMounts(bufio.NewScanner(f))...)
}

// parseMounts reads /proc/self/mounts lines: device mountpoint fstype options ...
func parseMounts(sc *bufio.Scanner) []Location {
	var locs []Location
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		mountPoint, fsType := unescapeMount(fields[1]), fields[2]
		if pseudoFilesystems[fsType] || mountPoint == "/" {
			continue
		}
		locs = append(locs, Location{Label: mountPoint + " (" + fsType + ")", Path: mountPoint})
	}
	return locs
}

// unescapeMount decodes the octal escapes the kernel uses for spaces and tabs
func unescapeMount(s string) string {
	r := strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)
	return r.Replace(s)
}
