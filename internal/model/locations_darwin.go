//go:build darwin

package model

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

func platformLocations() []Location {
	locs := []Location{{Label: "Macintosh HD", Path: "/"}}

	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return locs
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		volumePath := filepath.Join("/Volumes", entry.Name())

		var stat unix.Statfs_t
		if err := unix.Statfs(volumePath, &stat); err != nil {
			continue
		}
		if isFilteredFilesystem(unix.ByteSliceToString(stat.Fstypename[:])) {
			continue
		}
		locs = append(locs, Location{Label: entry.Name(), Path: volumePath})
	}
	return locs
}

// isFilteredFilesystem returns true for network and pseudo filesystems
func isFilteredFilesystem(fsType string) bool {
	switch fsType {
	case "smbfs", "nfs", "afpfs", "webdav", "cifs":
		return true
	case "devfs", "autofs", "mtmfs", "nullfs":
		return true
	}
	return false
}
