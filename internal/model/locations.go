package model

import (
	"os"
	"path/filepath"
)

// Location is a suggested search root
type Location struct {
	Label string // e.g. "Current directory"
	Path  string
}

// Locations returns candidate search roots: the working directory, the home
// directory and the mounted volumes of the platform, without duplicates.
func Locations() []Location {
	var locs []Location
	if cwd, err := os.Getwd(); err == nil {
		locs = append(locs, Location{Label: "Current directory", Path: cwd})
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		locs = append(locs, Location{Label: "Home", Path: home})
	}
	locs = append(locs, platformLocations()...)
	return dedupeLocations(locs)
}

func dedupeLocations(locs []Location) []Location {
	seen := make(map[string]bool, len(locs))
	out := locs[:0]
	for _, l := range locs {
		key := filepath.Clean(l.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}
