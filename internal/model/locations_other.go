//go:build !linux && !darwin && !windows

package model

func platformLocations() []Location {
	return []Location{{Label: "Filesystem root", Path: "/"}}
}
