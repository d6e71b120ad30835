//go:build windows

package model

import (
	"fmt"
	"os"
)

func platformLocations() []Location {
	var locs []Location
	for letter := 'A'; letter <= 'Z'; letter++ {
		path := fmt.Sprintf("%c:\\", letter)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		locs = append(locs, Location{Label: "Drive " + string(letter), Path: path})
	}
	return locs
}
