package model

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationsStartWithWorkingDirectory(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	locs := Locations()
	require.NotEmpty(t, locs)
	assert.Equal(t, cwd, locs[0].Path)

	seen := map[string]bool{}
	for _, l := range locs {
		assert.False(t, seen[l.Path], "duplicate location %s", l.Path)
		seen[l.Path] = true
	}
}

func TestDedupeLocations(t *testing.T) {
	locs := dedupeLocations([]Location{
		{Label: "a", Path: "/x"},
		{Label: "b", Path: "/x/"},
		{Label: "c", Path: "/y"},
	})
	require.Len(t, locs, 2)
	assert.Equal(t, "a", locs[0].Label)
	assert.Equal(t, "/y", locs[1].Path)
}
