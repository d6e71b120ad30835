//go:build linux

package model

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMounts(t *testing.T) {
	mounts := `/dev/sda1 / ext4 rw,relatime 0 0
proc /proc proc rw,nosuid 0 0
sysfs /sys sysfs rw 0 0
/dev/sdb1 /mnt/My\040Disk ext4 rw 0 0
tmpfs /run tmpfs rw 0 0
`
	locs := parseMounts(bufio.NewScanner(strings.NewReader(mounts)))
	require.Len(t, locs, 1)
	assert.Equal(t, "/mnt/My Disk", locs[0].Path)
	assert.Equal(t, "/mnt/My Disk (ext4)", locs[0].Label)
}
