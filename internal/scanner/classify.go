package scanner

import (
	"os"

	"github.com/lumipallolabs/hashseek/internal/model"
)

// Classifier tags a non-directory entry found during traversal
type Classifier func(path string) model.FileEntry

// Classify stats path (following symlinks) and tags it. Anything that is
// neither a regular file nor a directory is SpecialOrDevice; a failed stat,
// including a dangling link, is Inaccessible.
func Classify(path string) model.FileEntry {
	info, err := os.Stat(path)
	if err != nil {
		return model.FileEntry{Path: path, Kind: model.Inaccessible, Detail: err.Error()}
	}

	switch mode := info.Mode(); {
	case mode.IsRegular():
		return model.FileEntry{Path: path, Kind: model.Regular}
	case mode.IsDir():
		return model.FileEntry{Path: path, Kind: model.Directory}
	default:
		return model.FileEntry{Path: path, Kind: model.SpecialOrDevice, Detail: describeSpecial(info)}
	}
}
