package model

// Kind classifies a filesystem entry met during traversal
type Kind int

const (
	Regular Kind = iota
	Directory
	SpecialOrDevice // exists, but neither a regular file nor a directory
	Inaccessible    // metadata could not be read
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case SpecialOrDevice:
		return "device"
	case Inaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// FileEntry is a path visited during traversal with its classification
type FileEntry struct {
	Path   string
	Kind   Kind
	Detail string // e.g. "character device 1:3" for special files
}

// SkipKind tags why an entry was left out of the comparison
type SkipKind int

const (
	SkipDevice SkipKind = iota
	SkipInaccessible
	SkipPermission
	SkipIO
)

// String returns the tag written to the skip log
func (k SkipKind) String() string {
	switch k {
	case SkipDevice:
		return "device"
	case SkipInaccessible:
		return "inaccessible"
	case SkipPermission:
		return "permission"
	case SkipIO:
		return "io"
	default:
		return "unknown"
	}
}

// SkipRecord describes one skipped entry as written to the skip log
type SkipRecord struct {
	Path   string
	Kind   SkipKind
	Reason string
}

// Message returns the skip log message for the record's kind
func (r SkipRecord) Message() string {
	switch r.Kind {
	case SkipDevice:
		return "Skipping device file"
	case SkipInaccessible:
		return "Skipping inaccessible entry"
	case SkipPermission:
		return "Skipping unreadable file"
	default:
		return "Skipping file after read error"
	}
}
