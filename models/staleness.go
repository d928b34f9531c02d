package models

// Staleness is the verdict of comparing a remote file with its local copy.
type Staleness int

const (
	// StalenessAbsent means the local file does not exist.
	StalenessAbsent Staleness = iota

	// StalenessStale means the local file exists but must be replaced.
	StalenessStale

	// StalenessCurrent means the local file matches the remote one.
	StalenessCurrent

	// StalenessCurrentTouch means the content matches but the local
	// modification time must be corrected to the remote value.
	StalenessCurrentTouch

	// StalenessSkip means the entry is excluded from sync (symlinks).
	StalenessSkip
)

// NeedsDownload reports whether the verdict requires fetching the file.
func (s Staleness) NeedsDownload() bool {
	return s == StalenessAbsent || s == StalenessStale
}

func (s Staleness) String() string {
	switch s {
	case StalenessAbsent:
		return "absent"
	case StalenessStale:
		return "stale"
	case StalenessCurrent:
		return "current"
	case StalenessCurrentTouch:
		return "current-touch"
	case StalenessSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Policy selects how staleness is decided for a whole run.
type Policy string

const (
	// PolicyContentHash compares the remote content hash with the
	// block hash of the local file.
	PolicyContentHash Policy = "hash"

	// PolicyModTime compares modification time and size.
	PolicyModTime Policy = "mtime"
)

// Traversal selects the order in which pending folders are visited.
type Traversal string

const (
	// TraversalDepthFirst pops the most recently discovered folder first.
	TraversalDepthFirst Traversal = "depth"

	// TraversalBreadthFirst pops the oldest discovered folder first.
	TraversalBreadthFirst Traversal = "breadth"
)
