package models

// SyncRequest carries the already-resolved parameters of one sync run.
type SyncRequest struct {
	// Folder is the remote folder to start from ("/" for the root).
	Folder string

	// Policy selects the staleness policy for the whole run.
	Policy Policy

	// Traversal selects depth-first or breadth-first visiting order.
	Traversal Traversal

	// PreserveModTime sets the local mtime to the remote one after a
	// download and repairs drifted timestamps on current files.
	PreserveModTime bool

	// DryRun logs decisions without writing to the local mirror.
	DryRun bool
}
