// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteEntry is a single child of a remote folder as reported by a listing.
//
// The set of implementations is closed: only [FileEntry], [FolderEntry] and
// [UnknownEntry] satisfy the interface. Adapters translate metadata kinds they
// do not recognise into [UnknownEntry] so the sync driver can reject them
// explicitly instead of guessing.
type RemoteEntry interface {
	// EntryName returns the name of the entry inside its parent folder.
	EntryName() string

	isRemoteEntry()
}

// FileEntry describes a remote file.
type FileEntry struct {
	// Name is the file name inside its parent folder.
	Name string

	// PathDisplay is the full remote path as reported by the backend.
	// It is informational only; the driver builds paths from folder + Name.
	PathDisplay string

	// ContentHash is the backend-provided content digest (hex).
	// Empty when the backend exposes no comparable digest.
	ContentHash string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last-modified timestamp reported by the backend.
	ModTime time.Time

	// Symlink is true when the remote entry is a symbolic link.
	// Symlinks are never downloaded.
	Symlink bool
}

// FolderEntry describes a remote folder.
type FolderEntry struct {
	// Name is the folder name inside its parent folder.
	Name string

	// PathDisplay is the full remote path as reported by the backend.
	PathDisplay string
}

// UnknownEntry carries a metadata kind the adapter did not expect
// (for example a "deleted" tombstone). It is always recorded as a failure.
type UnknownEntry struct {
	// Name is the entry name, if the backend reported one.
	Name string

	// Kind is the raw kind tag received from the backend.
	Kind string
}

// EntryName implements [RemoteEntry].
func (f FileEntry) EntryName() string { return f.Name }

// EntryName implements [RemoteEntry].
func (f FolderEntry) EntryName() string { return f.Name }

// EntryName implements [RemoteEntry].
func (u UnknownEntry) EntryName() string { return u.Name }

func (FileEntry) isRemoteEntry()    {}
func (FolderEntry) isRemoteEntry()  {}
func (UnknownEntry) isRemoteEntry() {}

// ListingPage is one page of a paginated folder listing.
type ListingPage struct {
	// Entries are the children returned on this page, in backend order.
	Entries []RemoteEntry

	// Cursor is the opaque continuation token for the next page.
	Cursor string

	// HasMore reports whether another page must be requested with Cursor.
	HasMore bool
}
