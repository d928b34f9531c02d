package adapter

import (
	"time"

	"github.com/MKhiriev/remote-mirror/models"
)

// Dropbox metadata tags.
const (
	dropboxTagFile   = "file"
	dropboxTagFolder = "folder"
)

type listFolderRequest struct {
	Path                            string `json:"path"`
	Recursive                       bool   `json:"recursive"`
	IncludeNonDownloadableFiles     bool   `json:"include_non_downloadable_files"`
	IncludeHasExplicitSharedMembers bool   `json:"include_has_explicit_shared_members"`
}

type listFolderContinueRequest struct {
	Cursor string `json:"cursor"`
}

type downloadArg struct {
	Path string `json:"path"`
}

type listFolderResponse struct {
	Entries []dropboxMetadata `json:"entries"`
	Cursor  string            `json:"cursor"`
	HasMore bool              `json:"has_more"`
}

type dropboxMetadata struct {
	Tag            string       `json:".tag"`
	Name           string       `json:"name"`
	PathDisplay    string       `json:"path_display"`
	PathLower      string       `json:"path_lower"`
	ClientModified time.Time    `json:"client_modified"`
	ServerModified time.Time    `json:"server_modified"`
	Size           int64        `json:"size"`
	ContentHash    string       `json:"content_hash"`
	SymlinkInfo    *symlinkInfo `json:"symlink_info,omitempty"`
}

type symlinkInfo struct {
	Target string `json:"target"`
}

type dropboxError struct {
	ErrorSummary string `json:"error_summary"`
}

// toEntry converts wire metadata into a model entry. Unrecognised tags
// become [models.UnknownEntry].
func (m dropboxMetadata) toEntry() models.RemoteEntry {
	switch m.Tag {
	case dropboxTagFile:
		return models.FileEntry{
			Name:        m.Name,
			PathDisplay: m.PathDisplay,
			ContentHash: m.ContentHash,
			Size:        m.Size,
			ModTime:     m.ClientModified,
			Symlink:     m.SymlinkInfo != nil,
		}
	case dropboxTagFolder:
		return models.FolderEntry{
			Name:        m.Name,
			PathDisplay: m.PathDisplay,
		}
	default:
		return models.UnknownEntry{
			Name: m.Name,
			Kind: m.Tag,
		}
	}
}

func (r listFolderResponse) toPage() models.ListingPage {
	entries := make([]models.RemoteEntry, 0, len(r.Entries))
	for _, m := range r.Entries {
		entries = append(entries, m.toEntry())
	}
	return models.ListingPage{
		Entries: entries,
		Cursor:  r.Cursor,
		HasMore: r.HasMore,
	}
}
