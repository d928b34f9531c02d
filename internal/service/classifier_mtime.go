package service

import "github.com/MKhiriev/remote-mirror/models"

// modTimeClassifier treats a file as stale when the remote copy is newer or
// has a different size.
//
// A remote that is newer but equal in size and publishes a content hash gets
// one more chance: when the local hash matches, only the timestamp is
// repaired.
type modTimeClassifier struct {
	local         localState
	repairModTime bool
}

func (c *modTimeClassifier) Classify(entry models.FileEntry, localPath string) (models.Staleness, error) {
	if entry.Symlink {
		return models.StalenessSkip, nil
	}

	info, err := c.local.stat(localPath)
	if err != nil {
		return 0, err
	}
	if info == nil {
		return models.StalenessAbsent, nil
	}

	if entry.Size != info.Size() {
		return models.StalenessStale, nil
	}

	if entry.ModTime.Unix() > info.ModTime().Unix() {
		if entry.ContentHash == "" {
			return models.StalenessStale, nil
		}

		localHash, err := c.local.contentHash(localPath)
		if err != nil {
			return 0, err
		}
		if localHash != entry.ContentHash {
			return models.StalenessStale, nil
		}
	}

	return currentOrTouch(c.repairModTime, entry.ModTime, info.ModTime()), nil
}
