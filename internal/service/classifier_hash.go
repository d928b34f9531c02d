package service

import "github.com/MKhiriev/remote-mirror/models"

// hashClassifier compares the remote content hash with the block hash of the
// local file.
type hashClassifier struct {
	local         localState
	repairModTime bool
}

func (c *hashClassifier) Classify(entry models.FileEntry, localPath string) (models.Staleness, error) {
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

	// Nothing to compare against.
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

	return currentOrTouch(c.repairModTime, entry.ModTime, info.ModTime()), nil
}
