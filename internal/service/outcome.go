package service

import "github.com/MKhiriev/remote-mirror/models"

type outcomeKind int

const (
	outcomeDownloaded outcomeKind = iota
	outcomeChecked
	outcomeFolder
	outcomeSkipped
	outcomeFailed
)

// outcome is the result of acting on one remote entry. The driver folds
// outcomes into the run stats; no entry action touches the stats directly.
type outcome struct {
	kind       outcomeKind
	remotePath string
	localPath  string
	cause      error
}

func failed(remotePath, localPath string, cause error) outcome {
	return outcome{kind: outcomeFailed, remotePath: remotePath, localPath: localPath, cause: cause}
}

func (o outcome) applyTo(stats *models.RunStats) {
	switch o.kind {
	case outcomeDownloaded:
		stats.FilesDownloaded++
	case outcomeChecked:
		stats.FilesChecked++
	case outcomeFailed:
		stats.AddFailure(o.remotePath, o.localPath, o.cause)
	}
}
