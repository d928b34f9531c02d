// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/remote-mirror/internal/adapter"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/mock"
	"github.com/MKhiriev/remote-mirror/internal/store"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var remoteTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// stubConfirmer: простой Confirmer с фиксированным ответом.
type stubConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (s *stubConfirmer) Confirm(_ context.Context, _ string) (bool, error) {
	s.asked++
	return s.answer, s.err
}

func hashOf(t *testing.T, content string) string {
	t.Helper()
	digest, err := utils.ContentHash(strings.NewReader(content))
	require.NoError(t, err)
	return digest
}

func remoteFile(t *testing.T, name, content string) models.FileEntry {
	t.Helper()
	return models.FileEntry{
		Name:        name,
		ContentHash: hashOf(t, content),
		Size:        int64(len(content)),
		ModTime:     remoteTime,
	}
}

// newTestSyncSvc: хелпер для создания syncService с моком адаптера и
// зеркалом во временной директории (пока не созданной).
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller, confirmer Confirmer) (*syncService, *mock.MockRemoteAdapter, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "mirror")
	mirror, err := store.NewMirror(root)
	require.NoError(t, err)

	mockAdapter := mock.NewMockRemoteAdapter(ctrl)
	svc := NewSyncService(mockAdapter, mirror, confirmer, logger.Nop())
	return svc.(*syncService), mockAdapter, root
}

func expectTree(m *mock.MockRemoteAdapter, tree map[string][]models.RemoteEntry) {
	for folder, entries := range tree {
		m.EXPECT().
			ListFolder(gomock.Any(), folder).
			Return(models.ListingPage{Entries: entries}, nil).
			AnyTimes()
	}
}

func expectDownload(m *mock.MockRemoteAdapter, path, content string) *gomock.Call {
	return m.EXPECT().
		Download(gomock.Any(), path).
		DoAndReturn(func(context.Context, string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		})
}

func hashRequest() models.SyncRequest {
	return models.SyncRequest{
		Folder:          "/",
		Policy:          models.PolicyContentHash,
		Traversal:       models.TraversalDepthFirst,
		PreserveModTime: true,
	}
}

func writeLocal(t *testing.T, root, rel, content string, mtime time.Time) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	require.NoError(t, os.Chtimes(p, mtime, mtime))
}

func readLocal(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// ── downloads ────────────────────────────────────────────────────────────────

func TestSyncService_Run_DownloadsAbsentFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/":     {remoteFile(t, "a.txt", "alpha"), models.FolderEntry{Name: "Docs"}},
		"/Docs": {remoteFile(t, "b.txt", "bravo")},
	})
	// ровно одна загрузка на отсутствующий файл
	expectDownload(mockAdapter, "/a.txt", "alpha").Times(1)
	expectDownload(mockAdapter, "/Docs/b.txt", "bravo").Times(1)

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FoldersChecked)
	assert.Equal(t, 2, stats.FilesDownloaded)
	assert.Equal(t, 0, stats.FilesChecked)
	assert.Empty(t, stats.Failures)
	assert.NotEmpty(t, stats.RunID)
	assert.False(t, stats.FinishedAt.IsZero())

	assert.Equal(t, "alpha", readLocal(t, root, "a.txt"))
	assert.Equal(t, "bravo", readLocal(t, root, "Docs/b.txt"))

	info, err := os.Stat(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(remoteTime), "remote mtime is preserved")
}

func TestSyncService_Run_Idempotent(t *testing.T) {
	for _, policy := range []models.Policy{models.PolicyContentHash, models.PolicyModTime} {
		t.Run(string(policy), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
			expectTree(mockAdapter, map[string][]models.RemoteEntry{
				"/":    {remoteFile(t, "a.txt", "alpha"), models.FolderEntry{Name: "Sub"}},
				"/Sub": {remoteFile(t, "b.txt", "bravo")},
			})
			expectDownload(mockAdapter, "/a.txt", "alpha").Times(1)
			expectDownload(mockAdapter, "/Sub/b.txt", "bravo").Times(1)

			req := hashRequest()
			req.Policy = policy

			first, err := svc.Run(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, 2, first.FilesDownloaded)

			// второй запуск без изменений на удалённой стороне: ноль загрузок
			second, err := svc.Run(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, 0, second.FilesDownloaded)
			assert.Equal(t, 2, second.FilesChecked)
			assert.NotEqual(t, first.RunID, second.RunID)
		})
	}
}

func TestSyncService_Run_HashCurrentNoDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	writeLocal(t, root, "a.txt", "alpha", remoteTime)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {remoteFile(t, "a.txt", "alpha")},
	})
	// Download не ожидается: gomock упадёт при вызове

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesChecked)
	assert.Equal(t, 0, stats.FilesDownloaded)
}

func TestSyncService_Run_StaleReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	writeLocal(t, root, "a.txt", "old", remoteTime)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {remoteFile(t, "a.txt", "new content")},
	})
	expectDownload(mockAdapter, "/a.txt", "new content").Times(1)

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesDownloaded)
	assert.Equal(t, "new content", readLocal(t, root, "a.txt"))
}

func TestSyncService_Run_CurrentTouchRepairsModTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	writeLocal(t, root, "a.txt", "alpha", remoteTime.Add(-time.Hour))
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {remoteFile(t, "a.txt", "alpha")},
	})

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesChecked)
	assert.Equal(t, 0, stats.FilesDownloaded)

	info, err := os.Stat(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(remoteTime))
}

func TestSyncService_Run_NoModTimePreservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {remoteFile(t, "a.txt", "alpha")},
	})
	expectDownload(mockAdapter, "/a.txt", "alpha")

	req := hashRequest()
	req.PreserveModTime = false
	_, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.False(t, info.ModTime().Equal(remoteTime))
}

// ── failure isolation ────────────────────────────────────────────────────────

func TestSyncService_Run_FailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)

	names := []string{"f1.txt", "f2.txt", "f3.txt", "f4.txt", "f5.txt"}
	entries := make([]models.RemoteEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, remoteFile(t, name, "content of "+name))
	}
	expectTree(mockAdapter, map[string][]models.RemoteEntry{"/": entries})

	for _, name := range names {
		if name == "f3.txt" {
			mockAdapter.EXPECT().Download(gomock.Any(), "/f3.txt").Return(nil, adapter.ErrUnavailable)
			continue
		}
		expectDownload(mockAdapter, "/"+name, "content of "+name).Times(1)
	}

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err, "a per-item failure must not abort the run")

	assert.Equal(t, 4, stats.FilesDownloaded)
	require.Len(t, stats.Failures, 1)
	assert.Equal(t, "/f3.txt", stats.Failures[0].RemotePath)
	assert.Equal(t, "f3.txt", stats.Failures[0].LocalPath)
	assert.ErrorIs(t, stats.Failures[0].Cause, adapter.ErrUnavailable)

	for _, name := range []string{"f1.txt", "f2.txt", "f4.txt", "f5.txt"} {
		assert.Equal(t, "content of "+name, readLocal(t, root, name))
	}
	_, err = os.Stat(filepath.Join(root, "f3.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSyncService_Run_SymlinkSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	link := remoteFile(t, "link", "")
	link.Symlink = true
	expectTree(mockAdapter, map[string][]models.RemoteEntry{"/": {link}})

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.FilesChecked)
	assert.Equal(t, 0, stats.FilesDownloaded)
	assert.Empty(t, stats.Failures)
}

func TestSyncService_Run_UnknownKindRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {models.UnknownEntry{Name: "gone", Kind: "deleted"}, remoteFile(t, "z.txt", "zulu")},
	})
	expectDownload(mockAdapter, "/z.txt", "zulu")

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesDownloaded)
	require.Len(t, stats.Failures, 1)
	assert.Equal(t, "/gone", stats.Failures[0].RemotePath)
	assert.ErrorIs(t, stats.Failures[0].Cause, ErrUnexpectedKind)
	assert.Contains(t, stats.Failures[0].Cause.Error(), "deleted")
}

func TestSyncService_Run_ListingFailureIsEmptyFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	mockAdapter.EXPECT().ListFolder(gomock.Any(), "/").Return(models.ListingPage{}, adapter.ErrNotFound)

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FoldersChecked)
	assert.Empty(t, stats.Failures)
}

func TestSyncService_Run_EndpointErrorInSubfolderContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {models.FolderEntry{Name: "Gone"}, remoteFile(t, "z.txt", "zulu")},
	})
	mockAdapter.EXPECT().ListFolder(gomock.Any(), "/Gone").
		Return(models.ListingPage{}, fmt.Errorf("%w: path/not_found/", adapter.ErrNotFound))
	expectDownload(mockAdapter, "/z.txt", "zulu")

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.FoldersChecked)
	assert.Equal(t, 1, stats.FilesDownloaded)
}

// Отозванные учётные данные должны давать прерванный запуск, а не "всё
// синхронизировано" с кодом 0.
func TestSyncService_Run_UnauthorizedListingAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	mockAdapter.EXPECT().ListFolder(gomock.Any(), "/").
		Return(models.ListingPage{}, fmt.Errorf("%w: invalid_access_token", adapter.ErrUnauthorized))

	stats, err := svc.Run(context.Background(), hashRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, 1, stats.FoldersChecked)

	code := NewReporter("", logger.Nop()).Report(stats, err)
	assert.Equal(t, ExitAborted, code)
}

func TestSyncService_Run_UnavailableInSubfolderAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {models.FolderEntry{Name: "Sub"}},
	})
	mockAdapter.EXPECT().ListFolder(gomock.Any(), "/Sub").Return(models.ListingPage{}, adapter.ErrUnavailable)

	stats, err := svc.Run(context.Background(), hashRequest())
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Equal(t, ExitAborted, NewReporter("", logger.Nop()).Report(stats, err))
}

type fixedClassifier models.Staleness

func (c fixedClassifier) Classify(models.FileEntry, string) (models.Staleness, error) {
	return models.Staleness(c), nil
}

// Неизвестный вердикт классификатора не должен приводить к скачиванию.
func TestSyncService_syncFile_UnknownVerdictFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl, nil)
	r := &run{
		req:        hashRequest(),
		classifier: fixedClassifier(models.Staleness(42)),
		logger:     logger.Nop(),
	}

	out := svc.syncFile(context.Background(), r, models.FileEntry{Name: "a.txt"}, "/a.txt", "a.txt")
	assert.Equal(t, outcomeFailed, out.kind)
	assert.ErrorIs(t, out.cause, ErrUnknownStaleness)
}

func TestSyncService_Run_FileBlocksFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	writeLocal(t, root, "Docs", "not a folder", remoteTime)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {models.FolderEntry{Name: "Docs"}},
	})
	// "/Docs" не должен листиться

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FoldersChecked)
	require.Len(t, stats.Failures, 1)
	assert.ErrorIs(t, stats.Failures[0].Cause, store.ErrNotDirectory)
}

func TestSyncService_Run_DirectoryBlocksFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a.txt"), 0o755))
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/": {remoteFile(t, "a.txt", "alpha")},
	})

	stats, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	require.Len(t, stats.Failures, 1)
	assert.ErrorIs(t, stats.Failures[0].Cause, ErrLocalIsDirectory)
}

// ── abort ────────────────────────────────────────────────────────────────────

func TestSyncService_Run_UnusableRootAbortsBeforeListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rootFile := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(rootFile, []byte("x"), 0o600))
	mirror, err := store.NewMirror(rootFile)
	require.NoError(t, err)

	// никаких ожиданий: любой вызов листинга провалит тест
	mockAdapter := mock.NewMockRemoteAdapter(ctrl)
	svc := NewSyncService(mockAdapter, mirror, nil, logger.Nop())

	stats, err := svc.Run(context.Background(), hashRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, ErrLocalRootUnusable)
	assert.ErrorIs(t, err, store.ErrRootNotDirectory)
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.FoldersChecked)
}

func TestSyncService_Run_ConfirmDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	confirmer := &stubConfirmer{answer: false}
	svc, _, root := newTestSyncSvc(t, ctrl, confirmer)

	_, err := svc.Run(context.Background(), hashRequest())
	assert.ErrorIs(t, err, ErrLocalRootUnusable)
	assert.Equal(t, 1, confirmer.asked)

	_, statErr := os.Stat(root)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "root must not be created")
}

func TestSyncService_Run_ConfirmAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	confirmer := &stubConfirmer{answer: true}
	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, confirmer)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{"/": nil})

	_, err := svc.Run(context.Background(), hashRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, confirmer.asked)
	assert.DirExists(t, root)
}

func TestSyncService_Run_ConfirmError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl, &stubConfirmer{err: assert.AnError})

	_, err := svc.Run(context.Background(), hashRequest())
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSyncService_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := svc.Run(ctx, hashRequest())
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.FoldersChecked)
}

func TestSyncService_Run_CancelledDuringListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, nil)
	ctx, cancel := context.WithCancel(context.Background())
	mockAdapter.EXPECT().
		ListFolder(gomock.Any(), "/").
		DoAndReturn(func(context.Context, string) (models.ListingPage, error) {
			cancel()
			return models.ListingPage{}, context.Canceled
		})

	stats, err := svc.Run(ctx, hashRequest())
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, 1, stats.FoldersChecked)
}

func TestSyncService_Run_UnknownPolicyAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl, nil)
	req := hashRequest()
	req.Policy = "size"

	_, err := svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

// ── traversal order ──────────────────────────────────────────────────────────

func TestSyncService_Run_TraversalOrder(t *testing.T) {
	tests := []struct {
		name      string
		traversal models.Traversal
		want      []string
	}{
		{
			name:      "depth first",
			traversal: models.TraversalDepthFirst,
			want:      []string{"/", "/B", "/B/B1", "/A", "/A/A1"},
		},
		{
			name:      "breadth first",
			traversal: models.TraversalBreadthFirst,
			want:      []string{"/", "/A", "/B", "/A/A1", "/B/B1"},
		},
	}

	tree := map[string][]models.RemoteEntry{
		"/":     {models.FolderEntry{Name: "A"}, models.FolderEntry{Name: "B"}},
		"/A":    {models.FolderEntry{Name: "A1"}},
		"/B":    {models.FolderEntry{Name: "B1"}},
		"/A/A1": nil,
		"/B/B1": nil,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)

			var visited []string
			mockAdapter.EXPECT().
				ListFolder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, path string) (models.ListingPage, error) {
					visited = append(visited, path)
					return models.ListingPage{Entries: tree[path]}, nil
				}).
				Times(len(tree))

			req := hashRequest()
			req.Traversal = tt.traversal
			stats, err := svc.Run(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, visited)
			assert.Equal(t, 5, stats.FoldersChecked)
			assert.DirExists(t, filepath.Join(root, "A", "A1"))
			assert.DirExists(t, filepath.Join(root, "B", "B1"))
		})
	}
}

func TestSyncService_Run_StartsAtSubfolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/Work/Docs": {remoteFile(t, "a.txt", "alpha")},
	})
	expectDownload(mockAdapter, "/Work/Docs/a.txt", "alpha")

	req := hashRequest()
	req.Folder = "Work//Docs/"
	_, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	// локальная раскладка повторяет полный удалённый путь
	assert.Equal(t, "alpha", readLocal(t, root, "Work/Docs/a.txt"))
}

// ── dry run ──────────────────────────────────────────────────────────────────

func TestSyncService_Run_DryRunWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, root := newTestSyncSvc(t, ctrl, nil)
	require.NoError(t, os.MkdirAll(root, 0o755))
	expectTree(mockAdapter, map[string][]models.RemoteEntry{
		"/":    {remoteFile(t, "a.txt", "alpha"), models.FolderEntry{Name: "Sub"}},
		"/Sub": {remoteFile(t, "b.txt", "bravo")},
	})

	req := hashRequest()
	req.DryRun = true
	stats, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDownloaded, "planned downloads are counted")
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
