package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/storage"
)

const snapshotPrefix = "snapshots/"

var snapshotName = regexp.MustCompile(`^folder-tree-\d{8}T\d{6}Z-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.json$`)

// snapshotDocument is the JSON body written to object storage.
type snapshotDocument struct {
	GeneratedAt time.Time           `json:"generated_at"`
	FolderCount int                 `json:"folder_count"`
	Tree        []*model.FolderNode `json:"tree"`
}

// SnapshotService exports the folder tree to object storage.
type SnapshotService interface {
	// Export stores the current tree as JSON and returns a presigned download URL.
	Export(ctx context.Context) (*model.TreeSnapshot, error)

	// Open streams a stored snapshot by name. The caller closes the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

type snapshotService struct {
	folders FolderService
	store   storage.Storage
	expiry  time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewSnapshotService constructs a SnapshotService. store may be nil, in which case every
// call fails with ErrStorageUnavailable.
func NewSnapshotService(folders FolderService, store storage.Storage, expiry time.Duration, logger *slog.Logger) SnapshotService {
	return &snapshotService{
		folders: folders,
		store:   store,
		expiry:  expiry,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *snapshotService) Export(ctx context.Context) (*model.TreeSnapshot, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}

	tree, err := s.folders.Tree(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	doc := snapshotDocument{
		GeneratedAt: now,
		FolderCount: len(FlattenFolderTree(tree)),
		Tree:        tree,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("folder-tree-%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString())
	key := snapshotPrefix + name
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"folder-count": strconv.Itoa(doc.FolderCount),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.expiry)
	if err != nil {
		// Rollback: an unreachable snapshot is useless.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign snapshot: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "folder tree snapshot exported", "key", key, "folders", doc.FolderCount, "size", info.Size)
	return &model.TreeSnapshot{
		Name:        name,
		Key:         key,
		URL:         url,
		FolderCount: doc.FolderCount,
		Size:        info.Size,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.expiry),
	}, nil
}

func (s *snapshotService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, storage.ObjectInfo{}, ErrStorageUnavailable
	}
	if !snapshotName.MatchString(name) {
		return nil, storage.ObjectInfo{}, validationError("invalid snapshot name %q", name)
	}
	rc, info, err := s.store.Get(ctx, snapshotPrefix+name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("open snapshot: %w", err)
	}
	return rc, info, nil
}
