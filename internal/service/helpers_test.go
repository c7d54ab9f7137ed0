package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func folder(id int64, name, path string, parent *int64) model.Folder {
	return model.Folder{ID: id, Name: name, Path: path, ParentID: parent, CreatedAt: seedTime, UpdatedAt: seedTime}
}

// seedFolders mirrors the bootstrap data, ordered by path then id.
func seedFolders() []model.Folder {
	return []model.Folder{
		folder(1, "Root", "/", nil),
		folder(2, "Documents", "/Documents", int64p(1)),
		folder(6, "Personal", "/Documents/Personal", int64p(2)),
		folder(5, "Work", "/Documents/Work", int64p(2)),
		folder(3, "Pictures", "/Pictures", int64p(1)),
		folder(4, "Videos", "/Videos", int64p(1)),
	}
}
