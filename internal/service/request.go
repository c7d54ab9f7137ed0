package service

import (
	"fmt"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

const (
	maxNameLength      = 255
	maxPathLength      = 1024
	maxExtensionLength = 32
	maxMimeTypeLength  = 255
)

// CreateFolderRequest is the input of FolderService.Create.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	ParentID *int64 `json:"parent_id"`
}

// Validate checks the request fields.
func (r *CreateFolderRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.Path, validation.Required, validation.Length(1, maxPathLength)),
		validation.Field(&r.ParentID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	))
}

// UpdateFolderRequest is a partial update. Absent fields are left unchanged;
// parent_id distinguishes absent from an explicit null.
type UpdateFolderRequest struct {
	Name     *string               `json:"name"`
	Path     *string               `json:"path"`
	ParentID model.Nullable[int64] `json:"parent_id"`
}

// Validate checks the supplied fields only.
func (r *UpdateFolderRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, maxNameLength)),
		validation.Field(&r.Path, validation.NilOrNotEmpty, validation.Length(1, maxPathLength)),
		validation.Field(&r.ParentID, validation.By(nullableMin(1))),
	))
}

// MoveFolderRequest moves a folder under ParentID, or to the top level when ParentID is nil.
type MoveFolderRequest struct {
	ParentID *int64 `json:"parent_id"`
}

// CreateFileRequest is the input of FileService.Create.
type CreateFileRequest struct {
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	FolderID  *int64  `json:"folder_id"`
	Extension *string `json:"extension"`
	Size      *int64  `json:"size"`
	MimeType  *string `json:"mime_type"`
}

// Validate checks the request fields.
func (r *CreateFileRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.Path, validation.Required, validation.Length(1, maxPathLength)),
		validation.Field(&r.FolderID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.Extension, validation.Length(0, maxExtensionLength)),
		validation.Field(&r.Size, validation.Min(int64(0))),
		validation.Field(&r.MimeType, validation.Length(0, maxMimeTypeLength)),
	))
}

// UpdateFileRequest is a partial update of a file.
type UpdateFileRequest struct {
	Name      *string                `json:"name"`
	Path      *string                `json:"path"`
	FolderID  model.Nullable[int64]  `json:"folder_id"`
	Extension model.Nullable[string] `json:"extension"`
	Size      *int64                 `json:"size"`
	MimeType  model.Nullable[string] `json:"mime_type"`
}

// Validate checks the supplied fields only.
func (r *UpdateFileRequest) Validate() error {
	return wrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, maxNameLength)),
		validation.Field(&r.Path, validation.NilOrNotEmpty, validation.Length(1, maxPathLength)),
		validation.Field(&r.FolderID, validation.By(nullableMin(1))),
		validation.Field(&r.Extension, validation.By(nullableMaxLength(maxExtensionLength))),
		validation.Field(&r.Size, validation.Min(int64(0))),
		validation.Field(&r.MimeType, validation.By(nullableMaxLength(maxMimeTypeLength))),
	))
}

// MoveFileRequest moves a file into FolderID, or detaches it when FolderID is nil.
type MoveFileRequest struct {
	FolderID *int64 `json:"folder_id"`
}

// AddFavoriteRequest is the input of FavoriteService.Add.
type AddFavoriteRequest struct {
	ItemType string `json:"item_type"`
	ItemID   int64  `json:"item_id"`
}

// Validate checks the request and returns the parsed reference.
func (r *AddFavoriteRequest) Validate() (model.ItemRef, error) {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ItemType, validation.Required, validation.In(string(model.ItemTypeFile), string(model.ItemTypeFolder))),
		validation.Field(&r.ItemID, validation.Required, validation.Min(int64(1))),
	)
	if err != nil {
		return model.ItemRef{}, wrapValidation(err)
	}
	return model.ItemRef{Type: model.ItemType(r.ItemType), ID: r.ItemID}, nil
}

func nullableMin(min int64) validation.RuleFunc {
	return func(value any) error {
		n, _ := value.(model.Nullable[int64])
		if n.Value != nil && *n.Value < min {
			return fmt.Errorf("must be no less than %d", min)
		}
		return nil
	}
}

func nullableMaxLength(max int) validation.RuleFunc {
	return func(value any) error {
		n, _ := value.(model.Nullable[string])
		if n.Value != nil && utf8.RuneCountInString(*n.Value) > max {
			return fmt.Errorf("the length must be no more than %d", max)
		}
		return nil
	}
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
