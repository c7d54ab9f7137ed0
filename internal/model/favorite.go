package model

import (
	"fmt"
	"time"
)

// ItemType discriminates the table a favorite points to.
type ItemType string

const (
	ItemTypeFile   ItemType = "file"
	ItemTypeFolder ItemType = "folder"
)

// ParseItemType returns the ItemType for s, or an error for anything other than "file" or "folder".
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeFile, ItemTypeFolder:
		return t, nil
	default:
		return "", fmt.Errorf("unknown item type %q", s)
	}
}

// ItemRef is a (type, id) pair pointing at a file or a folder.
// No foreign key backs it: the target may have been deleted since.
type ItemRef struct {
	Type ItemType `json:"item_type"`
	ID   int64    `json:"item_id"`
}

// Favorite is a bookmarked file or folder.
type Favorite struct {
	ID        int64     `json:"id"`
	ItemType  ItemType  `json:"item_type"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Ref returns the item the favorite points to.
func (f Favorite) Ref() ItemRef {
	return ItemRef{Type: f.ItemType, ID: f.ItemID}
}

// FavoriteEntry is a favorite with the display name and path of its target.
// Missing is set when the target no longer exists; Name and Path are nil in that case.
type FavoriteEntry struct {
	Favorite
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	Missing bool    `json:"missing"`
}
