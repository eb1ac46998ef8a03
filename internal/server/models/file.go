// Package models defines server-side data models persisted in the metadata
// store and returned by the blob store.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
)

// File is the metadata record of one logical file: the catalog row kept per
// (TenantID, FileID). The content lives in the versioned blob store under
// StorageKey.
type File struct {
	TenantID string
	FileID   string

	FileName    string
	DiagramKind DiagramKind
	ContentType string

	// StorageKey is the blob store address, always "{tenant}/{fileId}".
	StorageKey string

	// Attributes holds caller-supplied metadata fields.
	Attributes map[string]any

	// CreatedAt is set once, on the first write of the record.
	CreatedAt time.Time
	// UpdatedAt equals CreatedAt after the first write and never decreases.
	UpdatedAt time.Time
}

// StorageKey returns the blob address of a logical file.
func StorageKey(tenantID, fileID string) string {
	return tenantID + "/" + fileID
}

// FormatFileID renders a counter value as a logical file id. Padding to three
// digits is cosmetic; larger values keep all their digits.
func FormatFileID(n int64) string {
	return fmt.Sprintf("%s%03d", common.FileIDPrefix, n)
}
