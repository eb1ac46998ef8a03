package models

import "time"

// BlobVersion describes one immutable version of a logical file's content.
type BlobVersion struct {
	VersionID    string
	LastModified time.Time
	IsLatest     bool
	Size         int64
}

// VersionPage is one page of a version listing. An empty NextPageToken means
// the listing is complete.
type VersionPage struct {
	Versions      []BlobVersion
	NextPageToken string
}
