package entity

import "time"

type MediaItem struct {
	ID    int64
	Slug  string
	Title string
	// Description is stored as HTML.
	Description string
	// In seconds.
	Duration     int
	Views        int
	ThumbnailURL string
	File         MediaFile
	PublishOn    time.Time
	ModifiedOn   time.Time
}

// MediaFile is the primary playable file of a media item.
type MediaFile struct {
	URL      string
	MimeType string
	// In bytes.
	Size int64
}

type Category struct {
	ID   int64
	Name string
	Slug string
}
