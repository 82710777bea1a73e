package model

import "time"

// Identity is the verified caller. UserID is the owner of every record the
// caller creates or reads.
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

// Asset is a reference to an uploaded binary held by the asset host.
type Asset struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
