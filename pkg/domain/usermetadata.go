package domain

import (
	"encoding/json"
	"time"
)

// UserMetadata is the metadata record kept for a single user. A user has at
// most one record, keyed by UserID.
type UserMetadata struct {
	// UserID is the owner of the record and its primary key.
	UserID UserID `json:"userId"`
	// Attributes is an opaque JSON object attached to the user.
	Attributes json.RawMessage `json:"attributes"`

	// CreatedAt is the time when the record was first created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed every time the record is created or updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserMetadataFilter narrows down a listing of UserMetadata records.
// Zero values mean "no constraint".
type UserMetadataFilter struct {
	// UserIDs restricts the listing to the given users.
	UserIDs []UserID

	CreatedAfter  time.Time
	CreatedBefore time.Time
	UpdatedAfter  time.Time
	UpdatedBefore time.Time

	// Limit caps the number of returned records; 0 disables the cap.
	Limit uint
	// Offset skips the given number of records.
	Offset uint
}
