package domain

import (
	"errors"
	"time"
)

var ErrCaseNotFound = errors.New("case not found")

// Case is a single reported case record. OwnerID references the user who
// created it; the reference is advisory, not enforced by the store.
type Case struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}
