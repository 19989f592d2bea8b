package domain

import "time"

// Project represents a single portfolio item. It is storage-agnostic and
// shared across the repository, service and HTTP layers.
//
// ID is nil for a transient project that has not been persisted yet; the
// store assigns it on insert. CreatedAt is likewise store-assigned. Title
// and Description are pointers so a payload that omitted them stays absent
// all the way to the insert, where the NOT NULL constraint rejects it.
type Project struct {
	ID          *int64     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	GithubURL   *string    `json:"github_url"`
	LiveURL     *string    `json:"live_url"`
	CreatedAt   *time.Time `json:"created_at"`
}
