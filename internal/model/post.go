package model

import "time"

// Post status values.
const (
	PostStatusPending = "pending"
	PostStatusDraft   = "draft"
	PostStatusPosted  = "posted"
)

// Post is one generated piece of content bound to a platform. It is created
// pending, becomes posted only after a confirmed remote publish, and stays
// draft otherwise.
type Post struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Platform  string     `json:"platform"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	PostedAt  *time.Time `json:"posted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublishOutcome is the success-path result of one publish attempt.
// Mock is true only when no real network call was made due to missing
// configuration; a genuine remote rejection is surfaced as an error instead.
type PublishOutcome struct {
	Mock       bool   `json:"mock"`
	Status     string `json:"status"`
	Platform   string `json:"platform"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Run result status values.
const (
	RunStatusPosted = "posted"
	RunStatusDraft  = "draft"
	RunStatusError  = "error"
)

// RunResult reports the outcome of one genre×platform pair in an autopilot
// run. ContentPreview holds at most the first 80 runes of the generated text.
type RunResult struct {
	PostID         string `json:"post_id,omitempty"`
	Platform       string `json:"platform"`
	Genre          string `json:"genre,omitempty"`
	ContentPreview string `json:"content,omitempty"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
}
