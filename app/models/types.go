package models

import "time"

// PostCategory groups posts on the blog index.
type PostCategory string

const (
	CategoryEngineering   PostCategory = "ENGINEERING"
	CategoryReleases      PostCategory = "RELEASES"
	CategoryNewsAndEvents PostCategory = "NEWS_AND_EVENTS"
)

// Post represents a blog post.
type Post struct {
	ID              int64        `json:"id" validate:"gte=0"`
	Title           string       `json:"title" validate:"required,min=3,max=200"`
	Author          string       `json:"author" validate:"required,max=100"`
	Category        PostCategory `json:"category" validate:"required,oneof=ENGINEERING RELEASES NEWS_AND_EVENTS"`
	Broadcast       bool         `json:"broadcast"`
	Draft           bool         `json:"draft"`
	RawContent      string       `json:"raw_content" validate:"required"`
	RenderedContent string       `json:"rendered_content"`
	RenderedSummary string       `json:"rendered_summary"`
	Fingerprint     string       `json:"fingerprint,omitempty"`
	PublishAt       time.Time    `json:"publish_at" validate:"required"`
	CreatedAt       time.Time    `json:"created_at" validate:"required"`
}
