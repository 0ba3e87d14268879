package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.PublishAt.IsZero() {
		p.PublishAt = p.CreatedAt
	}
	if p.Category == "" {
		p.Category = CategoryEngineering
	}
}

// IsPublished reports whether the post is visible to readers at now.
func (p *Post) IsPublished(now time.Time) bool {
	return !p.Draft && !p.PublishAt.After(now)
}

func (p *Post) IsBroadcast() bool {
	return p.Broadcast
}

// Slug turns the title into a lowercase, dash separated URL fragment.
func (p *Post) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Path is the canonical page address of the post.
func (p *Post) Path() string {
	path := "/blog/" + strconv.FormatInt(p.ID, 10)
	if slug := p.Slug(); slug != "" {
		path += "-" + slug
	}
	return path
}
