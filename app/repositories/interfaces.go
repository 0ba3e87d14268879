package repositories

import (
	"time"

	"blogsite/app/models"
)

// PostFilter narrows a post listing.
// A zero PublishedAt disables the published check, so drafts and
// scheduled posts are included.
type PostFilter struct {
	PublishedAt   time.Time
	BroadcastOnly bool
}

// Match reports whether post passes the filter.
func (f PostFilter) Match(post *models.Post) bool {
	if !f.PublishedAt.IsZero() && !post.IsPublished(f.PublishedAt) {
		return false
	}
	if f.BroadcastOnly && !post.IsBroadcast() {
		return false
	}
	return true
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int64) (*models.Post, error)
	// List returns matching posts newest PublishAt first.
	List(filter PostFilter, limit, offset int) ([]*models.Post, error)
	Count(filter PostFilter) (int, error)
	ExistsByFingerprint(fingerprint string) (bool, error)
}
