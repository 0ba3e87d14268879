package services

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"blogsite/app/markdown"
	"blogsite/app/models"
	"blogsite/app/repositories"

	"golang.org/x/crypto/sha3"
)

// BlogService handles business logic for blog posts
type BlogService struct {
	postRepo repositories.PostRepository
	renderer *markdown.Renderer
	now      func() time.Time
}

// ImportResult counts what an import did
type ImportResult struct {
	Created int
	Skipped int
}

// NewBlogService creates a new BlogService
func NewBlogService(postRepo repositories.PostRepository, renderer *markdown.Renderer) *BlogService {
	return &BlogService{
		postRepo: postRepo,
		renderer: renderer,
		now:      time.Now,
	}
}

// SetClock replaces the time source used to decide what is published
func (s *BlogService) SetClock(now func() time.Time) {
	s.now = now
}

// MostRecentPosts returns one page of published posts, newest first
func (s *BlogService) MostRecentPosts(req models.BlogPostsPageRequest) ([]*models.Post, error) {
	return s.page(repositories.PostFilter{PublishedAt: s.now()}, req)
}

// MostRecentBroadcastPosts returns one page of published broadcast posts
func (s *BlogService) MostRecentBroadcastPosts(req models.BlogPostsPageRequest) ([]*models.Post, error) {
	return s.page(repositories.PostFilter{PublishedAt: s.now(), BroadcastOnly: true}, req)
}

// PaginationInfo places req within the published posts
func (s *BlogService) PaginationInfo(req models.BlogPostsPageRequest) (models.PaginationInfo, error) {
	if req.Page < 0 {
		return models.PaginationInfo{}, fmt.Errorf("%w: %d", models.ErrInvalidPage, req.Page+1)
	}

	total, err := s.postRepo.Count(repositories.PostFilter{PublishedAt: s.now()})
	if err != nil {
		return models.PaginationInfo{}, fmt.Errorf("failed to count posts: %w", err)
	}
	return models.NewPaginationInfo(req.Page+1, req.Size, total), nil
}

// GetPublishedPost retrieves a post that readers are allowed to see
func (s *BlogService) GetPublishedPost(id int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished(s.now()) {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// AllPosts lists every stored post including drafts, newest first
func (s *BlogService) AllPosts() ([]*models.Post, error) {
	return s.postRepo.List(repositories.PostFilter{}, 0, 0)
}

// CreatePost renders, validates and stores a new post
func (s *BlogService) CreatePost(post *models.Post) error {
	if err := s.prepare(post); err != nil {
		return err
	}
	return s.postRepo.Create(post)
}

// ImportPosts creates every post whose content has not been stored before
func (s *BlogService) ImportPosts(posts []*models.Post) (ImportResult, error) {
	var result ImportResult
	for _, post := range posts {
		exists, err := s.postRepo.ExistsByFingerprint(Fingerprint(post))
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}
		if err := s.CreatePost(post); err != nil {
			return result, fmt.Errorf("import %q: %w", post.Title, err)
		}
		result.Created++
	}
	return result, nil
}

// Fingerprint identifies a post by its title and raw content
func Fingerprint(post *models.Post) string {
	sum := sha3.Sum256([]byte(post.Title + "\x00" + post.RawContent))
	return hex.EncodeToString(sum[:])
}

func (s *BlogService) page(filter repositories.PostFilter, req models.BlogPostsPageRequest) ([]*models.Post, error) {
	if req.Page < 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidPage, req.Page+1)
	}
	// offset would overflow; no stored page reaches that far
	if req.Size > 0 && req.Page > math.MaxInt/req.Size {
		return []*models.Post{}, nil
	}

	posts, err := s.postRepo.List(filter, req.Size, req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) prepare(post *models.Post) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	post.BeforeCreate(s.now())
	post.Fingerprint = Fingerprint(post)

	rendered, err := s.renderer.Render(post.RawContent)
	if err != nil {
		return err
	}
	summary, err := s.renderer.Summary(post.RawContent)
	if err != nil {
		return err
	}
	post.RenderedContent = rendered
	post.RenderedSummary = summary

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}
	return nil
}
