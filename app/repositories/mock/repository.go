package mock

import (
	"sync"

	"blogsite/app/models"
	"blogsite/app/repositories"
)

type PostRepository struct {
	posts        map[int64]*models.Post
	fingerprints map[string]int64
	nextID       int64
	mutex        sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:        make(map[int64]*models.Post),
		fingerprints: make(map[string]int64),
		nextID:       1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[int64]*models.Post)
	m.fingerprints = make(map[string]int64)
	m.nextID = 1
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	if post.Fingerprint != "" {
		m.fingerprints[post.Fingerprint] = post.ID
	}
	return nil
}

func (m *PostRepository) GetByID(id int64) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List(filter repositories.PostFilter, limit, offset int) ([]*models.Post, error) {
	posts := m.matching(filter)
	repositories.SortNewestFirst(posts)
	return repositories.Window(posts, limit, offset), nil
}

func (m *PostRepository) Count(filter repositories.PostFilter) (int, error) {
	return len(m.matching(filter)), nil
}

func (m *PostRepository) ExistsByFingerprint(fingerprint string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	_, exists := m.fingerprints[fingerprint]
	return exists, nil
}

func (m *PostRepository) matching(filter repositories.PostFilter) []*models.Post {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, post := range m.posts {
		if filter.Match(post) {
			posts = append(posts, post)
		}
	}
	return posts
}
