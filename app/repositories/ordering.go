package repositories

import (
	"sort"

	"blogsite/app/models"
)

// SortNewestFirst orders posts by publish date, newest first. Posts published
// at the same instant keep the higher ID first.
func SortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PublishAt.Equal(posts[j].PublishAt) {
			return posts[i].PublishAt.After(posts[j].PublishAt)
		}
		return posts[i].ID > posts[j].ID
	})
}

// Window cuts a limit/offset page out of posts. A limit of zero or less
// means no limit.
func Window(posts []*models.Post, limit, offset int) []*models.Post {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(posts) {
		return []*models.Post{}
	}
	end := len(posts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return posts[offset:end]
}
