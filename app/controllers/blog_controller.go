package controllers

import (
	"blogsite/app/models"
	"blogsite/app/views"
)

// View names resolved by the views package
const (
	ViewBlogIndex = "blog/index"
	ViewBlogShow  = "blog/show"
)

// Model attribute keys
const (
	ModelPosts          = "posts"
	ModelPaginationInfo = "paginationInfo"
	ModelPost           = "post"
)

// BlogService is the data source behind the blog pages
type BlogService interface {
	MostRecentPosts(req models.BlogPostsPageRequest) ([]*models.Post, error)
	MostRecentBroadcastPosts(req models.BlogPostsPageRequest) ([]*models.Post, error)
	PaginationInfo(req models.BlogPostsPageRequest) (models.PaginationInfo, error)
	GetPublishedPost(id int64) (*models.Post, error)
}

// BlogController fills view models for the blog pages
type BlogController struct {
	service BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(service BlogService) *BlogController {
	return &BlogController{service: service}
}

// ListPosts exposes one page of recent posts. page is 1-indexed and is
// passed on without range checks.
func (c *BlogController) ListPosts(model views.Model, page int) (string, error) {
	return c.list(model, page, c.service.MostRecentPosts)
}

// ListBroadcasts exposes one page of recent broadcast posts
func (c *BlogController) ListBroadcasts(model views.Model, page int) (string, error) {
	return c.list(model, page, c.service.MostRecentBroadcastPosts)
}

// ShowPost exposes a single published post. The slug is not checked
// against the post title.
func (c *BlogController) ShowPost(postID int64, slug string, model views.Model) (string, error) {
	post, err := c.service.GetPublishedPost(postID)
	if err != nil {
		return "", err
	}
	model[ModelPost] = post
	return ViewBlogShow, nil
}

func (c *BlogController) list(model views.Model, page int, posts func(models.BlogPostsPageRequest) ([]*models.Post, error)) (string, error) {
	req := models.NewBlogPostsPageRequest(page - 1)

	result, err := posts(req)
	if err != nil {
		return "", err
	}
	model[ModelPosts] = result

	info, err := c.service.PaginationInfo(req)
	if err != nil {
		return "", err
	}
	model[ModelPaginationInfo] = info

	return ViewBlogIndex, nil
}
