package models

import "errors"

// PostsPerPage is the fixed size of a blog index page.
const PostsPerPage = 20

var ErrInvalidPage = errors.New("invalid page")

// BlogPostsPageRequest is a zero-indexed page of the blog index.
// Two requests are equal when they point at the same page.
type BlogPostsPageRequest struct {
	Page int
	Size int
}

func NewBlogPostsPageRequest(page int) BlogPostsPageRequest {
	return BlogPostsPageRequest{Page: page, Size: PostsPerPage}
}

// Offset returns the number of posts that precede this page.
func (r BlogPostsPageRequest) Offset() int {
	return r.Page * r.Size
}

// PaginationInfo describes where a rendered page sits in the index.
// CurrentPage is 1-indexed.
type PaginationInfo struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalPages  int `json:"total_pages"`
}

// NewPaginationInfo computes the page count for totalPosts posts split into
// pages of pageSize. An empty index still has one page.
func NewPaginationInfo(currentPage, pageSize, totalPosts int) PaginationInfo {
	totalPages := 1
	if pageSize > 0 && totalPosts > 0 {
		totalPages = (totalPosts + pageSize - 1) / pageSize
	}
	return PaginationInfo{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

func (p PaginationInfo) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p PaginationInfo) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

func (p PaginationInfo) PreviousPage() int {
	return p.CurrentPage - 1
}

func (p PaginationInfo) NextPage() int {
	return p.CurrentPage + 1
}

// Pages lists every page number for the pager links.
func (p PaginationInfo) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}
