package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"blogsite/app/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// postFile is the layout of an import file
type postFile struct {
	Posts []importedPost `yaml:"posts"`
}

type importedPost struct {
	Title     string              `yaml:"title"`
	Author    string              `yaml:"author"`
	Category  models.PostCategory `yaml:"category"`
	Broadcast bool                `yaml:"broadcast"`
	Draft     bool                `yaml:"draft"`
	PublishAt time.Time           `yaml:"publish_at"`
	Content   string              `yaml:"content"`
}

func (p importedPost) toPost() *models.Post {
	return &models.Post{
		Title:      p.Title,
		Author:     p.Author,
		Category:   p.Category,
		Broadcast:  p.Broadcast,
		Draft:      p.Draft,
		PublishAt:  p.PublishAt,
		RawContent: p.Content,
	}
}

// readPostFile parses a YAML import file
func readPostFile(path string) ([]*models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file postFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	posts := make([]*models.Post, 0, len(file.Posts))
	for _, p := range file.Posts {
		posts = append(posts, p.toPost())
	}
	return posts, nil
}

func (c *CLI) importPosts(path string) int {
	posts, err := readPostFile(path)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to read posts: %v\n", err)
		return 1
	}

	service, db, err := c.openService()
	if err != nil {
		fmt.Fprintf(c.out, "Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	result, err := service.ImportPosts(posts)
	if err != nil {
		fmt.Fprintf(c.out, "Import stopped after %d posts: %v\n", result.Created, err)
		return 1
	}

	c.log.Info("posts imported",
		zap.String("file", path),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	fmt.Fprintf(c.out, "Imported %d posts (%d already present)\n", result.Created, result.Skipped)
	return 0
}

func (c *CLI) listPosts() int {
	service, db, err := c.openService()
	if err != nil {
		fmt.Fprintf(c.out, "Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	posts, err := service.AllPosts()
	if err != nil {
		fmt.Fprintf(c.out, "Failed to list posts: %v\n", err)
		return 1
	}
	if len(posts) == 0 {
		fmt.Fprintln(c.out, "No posts")
		return 0
	}

	now := c.now()
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPUBLISH AT\tPATH")
	for _, post := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", post.ID, status(post, now), post.PublishAt.Format(time.DateTime), post.Path())
	}
	tw.Flush()
	return 0
}

func status(post *models.Post, now time.Time) string {
	var s string
	switch {
	case post.Draft:
		s = "draft"
	case post.IsPublished(now):
		s = "published"
	default:
		s = "scheduled"
	}
	if post.IsBroadcast() {
		s += ",broadcast"
	}
	return s
}
