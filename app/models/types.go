package models

import "time"

// Category values a post may carry. The set is fixed; validation rejects
// anything else.
const (
	CategoryStartup    = "Startup"
	CategoryTechnology = "Technology"
	CategoryLifestyle  = "Lifestyle"
	CategoryFinance    = "Finance"
)

// Categories lists every valid post category.
var Categories = []string{
	CategoryStartup,
	CategoryTechnology,
	CategoryLifestyle,
	CategoryFinance,
}

// Post represents a blog article with draft/published state.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=200"`
	Subtitle  string    `json:"subtitle" validate:"max=300"`
	Category  string    `json:"category" validate:"required,oneof=Startup Technology Lifestyle Finance"`
	Body      string    `json:"body"`
	Thumbnail string    `json:"thumbnail"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// Comment represents a reader-submitted note attached to a post, hidden
// until an admin approves it.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	PostID    string    `json:"postId" validate:"required"`
	Author    string    `json:"author" validate:"required,max=100"`
	Body      string    `json:"body" validate:"required,max=1000"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// ReviewComment is a comment joined with its owning post's title for the
// moderation queue. Never persisted.
type ReviewComment struct {
	Comment
	PostTitle string `json:"postTitle"`
}

// DashboardSummary aggregates store counts for the admin dashboard.
// Recomputed on demand, never persisted.
type DashboardSummary struct {
	Posts       int     `json:"posts"`
	Comments    int     `json:"comments"`
	Drafts      int     `json:"drafts"`
	RecentPosts []*Post `json:"recentPosts"`
}
