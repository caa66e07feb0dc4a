package repositories

import "inkpress/app/models"

// PostFilter narrows post queries. Zero value matches everything.
type PostFilter struct {
	Published *bool  // nil matches any publish state
	Category  string // empty matches any category
	Query     string // case-insensitive substring match on title or category
}

// CommentFilter narrows comment queries. Zero value matches everything.
type CommentFilter struct {
	PostID   string // empty matches any post
	Approved *bool  // nil matches any approval state
}

// PostRepository defines the interface for post data access.
// List and Recent return posts ordered by creation time descending.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(filter PostFilter) ([]*models.Post, error)
	Recent(n int) ([]*models.Post, error)
	Count(filter PostFilter) (int, error)
	Update(post *models.Post) error
	// DeleteWithComments removes the post and every comment referencing it
	// inside a single store transaction.
	DeleteWithComments(id string) error
}

// CommentRepository defines the interface for comment data access.
// List returns comments ordered by creation time descending.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	List(filter CommentFilter) ([]*models.Comment, error)
	Count(filter CommentFilter) (int, error)
	Update(comment *models.Comment) error
	Delete(id string) error
}
