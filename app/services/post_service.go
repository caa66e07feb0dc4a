package services

import (
	"strings"

	"inkpress/app/apperr"
	"inkpress/app/models"
	"inkpress/app/repositories"
)

// PostService is the publication state machine: every post starts as a
// draft, toggles between draft and published, and ends with a cascading
// delete. All mutations are admin-gated.
type PostService struct {
	postRepo repositories.PostRepository
	gate     Authorizer
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, gate Authorizer) *PostService {
	return &PostService{
		postRepo: postRepo,
		gate:     gate,
	}
}

// CreateDraftInput carries the fields for a new draft.
type CreateDraftInput struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Category  string `json:"category"`
	Body      string `json:"body"`
	Thumbnail string `json:"thumbnail"`
}

// ListFilter narrows the public post listing.
type ListFilter struct {
	Category string
	Query    string
}

// CreateDraft validates the input and persists a new unpublished post,
// returning its identifier. The body may be empty while drafting.
func (s *PostService) CreateDraft(in CreateDraftInput, credential string) (string, error) {
	if _, err := s.gate.Authorize(credential); err != nil {
		return "", err
	}

	if strings.TrimSpace(in.Title) == "" {
		return "", apperr.Validation("title is required")
	}
	if !models.ValidCategory(in.Category) {
		return "", apperr.Validation("unknown category %q", in.Category)
	}

	post := &models.Post{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Category:  in.Category,
		Body:      in.Body,
		Thumbnail: in.Thumbnail,
		Published: false,
	}
	if err := s.postRepo.Create(post); err != nil {
		return "", storeErr(err, "post", post.ID)
	}
	return post.ID, nil
}

// TogglePublish flips the published flag. Applying it twice returns the
// post to its original state.
func (s *PostService) TogglePublish(postID, credential string) error {
	if _, err := s.gate.Authorize(credential); err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return storeErr(err, "post", postID)
	}

	post.Published = !post.Published
	if err := s.postRepo.Update(post); err != nil {
		return storeErr(err, "post", postID)
	}
	return nil
}

// DeletePost removes the post and, atomically, every comment referencing it.
func (s *PostService) DeletePost(postID, credential string) error {
	if _, err := s.gate.Authorize(credential); err != nil {
		return err
	}

	if err := s.postRepo.DeleteWithComments(postID); err != nil {
		return storeErr(err, "post", postID)
	}
	return nil
}

// ListPublished returns published posts newest first. The filter narrows by
// category and by case-insensitive substring match on title or category.
// No gate: this is the public listing surface.
func (s *PostService) ListPublished(filter ListFilter) ([]*models.Post, error) {
	published := true
	posts, err := s.postRepo.List(repositories.PostFilter{
		Published: &published,
		Category:  filter.Category,
		Query:     filter.Query,
	})
	if err != nil {
		return nil, storeErr(err, "post", "")
	}
	return posts, nil
}

// ListAll returns every post regardless of publish state, newest first.
// Admin-gated: backs the admin post table.
func (s *PostService) ListAll(credential string) ([]*models.Post, error) {
	if _, err := s.gate.Authorize(credential); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.List(repositories.PostFilter{})
	if err != nil {
		return nil, storeErr(err, "post", "")
	}
	return posts, nil
}

// GetByID returns the post regardless of published state. Holders of a
// draft's identifier can fetch it; gating draft exposure is the caller's
// policy decision.
func (s *PostService) GetByID(postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post", postID)
	}
	return post, nil
}
