package services

import (
	"sort"
	"strings"

	"inkpress/app/apperr"
	"inkpress/app/models"
	"inkpress/app/repositories"
)

// CommentService is the moderation engine: anyone can submit a comment,
// only the admin decides what becomes visible.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	gate        Authorizer
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, gate Authorizer) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		gate:        gate,
	}
}

// SubmitInput carries the fields of a reader-submitted comment.
type SubmitInput struct {
	PostID string `json:"postId"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

// Submit stores a new comment awaiting approval. No gate: anyone can speak.
// The referenced post must exist.
func (s *CommentService) Submit(in SubmitInput) (string, error) {
	if strings.TrimSpace(in.Author) == "" {
		return "", apperr.Validation("author name is required")
	}
	if strings.TrimSpace(in.Body) == "" {
		return "", apperr.Validation("comment body is required")
	}

	if _, err := s.postRepo.GetByID(in.PostID); err != nil {
		return "", storeErr(err, "post", in.PostID)
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		Author:   in.Author,
		Body:     in.Body,
		Approved: false,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return "", storeErr(err, "comment", comment.ID)
	}
	return comment.ID, nil
}

// ListApprovedForPost returns only approved comments for the post, oldest
// first for natural reading order. This is the only comment-read path on
// the public surface, so unapproved content never leaks.
func (s *CommentService) ListApprovedForPost(postID string) ([]*models.Comment, error) {
	approved := true
	comments, err := s.commentRepo.List(repositories.CommentFilter{
		PostID:   postID,
		Approved: &approved,
	})
	if err != nil {
		return nil, storeErr(err, "comment", "")
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// ListAllForReview returns every comment in any state, newest first, each
// joined with its owning post's title. Backs the moderation queue.
func (s *CommentService) ListAllForReview(credential string) ([]*models.ReviewComment, error) {
	if _, err := s.gate.Authorize(credential); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.List(repositories.CommentFilter{})
	if err != nil {
		return nil, storeErr(err, "comment", "")
	}

	review := make([]*models.ReviewComment, 0, len(comments))
	titles := make(map[string]string)
	for _, c := range comments {
		title, ok := titles[c.PostID]
		if !ok {
			post, err := s.postRepo.GetByID(c.PostID)
			if err == nil {
				title = post.Title
			}
			titles[c.PostID] = title
		}
		review = append(review, &models.ReviewComment{Comment: *c, PostTitle: title})
	}
	return review, nil
}

// Approve makes a comment publicly visible. Approving an already-approved
// comment is a no-op.
func (s *CommentService) Approve(commentID, credential string) error {
	if _, err := s.gate.Authorize(credential); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return storeErr(err, "comment", commentID)
	}
	if comment.Approved {
		return nil
	}

	comment.Approved = true
	if err := s.commentRepo.Update(comment); err != nil {
		return storeErr(err, "comment", commentID)
	}
	return nil
}

// Remove hard-deletes a comment in any state.
func (s *CommentService) Remove(commentID, credential string) error {
	if _, err := s.gate.Authorize(credential); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return storeErr(err, "comment", commentID)
	}
	return nil
}
