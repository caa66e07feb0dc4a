package services

import (
	"inkpress/app/models"
	"inkpress/app/repositories"
)

// recentPostCount is how many posts the dashboard shows, newest first.
const recentPostCount = 5

// DashboardService composes store queries into the admin dashboard summary.
// Pure read composition, no caching.
type DashboardService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	gate        Authorizer
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, gate Authorizer) *DashboardService {
	return &DashboardService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		gate:        gate,
	}
}

// Summarize computes total posts, total comments, draft count, and the
// most recent posts. Store failures surface, never get swallowed.
func (s *DashboardService) Summarize(credential string) (*models.DashboardSummary, error) {
	if _, err := s.gate.Authorize(credential); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.Count(repositories.PostFilter{})
	if err != nil {
		return nil, storeErr(err, "post", "")
	}

	comments, err := s.commentRepo.Count(repositories.CommentFilter{})
	if err != nil {
		return nil, storeErr(err, "comment", "")
	}

	unpublished := false
	drafts, err := s.postRepo.Count(repositories.PostFilter{Published: &unpublished})
	if err != nil {
		return nil, storeErr(err, "post", "")
	}

	recent, err := s.postRepo.Recent(recentPostCount)
	if err != nil {
		return nil, storeErr(err, "post", "")
	}

	return &models.DashboardSummary{
		Posts:       posts,
		Comments:    comments,
		Drafts:      drafts,
		RecentPosts: recent,
	}, nil
}
