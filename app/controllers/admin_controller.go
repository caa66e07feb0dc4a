package controllers

import (
	"encoding/json"
	"net/http"

	"inkpress/app/apperr"
	"inkpress/app/auth"
	"inkpress/app/services"
)

// AdminController handles the admin dashboard and moderation endpoints.
type AdminController struct {
	gate      *auth.Gate
	posts     *services.PostService
	comments  *services.CommentService
	dashboard *services.DashboardService
}

// NewAdminController creates a new AdminController
func NewAdminController(gate *auth.Gate, posts *services.PostService, comments *services.CommentService, dashboard *services.DashboardService) *AdminController {
	return &AdminController{
		gate:      gate,
		posts:     posts,
		comments:  comments,
		dashboard: dashboard,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the admin credentials and returns a bearer token.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	token, err := ac.gate.Login(req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "token": token})
}

// Blogs lists every post, drafts included, newest first.
func (ac *AdminController) Blogs(w http.ResponseWriter, r *http.Request) {
	posts, err := ac.posts.ListAll(credential(r))
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "blogs": posts})
}

// Comments returns the moderation queue: every comment in any state,
// joined with its owning post's title, newest first.
func (ac *AdminController) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := ac.comments.ListAllForReview(credential(r))
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "comments": comments})
}

// Dashboard returns the aggregate counts and most recent posts.
func (ac *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := ac.dashboard.Summarize(credential(r))
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "dashboardData": summary})
}

// ApproveComment makes a pending comment publicly visible.
func (ac *AdminController) ApproveComment(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	if err := ac.comments.Approve(req.ID, credential(r)); err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "message": "Comment approved successfully"})
}

// DeleteComment removes a comment in any state.
func (ac *AdminController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	if err := ac.comments.Remove(req.ID, credential(r)); err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "message": "Comment deleted successfully"})
}
