package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"inkpress/app/apperr"
	"inkpress/app/services"
	"inkpress/app/uploads"

	"github.com/gorilla/mux"
)

// maxUploadBytes caps the in-memory part of a multipart thumbnail upload.
const maxUploadBytes = 10 << 20

// GenerateFunc produces a post body from a seed. Satisfied by
// (*ai.Generator).Generate.
type GenerateFunc func(ctx context.Context, seed string) (string, error)

// BlogController handles the public and author-facing blog endpoints.
type BlogController struct {
	posts     *services.PostService
	comments  *services.CommentService
	generator GenerateFunc
	gate      services.Authorizer
	uploads   uploads.Store
}

// NewBlogController creates a new BlogController
func NewBlogController(posts *services.PostService, comments *services.CommentService, generator GenerateFunc, gate services.Authorizer, store uploads.Store) *BlogController {
	return &BlogController{
		posts:     posts,
		comments:  comments,
		generator: generator,
		gate:      gate,
		uploads:   store,
	}
}

// Add creates a new draft from a multipart form: a "blog" part holding the
// draft JSON and an optional "image" part holding the thumbnail.
func (bc *BlogController) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, apperr.Validation("invalid multipart form"))
		return
	}

	var input services.CreateDraftInput
	if err := json.Unmarshal([]byte(r.FormValue("blog")), &input); err != nil {
		sendError(w, apperr.Validation("invalid blog payload"))
		return
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		url, err := bc.uploads.Save(r.Context(), header.Filename, file)
		if err != nil {
			sendError(w, apperr.Wrap(apperr.KindStoreUnavailable, err, "storing thumbnail"))
			return
		}
		input.Thumbnail = url
	}

	id, err := bc.posts.CreateDraft(input, credential(r))
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "id": id})
}

// All lists published posts, optionally narrowed by ?category= and ?q=.
func (bc *BlogController) All(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.posts.ListPublished(services.ListFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	})
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "blogs": posts})
}

// Get returns a single post by ID, drafts included.
func (bc *BlogController) Get(w http.ResponseWriter, r *http.Request) {
	post, err := bc.posts.GetByID(mux.Vars(r)["blogId"])
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "blog": post})
}

type idRequest struct {
	ID string `json:"id"`
}

// Delete removes a post and all of its comments.
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	if err := bc.posts.DeletePost(req.ID, credential(r)); err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "message": "Blog deleted successfully"})
}

// TogglePublish flips a post between draft and published.
func (bc *BlogController) TogglePublish(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	if err := bc.posts.TogglePublish(req.ID, credential(r)); err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "message": "Blog status updated"})
}

// AddComment submits a reader comment; it stays hidden until approved.
func (bc *BlogController) AddComment(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	id, err := bc.comments.Submit(input)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "id": id, "message": "Comment added for review"})
}

type commentsRequest struct {
	PostID string `json:"postId"`
}

// Comments lists the approved comments for a post, oldest first.
func (bc *BlogController) Comments(w http.ResponseWriter, r *http.Request) {
	var req commentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	comments, err := bc.comments.ListApprovedForPost(req.PostID)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "comments": comments})
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// Generate produces draft body content from a seed, typically the post
// title. Admin-gated; the upstream call aborts if the client disconnects.
func (bc *BlogController) Generate(w http.ResponseWriter, r *http.Request) {
	if _, err := bc.gate.Authorize(credential(r)); err != nil {
		sendError(w, err)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, apperr.Validation("invalid JSON body"))
		return
	}

	content, err := bc.generator(r.Context(), req.Prompt)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, map[string]interface{}{"success": true, "content": content})
}
