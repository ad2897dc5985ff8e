package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jullianMozo/BlogPostAPI/app/middleware"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
	"github.com/jullianMozo/BlogPostAPI/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts and their comments
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentRequest struct {
	Text string `json:"text"`
}

// Index handles listing all posts, newest first
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post with its comment tree
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post owned by the caller
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		sendMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(principal, req.Title, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Edit handles overwriting a post's title and content
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		sendMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := pc.postService.EditPost(principal, mux.Vars(r)["postId"], req.Title, req.Content); err != nil {
		sendError(w, err)
		return
	}
	sendMessage(w, http.StatusOK, "Post updated successfully")
}

// Delete handles deleting a post and its embedded comment tree
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		sendMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := pc.postService.DeletePost(principal, mux.Vars(r)["postId"]); err != nil {
		sendError(w, err)
		return
	}
	sendMessage(w, http.StatusOK, "Post deleted successfully")
}

// AddComment handles appending a comment to a post
func (pc *PostController) AddComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		sendMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if _, err := pc.postService.AddComment(principal, mux.Vars(r)["postId"], req.Text); err != nil {
		sendError(w, err)
		return
	}
	sendMessage(w, http.StatusOK, "Comment added successfully")
}

// DeleteComment handles removing a comment from a post. The route is
// admin-gated; the operation itself performs no author check.
func (pc *PostController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromCtx(r.Context())
	if !ok {
		sendMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	if err := pc.postService.DeleteComment(principal, vars["postId"], vars["commentId"]); err != nil {
		sendError(w, err)
		return
	}
	sendMessage(w, http.StatusOK, "Comment deleted successfully")
}

// Helpers for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendMessage(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"message": message})
}

// sendError maps an error to its response status: argument errors to
// 400, authorization failures to 403, missing records to 404 and
// everything else, storage failures included, to 500.
func sendError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, repositories.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	sendMessage(w, status, err.Error())
}
