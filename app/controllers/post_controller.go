package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/validation"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// postCreateRequiredFields is the ordered required-field checklist for
// post creation.
var postCreateRequiredFields = []string{"title", "content", "author_id"}

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
		logger:      log.With().Str("controller", "posts").Logger(),
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.serverError(w, "list posts", err)
		return
	}

	items := make([]models.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, models.NewPostListItem(p.Post, p.Author))
	}

	sendJSON(w, http.StatusOK, items)
}

// Show handles fetching a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	p, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		pc.serverError(w, "get post", err)
		return
	}

	sendJSON(w, http.StatusOK, models.NewPostView(p.Post, p.Author))
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	body, err := validation.DecodeObject(r.Body)
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := validation.RequireFields(body, postCreateRequiredFields); err != nil {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var post models.Post
	if err := decodeFields(body, map[string]interface{}{
		"title":     &post.Title,
		"content":   &post.Content,
		"author_id": &post.AuthorID,
	}); err != nil {
		sendMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	author, err := pc.postService.CreatePost(&post)
	if errors.Is(err, services.ErrAuthorNotFound) {
		sendMessage(w, http.StatusBadRequest, "Author not found")
		return
	}
	if errors.Is(err, services.ErrInvalidPayload) {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		pc.serverError(w, "create post", err)
		return
	}

	sendJSON(w, http.StatusCreated, models.NewPostView(&post, author))
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	body, err := validation.DecodeObject(r.Body)
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := validation.MatchUpdateID(id, body); err != nil {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(id, body)
	if errors.Is(err, repositories.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if errors.Is(err, services.ErrInvalidPayload) {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		pc.serverError(w, "update post", err)
		return
	}

	sendJSON(w, http.StatusOK, models.NewPostUpdatedView(post))
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.serverError(w, "delete post", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (pc *PostController) serverError(w http.ResponseWriter, operation string, err error) {
	pc.logger.Error().Err(err).Str("operation", operation).Msg("persistence failure")
	sendMessage(w, http.StatusInternalServerError, "Internal server error")
}
