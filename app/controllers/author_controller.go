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

// authorCreateRequiredFields is the ordered required-field checklist
// for author creation.
var authorCreateRequiredFields = []string{"firstName", "lastName", "userName"}

// AuthorController handles HTTP requests for authors
type AuthorController struct {
	authorService *services.AuthorService
	logger        zerolog.Logger
}

// NewAuthorController creates a new AuthorController
func NewAuthorController(authorService *services.AuthorService) *AuthorController {
	return &AuthorController{
		authorService: authorService,
		logger:        log.With().Str("controller", "authors").Logger(),
	}
}

// Index handles listing all authors
func (ac *AuthorController) Index(w http.ResponseWriter, r *http.Request) {
	authors, err := ac.authorService.ListAuthors()
	if err != nil {
		ac.serverError(w, "list authors", err)
		return
	}

	views := make([]models.AuthorView, 0, len(authors))
	for _, a := range authors {
		views = append(views, models.NewAuthorView(a))
	}

	sendJSON(w, http.StatusOK, views)
}

// Create handles creating a new author
func (ac *AuthorController) Create(w http.ResponseWriter, r *http.Request) {
	body, err := validation.DecodeObject(r.Body)
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := validation.RequireFields(body, authorCreateRequiredFields); err != nil {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var author models.Author
	if err := decodeFields(body, map[string]interface{}{
		"firstName": &author.FirstName,
		"lastName":  &author.LastName,
		"userName":  &author.UserName,
	}); err != nil {
		sendMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := ac.authorService.CreateAuthor(&author); err != nil {
		if errors.Is(err, services.ErrInvalidPayload) {
			sendMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		ac.serverError(w, "create author", err)
		return
	}

	sendJSON(w, http.StatusCreated, models.NewAuthorCreatedView(&author))
}

// Edit handles updating an existing author
func (ac *AuthorController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid author id")
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

	author, err := ac.authorService.UpdateAuthor(id, body)
	if errors.Is(err, repositories.ErrNotFound) {
		sendMessage(w, http.StatusNotFound, "Author not found")
		return
	}
	if errors.Is(err, services.ErrUserNameTaken) {
		sendMessage(w, http.StatusBadRequest, "User name already taken")
		return
	}
	if errors.Is(err, services.ErrInvalidPayload) {
		sendMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		ac.serverError(w, "update author", err)
		return
	}

	sendJSON(w, http.StatusOK, models.NewAuthorView(author))
}

// Delete handles deleting an author and, first, every post referencing
// it
func (ac *AuthorController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid author id")
		return
	}

	if err := ac.authorService.DeleteAuthor(id); err != nil {
		ac.serverError(w, "delete author", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthorController) serverError(w http.ResponseWriter, operation string, err error) {
	ac.logger.Error().Err(err).Str("operation", operation).Msg("persistence failure")
	sendMessage(w, http.StatusInternalServerError, "Internal server error")
}
