package api

import (
	"encoding/json"
	"net/http"

	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  *services.CommentService
}

func newCommentHandler(comments *services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
	}
}

// commentPayload is the caller-supplied body. User and blog are honored
// when explicitly present and default from the authenticated actor and
// route otherwise.
type commentPayload struct {
	Comment string     `json:"comment"`
	User    *uuid.UUID `json:"user,omitempty"`
	Blog    *uuid.UUID `json:"blog,omitempty"`
}

// getAllComments retrieves every comment, unscoped
// @Summary Get all comments
// @Produce json
// @Router /api/v1/comments [get]
func (h commentHandler) getAllComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := h.comments.GetAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := newCommentViews(comments)
		h.responder.WriteList(w, "comments", views, len(views))
	}
}

// getBlogComments retrieves the comments attached to one blog
// @Summary Get a blog's comments
// @Produce json
// @Param blogId path string true "Blog ID"
// @Router /api/v1/blogs/{blogId}/comments [get]
func (h commentHandler) getBlogComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.responder.URLParamUUID(w, r, "blogId")
		if !ok {
			return
		}

		comments, err := h.comments.GetByBlog(r.Context(), blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := newCommentViews(comments)
		h.responder.WriteList(w, "comments", views, len(views))
	}
}

// getComment retrieves a specific comment by ID
// @Summary Get comment
// @Produce json
// @Param id path string true "Comment ID"
// @Router /api/v1/comments/{id} [get]
func (h commentHandler) getComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		comment, err := h.comments.GetByID(r.Context(), commentID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, "comment", newCommentView(comment))
	}
}

// createComment creates a comment under the route-supplied blog
// @Summary Create comment
// @Accept json
// @Produce json
// @Param blogId path string true "Blog ID"
// @Router /api/v1/blogs/{blogId}/comments [post]
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		blogID, ok := h.responder.URLParamUUID(w, r, "blogId")
		if !ok {
			return
		}

		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.comments.Create(r.Context(), actorID, blogID, services.CommentInput{
			Body:   payload.Comment,
			UserID: payload.User,
			BlogID: payload.Blog,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "comment", newCommentView(comment))
	}
}

// updateComment changes a comment's body after an ownership check
// @Summary Update comment
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Router /api/v1/comments/{id} [patch]
func (h commentHandler) updateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		commentID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.comments.Update(r.Context(), actorID, commentID, payload.Comment)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, "comment", newCommentView(comment))
	}
}

// deleteComment removes a comment after an ownership or moderation check
// @Summary Delete comment
// @Produce json
// @Param id path string true "Comment ID"
// @Router /api/v1/comments/{id} [delete]
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		commentID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		if err := h.comments.Delete(r.Context(), actorID, commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoData(w)
	}
}
