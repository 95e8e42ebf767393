package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// uploads larger than this are rejected while parsing the form
const maxUploadSize = 32 << 20 // 32MB

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogs     *services.BlogService
	images    *services.ImageService
}

func newBlogHandler(blogs *services.BlogService, images *services.ImageService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogs:     blogs,
		images:    images,
	}
}

// blogPayload is the caller-supplied body for create and update. Nil
// means the field was absent. The image is either an already-processed
// filename (JSON body) or the result of running an uploaded file through
// the image pipeline (multipart body).
type blogPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// decodeBlogPayload reads a multipart form (running any uploaded image
// through the pipeline first) or a plain JSON body. Returns false after
// writing the error response itself.
func (h blogHandler) decodeBlogPayload(w http.ResponseWriter, r *http.Request) (blogPayload, bool) {
	var payload blogPayload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return payload, false
		}
		if values := r.MultipartForm.Value["title"]; len(values) > 0 {
			payload.Title = &values[0]
		}
		if values := r.MultipartForm.Value["description"]; len(values) > 0 {
			payload.Description = &values[0]
		}

		file, _, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			filename, perr := h.images.Process(r.Context(), file)
			if perr != nil {
				h.responder.WriteError(w, perr)
				return payload, false
			}
			payload.Image = &filename
		case !errors.Is(err, http.ErrMissingFile):
			h.responder.WriteError(w, errs.NewMalformedPayloadError("image upload", err))
			return payload, false
		}
		return payload, true
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode blog request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("blog", err))
		return payload, false
	}
	return payload, true
}

// getAllBlogs retrieves all blogs with their authors and comments
// @Summary Get all blogs
// @Produce json
// @Router /api/v1/blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogs.GetAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := newBlogViews(blogs)
		h.responder.WriteList(w, "blogs", views, len(views))
	}
}

// getMyBlogs retrieves the blogs owned by the authenticated actor
// @Summary Get current actor's blogs
// @Produce json
// @Router /api/v1/blogs/getMyBlogs [get]
func (h blogHandler) getMyBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		blogs, err := h.blogs.GetMine(r.Context(), actorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := newBlogViews(blogs)
		h.responder.WriteList(w, "blogs", views, len(views))
	}
}

// getBlog retrieves a specific blog by ID
// @Summary Get blog
// @Produce json
// @Param id path string true "Blog ID"
// @Router /api/v1/blogs/{id} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		blog, err := h.blogs.GetByID(r.Context(), blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, "blog", newBlogView(blog))
	}
}

// createBlog creates a new blog owned by the authenticated actor
// @Summary Create blog
// @Accept mpfd,json
// @Produce json
// @Router /api/v1/blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		payload, ok := h.decodeBlogPayload(w, r)
		if !ok {
			return
		}

		input := services.BlogInput{}
		if payload.Title != nil {
			input.Title = *payload.Title
		}
		if payload.Description != nil {
			input.Description = *payload.Description
		}
		if payload.Image != nil {
			input.Image = *payload.Image
		}

		blog, err := h.blogs.Create(r.Context(), actorID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "blog", newBlogView(blog))
	}
}

// updateBlog updates an existing blog after an ownership check
// @Summary Update blog
// @Accept mpfd,json
// @Produce json
// @Param id path string true "Blog ID"
// @Router /api/v1/blogs/{id} [patch]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		blogID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		payload, ok := h.decodeBlogPayload(w, r)
		if !ok {
			return
		}

		blog, err := h.blogs.Update(r.Context(), actorID, blogID, services.BlogUpdate{
			Title:       payload.Title,
			Description: payload.Description,
			Image:       payload.Image,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, "blog", newBlogView(blog))
	}
}

// deleteBlog deletes a blog and cascades to its comments
// @Summary Delete blog
// @Produce json
// @Param id path string true "Blog ID"
// @Router /api/v1/blogs/{id} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		blogID, ok := h.responder.URLParamUUID(w, r, "id")
		if !ok {
			return
		}

		if err := h.blogs.Delete(r.Context(), actorID, blogID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoData(w)
	}
}
