package api

import (
	"encoding/json"
	"net/http"

	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/models"
	"github.com/blognest/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *services.UserService
	tokens    *auth.TokenService
}

func newUserHandler(users *services.UserService, tokens *auth.TokenService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
		tokens:    tokens,
	}
}

type signupPayload struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// issueToken signs a token for the user and attaches it as an HttpOnly
// cookie alongside the JSON response body.
func (h userHandler) issueToken(w http.ResponseWriter, user *models.User) (string, error) {
	token, err := h.tokens.Generate(user.ID.String())
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to issue token", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

// signup registers a new user and logs them in
// @Summary Sign up
// @Accept json
// @Produce json
// @Router /api/v1/users/signup [post]
func (h userHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload signupPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode signup request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("signup", err))
			return
		}

		user, err := h.users.Signup(r.Context(), services.SignupInput{
			FirstName:       payload.FirstName,
			LastName:        payload.LastName,
			Email:           payload.Email,
			Password:        payload.Password,
			PasswordConfirm: payload.PasswordConfirm,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.issueToken(w, user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeJSON(w, http.StatusCreated, map[string]any{
			"status": "success",
			"token":  token,
			"data":   map[string]any{"user": user},
		})
	}
}

// login checks credentials and issues a fresh token
// @Summary Log in
// @Accept json
// @Produce json
// @Router /api/v1/users/login [post]
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}
		if payload.Email == "" || payload.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("please provide email and password"))
			return
		}

		user, err := h.users.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.issueToken(w, user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"token":  token,
			"data":   map[string]any{"user": user},
		})
	}
}

// me returns the authenticated actor's own record
// @Summary Get current user
// @Produce json
// @Router /api/v1/users/me [get]
func (h userHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("you are not logged in"))
			return
		}

		user, err := h.users.GetByID(r.Context(), actorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, http.StatusOK, "user", user)
	}
}
