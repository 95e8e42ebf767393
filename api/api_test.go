package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/database/mock"
	"github.com/blognest/backend/models"
	"github.com/blognest/backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv bundles a router wired onto in-memory stores with the fixtures
// the handler tests need.
type testEnv struct {
	router   *chi.Mux
	tokens   *auth.TokenService
	users    *mock.UserStore
	blogs    *mock.BlogStore
	comments *mock.CommentStore
	uploads  *memoryStore
}

// memoryStore keeps processed uploads in a map so multipart tests can
// assert on what the image pipeline produced.
type memoryStore struct {
	saved map[string][]byte
}

func (s *memoryStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[name] = data
	return "/uploads/" + name, nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := mock.NewUserStore()
	comments := mock.NewCommentStore(users, nil)
	blogs := mock.NewBlogStore(users, comments)
	comments.AttachBlogs(blogs)

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars", time.Hour)
	require.NoError(t, err)

	uploads := &memoryStore{}
	images := services.NewImageService(uploads)

	perms := services.NewPermissionService(blogs, comments)
	handlers := &routeHandlers{
		userHandler:    newUserHandler(services.NewUserService(users), tokens),
		blogHandler:    newBlogHandler(services.NewBlogService(blogs, comments, perms), images),
		commentHandler: newCommentHandler(services.NewCommentService(comments, perms)),
	}

	router := chi.NewRouter()
	setupRoutes(router, handlers, newAuthMiddleware(tokens), "")

	return &testEnv{
		router:   router,
		tokens:   tokens,
		users:    users,
		blogs:    blogs,
		comments: comments,
		uploads:  uploads,
	}
}

func (e *testEnv) addUser(t *testing.T, firstName string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     firstName + "@example.com",
		Password:  "hash",
	}
	require.NoError(t, e.users.Add(context.Background(), user))
	return user
}

func (e *testEnv) addBlog(t *testing.T, authorID uuid.UUID) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		Title:       "a title",
		Description: "a description",
		Image:       "blog-1-1.jpeg",
		AuthorID:    authorID,
	}
	require.NoError(t, e.blogs.Add(context.Background(), blog))
	return blog
}

func (e *testEnv) addComment(t *testing.T, userID, blogID uuid.UUID) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Body:   "a comment",
		UserID: userID,
		BlogID: blogID,
	}
	require.NoError(t, e.comments.Add(context.Background(), comment))
	return comment
}

func (e *testEnv) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := e.tokens.Generate(userID.String())
	require.NoError(t, err)
	return token
}

// do runs a request through the router. A non-empty token is attached as
// a bearer header.
func (e *testEnv) do(t *testing.T, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, method, path, token, bytes.NewReader(data))
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// dataField digs data.<resource> out of a success envelope.
func dataField(t *testing.T, rec *httptest.ResponseRecorder, resource string) map[string]any {
	t.Helper()
	body := decodeBody(t, rec)
	require.Equal(t, "success", body["status"], "body: %s", rec.Body.String())
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data missing: %s", rec.Body.String())
	value, ok := data[resource].(map[string]any)
	require.True(t, ok, "data.%s missing: %s", resource, rec.Body.String())
	return value
}
