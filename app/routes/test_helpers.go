package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkpress/app/apperr"
	"inkpress/app/auth"
	"inkpress/app/repositories"
	"inkpress/app/services"
	"inkpress/app/uploads"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "hunter22"
	testJWTSecret     = "0123456789abcdef0123456789abcdef"
)

type testEnv struct {
	router *mux.Router
	token  string
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// fakeGenerate stands in for the AI upstream: deterministic, no network.
func fakeGenerate(ctx context.Context, seed string) (string, error) {
	if strings.TrimSpace(seed) == "" {
		return "", apperr.New(apperr.KindEmptyPrompt, "generation seed is empty")
	}
	return "<p>Generated content about " + seed + "</p>", nil
}

func setupTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	gate := auth.NewGate(testJWTSecret, testAdminEmail, string(hash), time.Hour)

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	store, err := uploads.NewDiskStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	router := SetupRoutes(Deps{
		Gate:       gate,
		Posts:      services.NewPostService(postRepo, gate),
		Comments:   services.NewCommentService(commentRepo, postRepo, gate),
		Dashboard:  services.NewDashboardService(postRepo, commentRepo, gate),
		Generate:   fakeGenerate,
		Uploads:    store,
		UploadsDir: store.Dir(),
	})

	token, err := gate.IssueToken(testAdminEmail)
	require.NoError(t, err)

	return &testEnv{router: router, token: token}
}

// doJSON performs a JSON request against the router; token may be empty.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// addBlog posts a multipart draft creation request and returns the new id.
func (e *testEnv) addBlog(t *testing.T, title, category string, withImage bool) string {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	blogJSON, err := json.Marshal(map[string]string{
		"title":    title,
		"subtitle": "a subtitle",
		"category": category,
		"body":     "",
	})
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("blog", string(blogJSON)))

	if withImage {
		fw, err := mw.CreateFormFile("image", "thumb.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blog/add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", e.token)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
