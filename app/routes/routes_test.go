package routes

import (
	"net/http"
	"testing"

	"inkpress/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// token works against a gated endpoint
	rec = env.doJSON(t, http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

// Scenario: create a draft, publish it, and see it appear publicly.
func TestDraftPublishLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	id := env.addBlog(t, "Intro", models.CategoryStartup, false)

	// starts as a draft, so the public listing is empty
	rec := env.doJSON(t, http.MethodGet, "/api/blog/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["blogs"])

	// but the draft is fetchable by id
	rec = env.doJSON(t, http.MethodGet, "/api/blog/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	blog := decodeBody(t, rec)["blog"].(map[string]interface{})
	assert.Equal(t, false, blog["published"])

	// publish and verify it shows up
	rec = env.doJSON(t, http.MethodPost, "/api/blog/toggle-publish", env.token, map[string]string{"id": id})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/blog/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	blogs := decodeBody(t, rec)["blogs"].([]interface{})
	require.Len(t, blogs, 1)
	assert.Equal(t, "Intro", blogs[0].(map[string]interface{})["title"])
}

func TestAddBlogStoresThumbnail(t *testing.T) {
	env := setupTestEnv(t)

	id := env.addBlog(t, "With Image", models.CategoryTechnology, true)

	rec := env.doJSON(t, http.MethodGet, "/api/blog/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	blog := decodeBody(t, rec)["blog"].(map[string]interface{})
	thumb, _ := blog["thumbnail"].(string)
	assert.Contains(t, thumb, "/uploads/")
}

func TestTogglePublishRejectsForgedToken(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/blog/toggle-publish", "bogus", map[string]string{"id": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteUnknownBlog(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/blog/delete", env.token, map[string]string{"id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchFiltersPublishedPosts(t *testing.T) {
	env := setupTestEnv(t)

	seedID := env.addBlog(t, "Raising a Seed Round", models.CategoryStartup, false)
	financeID := env.addBlog(t, "Budgeting Basics", models.CategoryFinance, false)
	for _, id := range []string{seedID, financeID} {
		rec := env.doJSON(t, http.MethodPost, "/api/blog/toggle-publish", env.token, map[string]string{"id": id})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.doJSON(t, http.MethodGet, "/api/blog/all?q=seed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	blogs := decodeBody(t, rec)["blogs"].([]interface{})
	require.Len(t, blogs, 1)
	assert.Equal(t, "Raising a Seed Round", blogs[0].(map[string]interface{})["title"])

	rec = env.doJSON(t, http.MethodGet, "/api/blog/all?category=Finance", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	blogs = decodeBody(t, rec)["blogs"].([]interface{})
	require.Len(t, blogs, 1)
}

// Scenario: a comment is invisible until approved.
func TestCommentModerationFlow(t *testing.T) {
	env := setupTestEnv(t)

	postID := env.addBlog(t, "A Post", models.CategoryLifestyle, false)

	// anonymous submission, no token
	rec := env.doJSON(t, http.MethodPost, "/api/blog/add-comment", "", map[string]string{
		"postId": postID,
		"author": "Ana",
		"body":   "Nice!",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	commentID := decodeBody(t, rec)["id"].(string)
	require.NotEmpty(t, commentID)

	// not yet visible publicly
	rec = env.doJSON(t, http.MethodPost, "/api/blog/comments", "", map[string]string{"postId": postID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["comments"])

	// visible in the moderation queue with the post title joined
	rec = env.doJSON(t, http.MethodGet, "/api/admin/comments", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	queue := decodeBody(t, rec)["comments"].([]interface{})
	require.Len(t, queue, 1)
	assert.Equal(t, "A Post", queue[0].(map[string]interface{})["postTitle"])

	// approve, then it is publicly visible
	rec = env.doJSON(t, http.MethodPost, "/api/admin/approve-comment", env.token, map[string]string{"id": commentID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/blog/comments", "", map[string]string{"postId": postID})
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decodeBody(t, rec)["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, "Ana", comments[0].(map[string]interface{})["author"])
}

func TestCommentSubmitValidation(t *testing.T) {
	env := setupTestEnv(t)
	postID := env.addBlog(t, "A Post", models.CategoryLifestyle, false)

	rec := env.doJSON(t, http.MethodPost, "/api/blog/add-comment", "", map[string]string{
		"postId": postID,
		"author": "",
		"body":   "Nice!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/blog/add-comment", "", map[string]string{
		"postId": "missing",
		"author": "Ana",
		"body":   "Nice!",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModerationEndpointsGated(t *testing.T) {
	env := setupTestEnv(t)

	gated := []struct {
		method, path string
		payload      interface{}
	}{
		{http.MethodGet, "/api/admin/blogs", nil},
		{http.MethodGet, "/api/admin/comments", nil},
		{http.MethodGet, "/api/admin/dashboard", nil},
		{http.MethodPost, "/api/admin/approve-comment", map[string]string{"id": "x"}},
		{http.MethodPost, "/api/admin/delete-comment", map[string]string{"id": "x"}},
		{http.MethodPost, "/api/blog/delete", map[string]string{"id": "x"}},
		{http.MethodPost, "/api/blog/toggle-publish", map[string]string{"id": "x"}},
		{http.MethodPost, "/api/blog/generate", map[string]string{"prompt": "x"}},
	}
	for _, g := range gated {
		rec := env.doJSON(t, g.method, g.path, "", g.payload)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", g.method, g.path)
	}
}

// Scenario: deleting a post removes its comments from every surface.
func TestDeletePostCascade(t *testing.T) {
	env := setupTestEnv(t)

	postID := env.addBlog(t, "Doomed", models.CategoryStartup, false)
	for i := 0; i < 3; i++ {
		rec := env.doJSON(t, http.MethodPost, "/api/blog/add-comment", "", map[string]string{
			"postId": postID,
			"author": "Ana",
			"body":   "Nice!",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		commentID := decodeBody(t, rec)["id"].(string)
		rec = env.doJSON(t, http.MethodPost, "/api/admin/approve-comment", env.token, map[string]string{"id": commentID})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.doJSON(t, http.MethodGet, "/api/admin/dashboard", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	before := decodeBody(t, rec)["dashboardData"].(map[string]interface{})
	require.EqualValues(t, 3, before["comments"])

	rec = env.doJSON(t, http.MethodPost, "/api/blog/delete", env.token, map[string]string{"id": postID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/admin/comments", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["comments"])

	rec = env.doJSON(t, http.MethodGet, "/api/admin/dashboard", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	after := decodeBody(t, rec)["dashboardData"].(map[string]interface{})
	assert.EqualValues(t, 0, after["comments"])
	assert.EqualValues(t, 0, after["posts"])
}

func TestDashboardCounts(t *testing.T) {
	env := setupTestEnv(t)

	ids := []string{
		env.addBlog(t, "One", models.CategoryStartup, false),
		env.addBlog(t, "Two", models.CategoryFinance, false),
		env.addBlog(t, "Three", models.CategoryLifestyle, false),
	}
	rec := env.doJSON(t, http.MethodPost, "/api/blog/toggle-publish", env.token, map[string]string{"id": ids[0]})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/admin/dashboard", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["dashboardData"].(map[string]interface{})
	assert.EqualValues(t, 3, data["posts"])
	assert.EqualValues(t, 2, data["drafts"])
	assert.Len(t, data["recentPosts"].([]interface{}), 3)
}

func TestGenerateEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/blog/generate", env.token, map[string]string{"prompt": "Why startups fail"})
	require.Equal(t, http.StatusOK, rec.Code)
	content := decodeBody(t, rec)["content"].(string)
	assert.Contains(t, content, "Why startups fail")
}

func TestGenerateEmptyPrompt(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/blog/generate", env.token, map[string]string{"prompt": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "empty_prompt", decodeBody(t, rec)["kind"])
}

func TestGetUnknownBlog(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/api/blog/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
