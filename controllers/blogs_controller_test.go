package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"polblog-api/controllers"
	"polblog-api/models"
	"polblog-api/repository"
	"polblog-api/storage"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRepo keeps blogs in memory and mirrors the Mongo repository's
// contract: date-descending listing, not-found for unknown or malformed ids.
type fakeRepo struct {
	blogs []models.Blog
	err   error
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Blog, len(f.blogs))
	copy(out, f.blogs)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (models.Blog, error) {
	if f.err != nil {
		return models.Blog{}, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, repository.ErrBlogNotFound
	}
	for _, b := range f.blogs {
		if b.ID == oid {
			return b, nil
		}
	}
	return models.Blog{}, repository.ErrBlogNotFound
}

func (f *fakeRepo) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if f.err != nil {
		return models.Blog{}, f.err
	}
	blog.ID = primitive.NewObjectID()
	f.blogs = append(f.blogs, blog)
	return blog, nil
}

func newRouter(t *testing.T, repo repository.BlogRepository, uploader storage.Uploader) *mux.Router {
	t.Helper()
	if uploader == nil {
		up, err := storage.NewLocalUploader(t.TempDir(), "http://localhost:5000")
		require.NoError(t, err)
		uploader = up
	}
	router := mux.NewRouter()
	bc := &controllers.BlogController{Repo: repo, Uploader: uploader}
	bc.SetupBlogRoutes(router)
	return router
}

func newCreateRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func blogFields() map[string]string {
	return map[string]string{
		"title":       "Election roundup",
		"description": "Everything that happened this week",
		"category":    "elections",
	}
}

func TestCreateBlogDefaults(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(t, repo, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCreateRequest(t, blogFields(), "", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Nil(t, created.Image)
	assert.WithinDuration(t, time.Now(), created.Date, time.Minute)
}

func TestCreateBlogMissingRequiredField(t *testing.T) {
	for _, field := range []string{"title", "description", "category"} {
		t.Run("missing "+field, func(t *testing.T) {
			repo := &fakeRepo{}
			router := newRouter(t, repo, nil)

			fields := blogFields()
			delete(fields, field)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newCreateRequest(t, fields, "", nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, repo.blogs, "nothing may be persisted on validation failure")
		})
	}
}

func TestCreateBlogInvalidDate(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(t, repo, nil)

	fields := blogFields()
	fields["date"] = "not-a-date"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCreateRequest(t, fields, "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.blogs)
}

func TestGetBlogsOrderedByDateDescending(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(t, repo, nil)

	for i, date := range []string{"2026-03-01", "2026-01-01", "2026-02-01"} {
		fields := blogFields()
		fields["title"] = fields["title"] + " " + date
		fields["date"] = date

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newCreateRequest(t, fields, "", nil))
		require.Equal(t, http.StatusCreated, rec.Code, "create %d", i)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var blogs []models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blogs))
	require.Len(t, blogs, 3)
	assert.True(t, blogs[0].Date.After(blogs[1].Date))
	assert.True(t, blogs[1].Date.After(blogs[2].Date))
}

func TestGetBlogNotFound(t *testing.T) {
	router := newRouter(t, &fakeRepo{}, nil)

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs/"+primitive.NewObjectID().Hex(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blog not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs/not-a-hex-id", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateThenFetchRoundTrip(t *testing.T) {
	router := newRouter(t, &fakeRepo{}, nil)

	fields := blogFields()
	fields["date"] = "2026-05-04T10:30:00Z"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCreateRequest(t, fields, "", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs/"+created.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, fields["title"], fetched.Title)
	assert.Equal(t, fields["description"], fetched.Description)
	assert.Equal(t, fields["category"], fetched.Category)
	assert.True(t, fetched.Date.Equal(created.Date))
	assert.Nil(t, fetched.Image)
}

func TestCreateBlogWithLocalImage(t *testing.T) {
	dir := t.TempDir()
	up, err := storage.NewLocalUploader(dir, "http://localhost:5000")
	require.NoError(t, err)
	repo := &fakeRepo{}
	router := newRouter(t, repo, up)

	content := []byte("fake image bytes")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCreateRequest(t, blogFields(), "cover.jpg", content))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Image)
	assert.True(t, strings.HasPrefix(*created.Image, "http://localhost:5000/uploads/"), *created.Image)

	name := strings.TrimPrefix(*created.Image, "http://localhost:5000/uploads/")
	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestCreateBlogRejectsDisallowedCloudFormat(t *testing.T) {
	up, err := storage.NewCloudinaryUploader("demo", "key", "secret", "blog")
	require.NoError(t, err)
	repo := &fakeRepo{}
	router := newRouter(t, repo, up)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCreateRequest(t, blogFields(), "clip.gif", []byte("gif bytes")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.blogs, "no blog may be created for a rejected upload")
}

func TestGetBlogsStoreFailure(t *testing.T) {
	router := newRouter(t, &fakeRepo{err: repository.ErrNotConnected}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch blogs")
}
