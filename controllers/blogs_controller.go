package controllers

import (
	"errors"
	"net/http"
	"polblog-api/middlewares"
	"polblog-api/models"
	"polblog-api/repository"
	"polblog-api/storage"
	"polblog-api/validation"
	"time"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20 // 10 MB

// BlogController serves the /api/blogs endpoints. The repository and the
// uploader are wired in at startup; no package-level state.
type BlogController struct {
	Repo     repository.BlogRepository
	Uploader storage.Uploader
}

func (bc *BlogController) SetupBlogRoutes(r *mux.Router) {
	blogsRouter := r.PathPrefix("/api/blogs").Subrouter()
	blogsRouter.HandleFunc("", bc.GetBlogs).Methods("GET")
	blogsRouter.HandleFunc("/{id}", bc.GetBlog).Methods("GET")
	blogsRouter.HandleFunc("", bc.CreateBlog).Methods("POST")
}

func (bc *BlogController) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.Repo.ListAll(r.Context())
	if err != nil {
		middlewares.HttpError(w, "Failed to fetch blogs", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, blogs, http.StatusOK)
}

func (bc *BlogController) GetBlog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	blog, err := bc.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			middlewares.HttpError(w, "Blog not found", http.StatusNotFound, err)
			return
		}
		middlewares.HttpError(w, "Failed to fetch blog", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, blog, http.StatusOK)
}

func (bc *BlogController) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		middlewares.HttpError(w, "Invalid multipart payload", http.StatusBadRequest, err)
		return
	}

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		middlewares.HttpError(w, "Invalid date", http.StatusBadRequest, err)
		return
	}

	blog := models.Blog{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Date:        date,
	}

	if err := validation.ValidateBlog(blog); err != nil {
		middlewares.HttpError(w, err.Error(), http.StatusBadRequest, err)
		return
	}

	if file, header, err := r.FormFile("image"); err == nil {
		file.Close()
		url, err := bc.Uploader.Resolve(ctx, header)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedFormat) {
				middlewares.HttpError(w, "Unsupported image format", http.StatusBadRequest, err)
				return
			}
			middlewares.HttpError(w, "Failed to store image", http.StatusInternalServerError, err)
			return
		}
		blog.Image = &url
	} else if !errors.Is(err, http.ErrMissingFile) {
		middlewares.HttpError(w, "Invalid image field", http.StatusBadRequest, err)
		return
	}

	created, err := bc.Repo.Create(ctx, blog)
	if err != nil {
		middlewares.HttpError(w, "Failed to create blog", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, created, http.StatusCreated)
}

// parseDate accepts RFC 3339 or plain yyyy-mm-dd form values and defaults
// to the current time when the field is omitted.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
