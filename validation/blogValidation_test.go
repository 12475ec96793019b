package validation

import (
	"polblog-api/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBlog() models.Blog {
	return models.Blog{
		Title:       "Election roundup",
		Description: "Everything that happened this week",
		Category:    "elections",
		Date:        time.Now(),
	}
}

func TestValidateBlog(t *testing.T) {
	t.Run("all required fields present", func(t *testing.T) {
		assert.NoError(t, ValidateBlog(validBlog()))
	})

	t.Run("missing title", func(t *testing.T) {
		blog := validBlog()
		blog.Title = ""
		err := ValidateBlog(blog)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title")
	})

	t.Run("missing description", func(t *testing.T) {
		blog := validBlog()
		blog.Description = ""
		err := ValidateBlog(blog)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Description")
	})

	t.Run("missing category", func(t *testing.T) {
		blog := validBlog()
		blog.Category = ""
		err := ValidateBlog(blog)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Category")
	})

	t.Run("all fields missing reports every error", func(t *testing.T) {
		err := ValidateBlog(models.Blog{})
		assert.Error(t, err)

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Errors, 3)
	})
}
