package helper

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, query string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := resolveVia(t, "", 15, 100)
		assert.Equal(t, Paging{Page: 1, PerPage: 15, Offset: 0, Limit: 15}, p)
	})

	t.Run("page and per_page applied", func(t *testing.T) {
		p := resolveVia(t, "?page=3&per_page=20", 15, 100)
		assert.Equal(t, 40, p.Offset)
		assert.Equal(t, 20, p.Limit)
		assert.False(t, p.All)
	})

	t.Run("per_page=-1 means all rows", func(t *testing.T) {
		p := resolveVia(t, "?per_page=-1&page=7", 15, 100)
		assert.True(t, p.All)
		assert.Equal(t, -1, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("per_page capped at max", func(t *testing.T) {
		p := resolveVia(t, "?per_page=500", 15, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		p := resolveVia(t, "?page=abc&per_page=xyz", 15, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 15, p.PerPage)
	})
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(45, 2, 15)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = BuildPagination(0, 1, 15)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)

	pg = BuildPagination(46, 4, 15)
	assert.Equal(t, 4, pg.TotalPages)
	assert.False(t, pg.HasNext)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_user_username_key" (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
