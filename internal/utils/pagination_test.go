package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"ysphere-server/internal/utils"
)

func pageQueryFrom(t *testing.T, rawQuery string) utils.PageQuery {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return utils.ExtractPageQuery(e.NewContext(req, rec))
}

func TestExtractPageQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := pageQueryFrom(t, "")
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.ItemsPerPage)
	})

	t.Run("explicit values", func(t *testing.T) {
		q := pageQueryFrom(t, "page=3&itemsPerPage=25&sortBy=userId&sortOrder=desc")
		assert.Equal(t, 3, q.Page)
		assert.Equal(t, 25, q.ItemsPerPage)
		assert.Equal(t, "userId", q.SortBy)
		assert.Equal(t, "desc", q.SortOrder)
	})

	t.Run("page size is capped", func(t *testing.T) {
		q := pageQueryFrom(t, "itemsPerPage=5000")
		assert.Equal(t, 100, q.ItemsPerPage)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		q := pageQueryFrom(t, "page=-2&itemsPerPage=abc")
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 10, q.ItemsPerPage)
	})
}

func TestPageQuerySkipAndSort(t *testing.T) {
	q := utils.PageQuery{Page: 3, ItemsPerPage: 20, SortBy: "name", SortOrder: "desc"}

	assert.Equal(t, int64(40), q.Skip())
	assert.Equal(t, bson.D{{Key: "name", Value: -1}}, q.Sort("createdAt"))

	q.SortBy = ""
	q.SortOrder = ""
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, q.Sort("createdAt"))
}

func TestPageResult(t *testing.T) {
	q := utils.PageQuery{Page: 2, ItemsPerPage: 10}
	result := q.Result([]string{"a", "b"}, 42)

	assert.Equal(t, int64(42), result.TotalItems)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 10, result.ItemsPerPage)
	assert.Equal(t, []string{"a", "b"}, result.Data)
}
