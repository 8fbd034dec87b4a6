package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// PageQuery 列表查詢共用的分頁與排序參數
type PageQuery struct {
	Page         int
	ItemsPerPage int
	SortBy       string
	SortOrder    string
}

// PageResult 列表回應的分頁外框
type PageResult struct {
	Data         any   `json:"data"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	CurrentPage  int   `json:"currentPage"`
}

// ExtractPageQuery reads page/itemsPerPage/sortBy/sortOrder query params with
// the defaults the frontend expects.
func ExtractPageQuery(c echo.Context) PageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	itemsPerPage, _ := strconv.Atoi(c.QueryParam("itemsPerPage"))
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}
	if itemsPerPage > 100 {
		itemsPerPage = 100
	}
	return PageQuery{
		Page:         page,
		ItemsPerPage: itemsPerPage,
		SortBy:       c.QueryParam("sortBy"),
		SortOrder:    c.QueryParam("sortOrder"),
	}
}

// Skip returns the number of documents to skip for the current page.
func (q PageQuery) Skip() int64 {
	return int64((q.Page - 1) * q.ItemsPerPage)
}

// Sort builds the mongo sort document, falling back to defaultField.
func (q PageQuery) Sort(defaultField string) bson.D {
	field := q.SortBy
	if field == "" {
		field = defaultField
	}
	order := 1
	if q.SortOrder == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// Result wraps a page of data in the response envelope.
func (q PageQuery) Result(data any, total int64) *PageResult {
	return &PageResult{
		Data:         data,
		TotalItems:   total,
		ItemsPerPage: q.ItemsPerPage,
		CurrentPage:  q.Page,
	}
}
