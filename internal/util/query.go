package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageQuery holds the standard list parameters: ?limit=10&page=1
// &order=desc&sort=created_at plus free-form filters on the remaining keys.
type PageQuery struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

var pageParams = map[string]bool{
	"limit": true,
	"page":  true,
	"order": true,
	"sort":  true,
}

// ParsePage reads the pagination parameters with the usual defaults.
func ParsePage(c *gin.Context, defaultLimit int) PageQuery {
	q := PageQuery{
		Page:  1,
		Limit: defaultLimit,
		Sort:  "created_at",
		Order: "desc",
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		q.Limit = v
	}
	if v := c.Query("sort"); v != "" {
		q.Sort = v
	}
	if strings.EqualFold(c.Query("order"), "asc") {
		q.Order = "asc"
	}
	return q
}

// Scope applies ordering and offset/limit. The sort key must appear in
// allowed (query name -> column) or ordering falls back to created_at.
func (q PageQuery) Scope(allowed map[string]string) func(*gorm.DB) *gorm.DB {
	col, ok := allowed[q.Sort]
	if !ok {
		col = "created_at"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(fmt.Sprintf("%s %s", col, q.Order)).
			Offset((q.Page - 1) * q.Limit).
			Limit(q.Limit)
	}
}

// FilterScope turns the remaining query parameters into WHERE conditions.
// Numeric values match exactly, date values (YYYY-MM-DD) match the whole
// day, anything else becomes a case-insensitive contains match. Keys not
// present in allowed are ignored, which also keeps column names out of
// caller control.
func FilterScope(c *gin.Context, allowed map[string]string) func(*gorm.DB) *gorm.DB {
	query := c.Request.URL.Query()
	return func(db *gorm.DB) *gorm.DB {
		for key, values := range query {
			if pageParams[key] || len(values) == 0 {
				continue
			}
			col, ok := allowed[key]
			if !ok {
				continue
			}

			// two values make a date range filter
			if len(values) == 2 {
				start, errS := time.Parse("2006-01-02", values[0])
				end, errE := time.Parse("2006-01-02", values[1])
				if errS == nil && errE == nil {
					db = db.Where(fmt.Sprintf("%s >= ? AND %s < ?", col, col),
						start, end.Add(24*time.Hour))
					continue
				}
			}

			value := values[0]
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				db = db.Where(fmt.Sprintf("%s = ?", col), n)
			} else if d, err := time.Parse("2006-01-02", value); err == nil {
				db = db.Where(fmt.Sprintf("%s >= ? AND %s < ?", col, col),
					d, d.Add(24*time.Hour))
			} else {
				db = db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", col),
					"%"+strings.ToLower(value)+"%")
			}
		}
		return db
	}
}
