package utils

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultSort  = "updated_at"
	defaultOrder = "desc"
)

// PaginationParams are the list parameters read from ?page=&limit=&sort=&order=&search=.
type PaginationParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Sort   string `json:"sort"`
	Order  string `json:"order"`
	Search string `json:"search,omitempty"`
}

type PaginationMeta struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	Total        int64 `json:"total"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// Preset fields a list may be sorted by.
var sortableFields = map[string]bool{
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

// GetPaginationParams reads list parameters from the query string. Invalid
// values fall back to their defaults instead of failing the request.
func GetPaginationParams(c *gin.Context) *PaginationParams {
	params := &PaginationParams{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", DefaultPageSize),
		Sort:   c.DefaultQuery("sort", defaultSort),
		Order:  c.DefaultQuery("order", defaultOrder),
		Search: c.Query("search"),
	}
	params.normalize()
	return params
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func (p *PaginationParams) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.Limit < MinPageSize:
		p.Limit = DefaultPageSize
	case p.Limit > MaxPageSize:
		p.Limit = MaxPageSize
	}
	if !sortableFields[p.Sort] {
		p.Sort = defaultSort
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = defaultOrder
	}
}

func (p *PaginationParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// FindOptions applies skip, limit and sort. Ties are broken by name so pages
// stay stable when many presets share a timestamp.
func (p *PaginationParams) FindOptions() *options.FindOptions {
	p.normalize()

	direction := 1
	if p.Order == "desc" {
		direction = -1
	}
	sort := bson.D{{Key: p.Sort, Value: direction}}
	if p.Sort != "name" {
		sort = append(sort, bson.E{Key: "name", Value: 1})
	}

	return options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetSort(sort)
}

// SearchFilter matches Search case-insensitively as a literal substring of any
// of fields.
func (p *PaginationParams) SearchFilter(fields ...string) bson.M {
	if p.Search == "" || len(fields) == 0 {
		return bson.M{}
	}

	pattern := regexp.QuoteMeta(p.Search)
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

func NewPaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}

	meta := &PaginationMeta{
		Page:        params.Page,
		Limit:       params.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
	if meta.HasNext {
		next := params.Page + 1
		meta.NextPage = &next
	}
	if meta.HasPrevious {
		prev := params.Page - 1
		meta.PreviousPage = &prev
	}
	return meta
}
