package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

// referenceFilters are the query parameters accepted as equality filters on list and export.
var referenceFilters = []string{"schoolId", "semesterId", "classSchoolId", "teacherId", "roomId"}

// PagingConfig bounds list page sizes.
type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

// parsePageRequest reads page, size, sort and reference filters from the query string.
// page is zero based; sort follows "property[,property...][,asc|desc]" and may repeat.
func parsePageRequest(c *gin.Context, cfg PagingConfig) (models.PageRequest, error) {
	req := models.PageRequest{Size: cfg.DefaultSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid page %q", raw)
		}
		if page > 0 {
			req.Page = page
		}
	}
	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid size %q", raw)
		}
		if size > 0 {
			req.Size = size
		}
	}
	if cfg.MaxSize > 0 && req.Size > cfg.MaxSize {
		req.Size = cfg.MaxSize
	}

	for _, raw := range c.QueryArray("sort") {
		req.Sort = append(req.Sort, parseSort(raw)...)
	}

	for _, name := range referenceFilters {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid %s %q", name, raw)
		}
		if req.Filters == nil {
			req.Filters = make(map[string]int64)
		}
		req.Filters[name] = id
	}

	return req, nil
}

func parseSort(raw string) []models.Order {
	var properties []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			properties = append(properties, part)
		}
	}
	if len(properties) == 0 {
		return nil
	}

	desc := false
	switch strings.ToLower(properties[len(properties)-1]) {
	case "desc":
		desc = true
		properties = properties[:len(properties)-1]
	case "asc":
		properties = properties[:len(properties)-1]
	}

	orders := make([]models.Order, 0, len(properties))
	for _, p := range properties {
		orders = append(orders, models.Order{Property: p, Desc: desc})
	}
	return orders
}

func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
