package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sondong-edu/school-admin-api/internal/middleware"
	"github.com/sondong-edu/school-admin-api/internal/models"
	"github.com/sondong-edu/school-admin-api/internal/service"
	appErrors "github.com/sondong-edu/school-admin-api/pkg/errors"
	"github.com/sondong-edu/school-admin-api/pkg/export"
	"github.com/sondong-edu/school-admin-api/pkg/response"
)

type resourceService[D service.EntityDTO] interface {
	Entity() string
	Create(ctx context.Context, d D) (D, error)
	Update(ctx context.Context, d D) (D, error)
	List(ctx context.Context, req models.PageRequest) ([]D, *models.Pagination, error)
	Get(ctx context.Context, id int64) (D, bool, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, req models.PageRequest, format export.Format) ([]byte, error)
}

// ResourceConfig carries the settings shared by every resource handler.
type ResourceConfig struct {
	AppName   string
	APIPrefix string
	Paging    PagingConfig
}

// ResourceHandler exposes the REST endpoints of one entity collection.
type ResourceHandler[D service.EntityDTO] struct {
	service  resourceService[D]
	newDTO   func() D
	app      string
	path     string
	basePath string
	paging   PagingConfig
}

// NewResourceHandler constructs a handler serving cfg.APIPrefix + "/" + path.
func NewResourceHandler[D service.EntityDTO](svc resourceService[D], path string, newDTO func() D, cfg ResourceConfig) *ResourceHandler[D] {
	return &ResourceHandler[D]{
		service:  svc,
		newDTO:   newDTO,
		app:      cfg.AppName,
		path:     path,
		basePath: cfg.APIPrefix + "/" + path,
		paging:   cfg.Paging,
	}
}

func (h *ResourceHandler[D]) fail(c *gin.Context, err error) {
	response.Error(c, h.app, err)
}

func (h *ResourceHandler[D]) badRequest(c *gin.Context, err error, message string) {
	h.fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, message))
}

// Create stores a new entity and answers 201 with its Location.
func (h *ResourceHandler[D]) Create(c *gin.Context) {
	d := h.newDTO()
	if err := c.ShouldBindJSON(d); err != nil {
		h.badRequest(c, err, "invalid payload")
		return
	}
	h.create(c, d)
}

func (h *ResourceHandler[D]) create(c *gin.Context, d D) {
	saved, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		h.fail(c, err)
		return
	}
	id := formatID(saved.Identifier())
	response.EntityCreated(c, h.app, h.service.Entity(), id)
	response.Created(c, h.basePath+"/"+id, saved)
}

// Update overwrites an existing entity. A body without id is created instead.
func (h *ResourceHandler[D]) Update(c *gin.Context) {
	d := h.newDTO()
	if err := c.ShouldBindJSON(d); err != nil {
		h.badRequest(c, err, "invalid payload")
		return
	}
	if d.Identifier() == nil {
		h.create(c, d)
		return
	}
	saved, err := h.service.Update(c.Request.Context(), d)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.EntityUpdated(c, h.app, h.service.Entity(), formatID(saved.Identifier()))
	response.JSON(c, http.StatusOK, saved, nil)
}

// List returns one page of entities with X-Total-Count and Link headers.
func (h *ResourceHandler[D]) List(c *gin.Context) {
	req, err := parsePageRequest(c, h.paging)
	if err != nil {
		h.badRequest(c, err, err.Error())
		return
	}
	items, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.PaginationHeaders(c, h.basePath, pagination)
	response.JSON(c, http.StatusOK, items, pagination)
}

// Get returns one entity, or an empty 404 when it does not exist.
func (h *ResourceHandler[D]) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.badRequest(c, err, err.Error())
		return
	}
	d, hit, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if appErrors.FromError(err).Status == http.StatusNotFound {
			response.NotFound(c)
			return
		}
		h.fail(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, d, nil, middleware.ExtractMeta(c))
}

// Delete removes an entity and answers 200 with a deletion alert.
func (h *ResourceHandler[D]) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.badRequest(c, err, err.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.EntityDeleted(c, h.app, h.service.Entity(), strconv.FormatInt(id, 10))
	response.OK(c)
}

// Export streams every matching entity as a csv, pdf or xlsx attachment.
func (h *ResourceHandler[D]) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		h.badRequest(c, err, err.Error())
		return
	}
	req, err := parsePageRequest(c, h.paging)
	if err != nil {
		h.badRequest(c, err, err.Error())
		return
	}
	payload, err := h.service.Export(c.Request.Context(), req, format)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, h.service.Entity(), format))
	c.Data(http.StatusOK, format.ContentType(), payload)
}

// Register mounts the collection routes under group.
func (h *ResourceHandler[D]) Register(group *gin.RouterGroup) {
	collection := "/" + h.path
	group.POST(collection, h.Create)
	group.PUT(collection, h.Update)
	group.GET(collection, h.List)
	group.GET(collection+"/export", h.Export)
	group.GET(collection+"/:id", h.Get)
	group.DELETE(collection+"/:id", h.Delete)
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
