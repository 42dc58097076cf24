package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
	appErrors "github.com/sondong-edu/school-admin-api/pkg/errors"
	"github.com/sondong-edu/school-admin-api/pkg/export"
)

// EntityRepository is the persistence contract shared by every entity.
// FindByID returns sql.ErrNoRows when the row is missing and so does Save on an update.
type EntityRepository[E any] interface {
	Save(ctx context.Context, entity E) (E, error)
	FindAll(ctx context.Context, req models.PageRequest) ([]E, int, error)
	FindByID(ctx context.Context, id int64) (E, error)
	Delete(ctx context.Context, id int64) error
}

// EntityMapper converts between an entity and its DTO and renders export rows.
type EntityMapper[E any, D any] interface {
	ToEntity(d D) E
	ToDTO(e E) D
	ToDTOs(items []E) []D
	Columns() []string
	Row(d D) map[string]string
}

// EntityDTO is satisfied by the pointer DTO types.
type EntityDTO interface {
	dto.Identified
	fmt.Stringer
}

// CRUDDeps groups the collaborators shared by every entity service.
type CRUDDeps struct {
	Validator *validator.Validate
	Logger    *zap.Logger
	Cache     *CacheService
	Metrics   *MetricsService
	Exporter  *ExportService
	CacheTTL  time.Duration
}

// CRUDService implements save, update, list, get and delete for one entity.
type CRUDService[E any, D EntityDTO] struct {
	entity    string
	label     string
	repo      EntityRepository[E]
	mapper    EntityMapper[E, D]
	validator *validator.Validate
	logger    *zap.Logger
	cache     *CacheService
	metrics   *MetricsService
	exporter  *ExportService
	cacheTTL  time.Duration
}

// NewCRUDService builds the service for entity, a lower camel case name such as "classSchool".
func NewCRUDService[E any, D EntityDTO](entity string, repo EntityRepository[E], mapper EntityMapper[E, D], deps CRUDDeps) *CRUDService[E, D] {
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Exporter == nil {
		deps.Exporter = NewExportService(deps.Logger)
	}
	return &CRUDService[E, D]{
		entity:    entity,
		label:     strings.ToUpper(entity[:1]) + entity[1:],
		repo:      repo,
		mapper:    mapper,
		validator: deps.Validator,
		logger:    deps.Logger.With(zap.String("entity", entity)),
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		exporter:  deps.Exporter,
		cacheTTL:  deps.CacheTTL,
	}
}

// Entity returns the entity name used in alerts and cache keys.
func (s *CRUDService[E, D]) Entity() string {
	return s.entity
}

// Create persists a new entity. A DTO that already carries an id is rejected.
func (s *CRUDService[E, D]) Create(ctx context.Context, d D) (D, error) {
	s.logger.Debug(fmt.Sprintf("REST request to save %s : %s", s.label, d))
	var zero D
	if d.Identifier() != nil {
		return zero, appErrors.BadRequestAlert(s.entity, appErrors.ErrIDExists, fmt.Sprintf("A new %s cannot already have an ID", s.entity))
	}
	saved, err := s.save(ctx, d, "create")
	if err != nil {
		return zero, err
	}
	s.metrics.CountMutation(s.entity, "create")
	return saved, nil
}

// Update overwrites an existing entity. A missing row yields NOT_FOUND.
func (s *CRUDService[E, D]) Update(ctx context.Context, d D) (D, error) {
	s.logger.Debug(fmt.Sprintf("REST request to update %s : %s", s.label, d))
	var zero D
	id := d.Identifier()
	if id == nil {
		return zero, appErrors.BadRequestAlert(s.entity, "idnull", "Invalid id")
	}
	// Stored ids start at 1; Save would treat zero as a new row.
	if *id <= 0 {
		return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.entity))
	}
	saved, err := s.save(ctx, d, "update")
	if err != nil {
		return zero, err
	}
	s.metrics.CountMutation(s.entity, "update")
	return saved, nil
}

func (s *CRUDService[E, D]) save(ctx context.Context, d D, operation string) (D, error) {
	var zero D
	if err := s.validator.Struct(d); err != nil {
		return zero, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", s.entity))
	}

	start := time.Now()
	entity, err := s.repo.Save(ctx, s.mapper.ToEntity(d))
	s.metrics.ObserveDBQuery(s.entity, operation, time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.entity))
		}
		return zero, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to %s %s", operation, s.entity))
	}

	saved := s.mapper.ToDTO(entity)
	if id := saved.Identifier(); id != nil {
		_ = s.cache.Set(ctx, EntityKey(s.entity, *id), saved, s.cacheTTL)
	}
	return saved, nil
}

// List returns one page of DTOs with its pagination metadata.
func (s *CRUDService[E, D]) List(ctx context.Context, req models.PageRequest) ([]D, *models.Pagination, error) {
	s.logger.Debug(fmt.Sprintf("REST request to get all %ss", s.label), zap.Int("page", req.Page), zap.Int("size", req.Size))
	start := time.Now()
	items, total, err := s.repo.FindAll(ctx, req)
	s.metrics.ObserveDBQuery(s.entity, "list", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to list %s", s.entity))
	}
	return s.mapper.ToDTOs(items), models.NewPagination(req, total), nil
}

// Get returns the DTO for id and whether it was served from cache.
func (s *CRUDService[E, D]) Get(ctx context.Context, id int64) (D, bool, error) {
	s.logger.Debug(fmt.Sprintf("REST request to get %s : %d", s.label, id))
	key := EntityKey(s.entity, id)

	var cached D
	if hit, _ := s.cache.Get(ctx, key, &cached); hit && cached.Identifier() != nil {
		return cached, true, nil
	}

	var zero D
	start := time.Now()
	entity, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveDBQuery(s.entity, "get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.entity))
		}
		return zero, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to load %s", s.entity))
	}

	d := s.mapper.ToDTO(entity)
	_ = s.cache.Set(ctx, key, d, s.cacheTTL)
	return d, false, nil
}

// Delete removes the entity; deleting a missing id succeeds.
func (s *CRUDService[E, D]) Delete(ctx context.Context, id int64) error {
	s.logger.Debug(fmt.Sprintf("REST request to delete %s : %d", s.label, id))
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery(s.entity, "delete", time.Since(start))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to delete %s", s.entity))
	}
	_ = s.cache.Invalidate(ctx, EntityKey(s.entity, id))
	s.metrics.CountMutation(s.entity, "delete")
	return nil
}

// Export renders every row matching req's filters and sort in the given format.
func (s *CRUDService[E, D]) Export(ctx context.Context, req models.PageRequest, format export.Format) ([]byte, error) {
	data := export.Dataset{Title: s.entity, Headers: s.mapper.Columns()}
	req.Size = exportPageSize
	for req.Page = 0; ; req.Page++ {
		items, pagination, err := s.List(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			data.Rows = append(data.Rows, s.mapper.Row(item))
		}
		if !pagination.HasNext() {
			break
		}
	}

	payload, err := s.exporter.Render(format, data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to export %s", s.entity))
	}
	return payload, nil
}
