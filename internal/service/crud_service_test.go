package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
	appErrors "github.com/sondong-edu/school-admin-api/pkg/errors"
	"github.com/sondong-edu/school-admin-api/pkg/export"
)

type mockLessonRepo struct {
	items   map[int64]*models.Lesson
	nextID  int64
	finds   int
	saveErr error
}

func newMockLessonRepo() *mockLessonRepo {
	return &mockLessonRepo{items: make(map[int64]*models.Lesson), nextID: 1}
}

func (m *mockLessonRepo) Save(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if lesson.ID == 0 {
		lesson.ID = m.nextID
		m.nextID++
	} else if _, ok := m.items[lesson.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	cp := *lesson
	m.items[lesson.ID] = &cp
	return lesson, nil
}

func (m *mockLessonRepo) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Lesson, int, error) {
	ids := make([]int64, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	start := req.Offset()
	if start > len(ids) {
		start = len(ids)
	}
	end := start + req.Size
	if end > len(ids) {
		end = len(ids)
	}
	out := make([]*models.Lesson, 0, end-start)
	for _, id := range ids[start:end] {
		cp := *m.items[id]
		out = append(out, &cp)
	}
	return out, len(ids), nil
}

func (m *mockLessonRepo) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	m.finds++
	if lesson, ok := m.items[id]; ok {
		cp := *lesson
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockLessonRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memoryCacheRepo struct {
	values map[string][]byte
}

func (r *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := r.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = raw
	return nil
}

func (r *memoryCacheRepo) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func idPtr(v int64) *int64    { return &v }

func newLessonService(repo *mockLessonRepo, cache *CacheService) *LessonService {
	return NewLessonService(repo, CRUDDeps{Logger: zap.NewNop(), Cache: cache, Metrics: NewMetricsService()})
}

func TestCRUDServiceCreate(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)

	saved, err := svc.Create(context.Background(), &dto.LessonDTO{LessonName: strPtr("Math"), DayOfWeek: intPtr(2), SemesterID: idPtr(4)})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	assert.Equal(t, int64(1), *saved.ID)
	assert.Equal(t, int64(4), *saved.SemesterID)
	assert.Equal(t, int64(4), repo.items[1].Semester.ID)
}

func TestCRUDServiceCreateRejectsID(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)

	_, err := svc.Create(context.Background(), &dto.LessonDTO{ID: idPtr(9)})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrIDExists, appErr.Code)
	assert.Equal(t, "lesson", appErr.Entity)
	assert.Equal(t, "A new lesson cannot already have an ID", appErr.Message)
	assert.Empty(t, repo.items)
}

func TestCRUDServiceCreateValidation(t *testing.T) {
	svc := newLessonService(newMockLessonRepo(), nil)

	_, err := svc.Create(context.Background(), &dto.LessonDTO{DayOfWeek: intPtr(8)})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCRUDServiceUpdate(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.LessonDTO{LessonName: strPtr("Math")})
	require.NoError(t, err)

	created.LessonName = strPtr("Algebra")
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", *updated.LessonName)
	assert.Equal(t, "Algebra", *repo.items[*created.ID].LessonName)
}

func TestCRUDServiceUpdateMissingRow(t *testing.T) {
	svc := newLessonService(newMockLessonRepo(), nil)

	_, err := svc.Update(context.Background(), &dto.LessonDTO{ID: idPtr(77)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestCRUDServiceUpdateWithoutID(t *testing.T) {
	svc := newLessonService(newMockLessonRepo(), nil)

	_, err := svc.Update(context.Background(), &dto.LessonDTO{})
	require.Error(t, err)
	assert.Equal(t, "idnull", appErrors.FromError(err).Code)
}

func TestCRUDServiceGetNotFound(t *testing.T) {
	svc := newLessonService(newMockLessonRepo(), nil)

	_, _, err := svc.Get(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestCRUDServiceInternalError(t *testing.T) {
	repo := newMockLessonRepo()
	repo.saveErr = sql.ErrConnDone
	svc := newLessonService(repo, nil)

	_, err := svc.Create(context.Background(), &dto.LessonDTO{})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestCRUDServiceCacheHitSkipsRepository(t *testing.T) {
	repo := newMockLessonRepo()
	cacheRepo := &memoryCacheRepo{values: map[string][]byte{}}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := newLessonService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.LessonDTO{LessonName: strPtr("Math")})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.values, "entity:lesson:1")

	got, hit, err := svc.Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Math", *got.LessonName)
	assert.Zero(t, repo.finds)

	require.NoError(t, svc.Delete(ctx, *created.ID))
	assert.NotContains(t, cacheRepo.values, "entity:lesson:1")

	_, hit, err = svc.Get(ctx, *created.ID)
	require.Error(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, repo.finds)
}

func TestCRUDServiceDeleteIsUnconditional(t *testing.T) {
	svc := newLessonService(newMockLessonRepo(), nil)
	assert.NoError(t, svc.Delete(context.Background(), 404))
}

func TestCRUDServiceListPagination(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, &dto.LessonDTO{})
		require.NoError(t, err)
	}

	items, pagination, err := svc.List(ctx, models.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), *items[0].ID)
	assert.Equal(t, 5, pagination.TotalCount)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext())
}

func TestCRUDServiceExportWalksPages(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)
	ctx := context.Background()
	for i := 0; i < exportPageSize+3; i++ {
		_, err := svc.Create(ctx, &dto.LessonDTO{LessonName: strPtr("L")})
		require.NoError(t, err)
	}

	payload, err := svc.Export(ctx, models.PageRequest{}, export.FormatCSV)
	require.NoError(t, err)
	lines := 0
	for _, b := range payload {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, exportPageSize+3+1, lines)
}

func TestCRUDServiceUpdateNonPositiveIDDoesNotInsert(t *testing.T) {
	repo := newMockLessonRepo()
	svc := newLessonService(repo, nil)

	for _, id := range []int64{0, -3} {
		_, err := svc.Update(context.Background(), &dto.LessonDTO{ID: idPtr(id), LessonName: strPtr("X")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	}
	assert.Empty(t, repo.items)
	assert.Equal(t, int64(1), repo.nextID)
}
