package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/middleware"
	"github.com/sondong-edu/school-admin-api/internal/models"
	"github.com/sondong-edu/school-admin-api/internal/service"
	appErrors "github.com/sondong-edu/school-admin-api/pkg/errors"
	"github.com/sondong-edu/school-admin-api/pkg/export"
	"github.com/sondong-edu/school-admin-api/pkg/response"
)

type lessonServiceMock struct {
	created     *dto.LessonDTO
	updated     *dto.LessonDTO
	createErr   error
	updateErr   error
	listResp    []*dto.LessonDTO
	lastReq     models.PageRequest
	getResp     *dto.LessonDTO
	getHit      bool
	getErr      error
	deletedID   int64
	exportFmt   export.Format
	createCalls int
}

func (m *lessonServiceMock) Entity() string { return "lesson" }

func (m *lessonServiceMock) Create(ctx context.Context, d *dto.LessonDTO) (*dto.LessonDTO, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	id := int64(12)
	d.ID = &id
	m.created = d
	return d, nil
}

func (m *lessonServiceMock) Update(ctx context.Context, d *dto.LessonDTO) (*dto.LessonDTO, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = d
	return d, nil
}

func (m *lessonServiceMock) List(ctx context.Context, req models.PageRequest) ([]*dto.LessonDTO, *models.Pagination, error) {
	m.lastReq = req
	return m.listResp, models.NewPagination(req, 45), nil
}

func (m *lessonServiceMock) Get(ctx context.Context, id int64) (*dto.LessonDTO, bool, error) {
	return m.getResp, m.getHit, m.getErr
}

func (m *lessonServiceMock) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func (m *lessonServiceMock) Export(ctx context.Context, req models.PageRequest, format export.Format) ([]byte, error) {
	m.exportFmt = format
	return []byte("id\n1\n"), nil
}

func newLessonRouter(svc *lessonServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithResponseMeta())
	cfg := ResourceConfig{AppName: "sondongApp", APIPrefix: "/api", Paging: PagingConfig{DefaultSize: 20, MaxSize: 100}}
	NewResourceHandler[*dto.LessonDTO](svc, "lessons", func() *dto.LessonDTO { return &dto.LessonDTO{} }, cfg).Register(r.Group("/api"))
	return r
}

func serve(r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestResourceHandlerCreate(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodPost, "/api/lessons", []byte(`{"lessonName":"Math","dayOfWeek":2,"semesterId":3}`))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/lessons/12", w.Header().Get("Location"))
	assert.Equal(t, "sondongApp.lesson.created", w.Header().Get("X-sondongApp-alert"))
	assert.Equal(t, "12", w.Header().Get("X-sondongApp-params"))
	require.NotNil(t, svc.created)
	assert.Equal(t, int64(3), *svc.created.SemesterID)

	var env struct {
		Data dto.LessonDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(12), *env.Data.ID)
}

func TestResourceHandlerCreateWithIDRejected(t *testing.T) {
	svc := &lessonServiceMock{createErr: appErrors.BadRequestAlert("lesson", appErrors.ErrIDExists, "A new lesson cannot already have an ID")}
	w := serve(newLessonRouter(svc), http.MethodPost, "/api/lessons", []byte(`{"id":5}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.idexists", w.Header().Get("X-sondongApp-error"))
	assert.Equal(t, "lesson", w.Header().Get("X-sondongApp-params"))
}

func TestResourceHandlerCreateMalformedJSON(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodPost, "/api/lessons", []byte(`{"lessonName":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.createCalls)
}

func TestResourceHandlerUpdate(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodPut, "/api/lessons", []byte(`{"id":4,"lessonName":"Algebra"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sondongApp.lesson.updated", w.Header().Get("X-sondongApp-alert"))
	assert.Equal(t, "4", w.Header().Get("X-sondongApp-params"))
	assert.Equal(t, "Algebra", *svc.updated.LessonName)
}

func TestResourceHandlerUpdateWithoutIDCreates(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodPut, "/api/lessons", []byte(`{"lessonName":"Algebra"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.createCalls)
	assert.Nil(t, svc.updated)
}

func TestResourceHandlerUpdateMissingRow(t *testing.T) {
	svc := &lessonServiceMock{updateErr: appErrors.Clone(appErrors.ErrNotFound, "lesson not found")}
	w := serve(newLessonRouter(svc), http.MethodPut, "/api/lessons", []byte(`{"id":99}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestResourceHandlerList(t *testing.T) {
	id := int64(1)
	svc := &lessonServiceMock{listResp: []*dto.LessonDTO{{ID: &id}}}
	w := serve(newLessonRouter(svc), http.MethodGet, "/api/lessons?page=1&size=10&sort=dayOfWeek,desc&sort=id&teacherId=7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "45", w.Header().Get("X-Total-Count"))
	assert.Equal(t,
		`</api/lessons?page=2&size=10>; rel="next",</api/lessons?page=0&size=10>; rel="prev",</api/lessons?page=4&size=10>; rel="last",</api/lessons?page=0&size=10>; rel="first"`,
		w.Header().Get("Link"))

	assert.Equal(t, 1, svc.lastReq.Page)
	assert.Equal(t, 10, svc.lastReq.Size)
	assert.Equal(t, []models.Order{{Property: "dayOfWeek", Desc: true}, {Property: "id"}}, svc.lastReq.Sort)
	assert.Equal(t, map[string]int64{"teacherId": 7}, svc.lastReq.Filters)
}

func TestResourceHandlerListClampsSize(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodGet, "/api/lessons?size=5000", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, svc.lastReq.Size)
}

func TestResourceHandlerListBadFilter(t *testing.T) {
	w := serve(newLessonRouter(&lessonServiceMock{}), http.MethodGet, "/api/lessons?roomId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResourceHandlerGet(t *testing.T) {
	id := int64(8)
	svc := &lessonServiceMock{getResp: &dto.LessonDTO{ID: &id}, getHit: true}
	w := serve(newLessonRouter(svc), http.MethodGet, "/api/lessons/8", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, true, env.Meta["cache_hit"])
}

func TestResourceHandlerGetNotFound(t *testing.T) {
	svc := &lessonServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "lesson not found")}
	w := serve(newLessonRouter(svc), http.MethodGet, "/api/lessons/8", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResourceHandlerGetInvalidID(t *testing.T) {
	w := serve(newLessonRouter(&lessonServiceMock{}), http.MethodGet, "/api/lessons/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResourceHandlerDelete(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodDelete, "/api/lessons/6", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), svc.deletedID)
	assert.Equal(t, "sondongApp.lesson.deleted", w.Header().Get("X-sondongApp-alert"))
	assert.Equal(t, "6", w.Header().Get("X-sondongApp-params"))
	assert.Empty(t, w.Body.String())
}

func TestResourceHandlerExport(t *testing.T) {
	svc := &lessonServiceMock{}
	r := newLessonRouter(svc)

	w := serve(r, http.MethodGet, "/api/lessons/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.FormatXLSX, svc.exportFmt)
	assert.Equal(t, `attachment; filename="lesson.xlsx"`, w.Header().Get("Content-Disposition"))

	w = serve(r, http.MethodGet, "/api/lessons/export?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type insertCountingLessonRepo struct {
	inserts int
	updates int
}

func (r *insertCountingLessonRepo) Save(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	if lesson.ID == 0 {
		r.inserts++
		lesson.ID = 1
		return lesson, nil
	}
	r.updates++
	return lesson, nil
}

func (r *insertCountingLessonRepo) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Lesson, int, error) {
	return nil, 0, nil
}

func (r *insertCountingLessonRepo) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	return &models.Lesson{ID: id}, nil
}

func (r *insertCountingLessonRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestResourceHandlerUpdateZeroIDDoesNotInsert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &insertCountingLessonRepo{}
	r := gin.New()
	cfg := ResourceConfig{AppName: "sondongApp", APIPrefix: "/api", Paging: PagingConfig{DefaultSize: 20, MaxSize: 100}}
	NewResourceHandler[*dto.LessonDTO](service.NewLessonService(repo, service.CRUDDeps{}), "lessons", func() *dto.LessonDTO { return &dto.LessonDTO{} }, cfg).Register(r.Group("/api"))

	w := serve(r, http.MethodPut, "/api/lessons", []byte(`{"id":0,"lessonName":"X"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("X-sondongApp-alert"))
	assert.Zero(t, repo.inserts)
	assert.Zero(t, repo.updates)
}

func TestResourceHandlerListHugePage(t *testing.T) {
	svc := &lessonServiceMock{}
	w := serve(newLessonRouter(svc), http.MethodGet, "/api/lessons?page=9223372036854775807&size=100", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, svc.lastReq.Offset(), 0)
	assert.NotContains(t, w.Header().Get("Link"), `rel="next"`)
}
