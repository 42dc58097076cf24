package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const semesterColumns = "id, semester_name, start_date, end_date, total_week"

var semesterList = listSpec{
	table:   "semesters",
	columns: semesterColumns,
	sorts: map[string]string{
		"id":           "id",
		"semesterName": "semester_name",
		"startDate":    "start_date",
		"endDate":      "end_date",
		"totalWeek":    "total_week",
	},
}

// SemesterRepository manages persistence for semesters.
type SemesterRepository struct {
	db *sqlx.DB
}

// NewSemesterRepository constructs a new semester repository.
func NewSemesterRepository(db *sqlx.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

// Save inserts the semester when it has no identifier and updates it otherwise.
func (r *SemesterRepository) Save(ctx context.Context, semester *models.Semester) (*models.Semester, error) {
	if semester.ID == 0 {
		const query = `INSERT INTO semesters (semester_name, start_date, end_date, total_week) VALUES (:semester_name, :start_date, :end_date, :total_week) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, semester)
		if err != nil {
			return nil, fmt.Errorf("create semester: %w", err)
		}
		semester.ID = id
		return semester, nil
	}

	const query = `UPDATE semesters SET semester_name = :semester_name, start_date = :start_date, end_date = :end_date, total_week = :total_week WHERE id = :id`
	if err := updateByID(ctx, r.db, query, semester); err != nil {
		return nil, fmt.Errorf("update semester: %w", err)
	}
	return semester, nil
}

// FindAll returns one page of semesters and the total count.
func (r *SemesterRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Semester, int, error) {
	var rows []models.Semester
	total, err := page(ctx, r.db, semesterList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	semesters := make([]*models.Semester, 0, len(rows))
	for i := range rows {
		semesters = append(semesters, &rows[i])
	}
	return semesters, total, nil
}

// FindByID returns a semester by ID.
func (r *SemesterRepository) FindByID(ctx context.Context, id int64) (*models.Semester, error) {
	var semester models.Semester
	if err := r.db.GetContext(ctx, &semester, "SELECT "+semesterColumns+" FROM semesters WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &semester, nil
}

// Delete removes a semester record. Lessons referencing it keep a null semester.
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "semesters", id)
}
