package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const teacherColumns = "id, teacher_name, email, phone, school_id"

var teacherList = listSpec{
	table:   "teachers",
	columns: teacherColumns,
	sorts: map[string]string{
		"id":          "id",
		"teacherName": "teacher_name",
		"email":       "email",
		"phone":       "phone",
		"schoolId":    "school_id",
	},
	filters: map[string]string{"schoolId": "school_id"},
}

type teacherRow struct {
	models.Teacher
	SchoolID *int64 `db:"school_id"`
}

func newTeacherRow(t *models.Teacher) teacherRow {
	return teacherRow{Teacher: *t, SchoolID: t.School.IDRef()}
}

func (r teacherRow) entity() *models.Teacher {
	t := r.Teacher
	if r.SchoolID != nil {
		t.School = &models.School{ID: *r.SchoolID}
	}
	return &t
}

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a new teacher repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Save inserts the teacher when it has no identifier and updates it otherwise.
func (r *TeacherRepository) Save(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	row := newTeacherRow(teacher)
	if teacher.ID == 0 {
		const query = `INSERT INTO teachers (teacher_name, email, phone, school_id) VALUES (:teacher_name, :email, :phone, :school_id) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, row)
		if err != nil {
			return nil, fmt.Errorf("create teacher: %w", err)
		}
		teacher.ID = id
		return teacher, nil
	}

	const query = `UPDATE teachers SET teacher_name = :teacher_name, email = :email, phone = :phone, school_id = :school_id WHERE id = :id`
	if err := updateByID(ctx, r.db, query, row); err != nil {
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	return teacher, nil
}

// FindAll returns one page of teachers and the total count.
func (r *TeacherRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Teacher, int, error) {
	var rows []teacherRow
	total, err := page(ctx, r.db, teacherList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	teachers := make([]*models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, row.entity())
	}
	return teachers, total, nil
}

// FindByID returns a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var row teacherRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+teacherColumns+" FROM teachers WHERE id = $1", id); err != nil {
		return nil, err
	}
	return row.entity(), nil
}

// Delete removes a teacher record.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "teachers", id)
}
