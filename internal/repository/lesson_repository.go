package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const lessonColumns = "id, lesson_name, description, day_of_week, start_period, end_period, semester_id, class_school_id, teacher_id, room_id"

var lessonList = listSpec{
	table:   "lessons",
	columns: lessonColumns,
	sorts: map[string]string{
		"id":            "id",
		"lessonName":    "lesson_name",
		"dayOfWeek":     "day_of_week",
		"startPeriod":   "start_period",
		"endPeriod":     "end_period",
		"semesterId":    "semester_id",
		"classSchoolId": "class_school_id",
		"teacherId":     "teacher_id",
		"roomId":        "room_id",
	},
	filters: map[string]string{
		"semesterId":    "semester_id",
		"classSchoolId": "class_school_id",
		"teacherId":     "teacher_id",
		"roomId":        "room_id",
	},
}

type lessonRow struct {
	models.Lesson
	SemesterID    *int64 `db:"semester_id"`
	ClassSchoolID *int64 `db:"class_school_id"`
	TeacherID     *int64 `db:"teacher_id"`
	RoomID        *int64 `db:"room_id"`
}

func newLessonRow(l *models.Lesson) lessonRow {
	return lessonRow{
		Lesson:        *l,
		SemesterID:    l.Semester.IDRef(),
		ClassSchoolID: l.ClassSchool.IDRef(),
		TeacherID:     l.Teacher.IDRef(),
		RoomID:        l.Room.IDRef(),
	}
}

func (r lessonRow) entity() *models.Lesson {
	l := r.Lesson
	if r.SemesterID != nil {
		l.Semester = &models.Semester{ID: *r.SemesterID}
	}
	if r.ClassSchoolID != nil {
		l.ClassSchool = &models.ClassSchool{ID: *r.ClassSchoolID}
	}
	if r.TeacherID != nil {
		l.Teacher = &models.Teacher{ID: *r.TeacherID}
	}
	if r.RoomID != nil {
		l.Room = &models.Room{ID: *r.RoomID}
	}
	return &l
}

// LessonRepository manages persistence for lessons.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs a new lesson repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// Save inserts the lesson when it has no identifier and updates it otherwise.
func (r *LessonRepository) Save(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	row := newLessonRow(lesson)
	if lesson.ID == 0 {
		const query = `INSERT INTO lessons (lesson_name, description, day_of_week, start_period, end_period, semester_id, class_school_id, teacher_id, room_id)
VALUES (:lesson_name, :description, :day_of_week, :start_period, :end_period, :semester_id, :class_school_id, :teacher_id, :room_id) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, row)
		if err != nil {
			return nil, fmt.Errorf("create lesson: %w", err)
		}
		lesson.ID = id
		return lesson, nil
	}

	const query = `UPDATE lessons SET lesson_name = :lesson_name, description = :description, day_of_week = :day_of_week,
start_period = :start_period, end_period = :end_period, semester_id = :semester_id, class_school_id = :class_school_id,
teacher_id = :teacher_id, room_id = :room_id WHERE id = :id`
	if err := updateByID(ctx, r.db, query, row); err != nil {
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	return lesson, nil
}

// FindAll returns one page of lessons and the total count.
func (r *LessonRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Lesson, int, error) {
	var rows []lessonRow
	total, err := page(ctx, r.db, lessonList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	lessons := make([]*models.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, row.entity())
	}
	return lessons, total, nil
}

// FindByID returns a lesson by ID.
func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	var row lessonRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+lessonColumns+" FROM lessons WHERE id = $1", id); err != nil {
		return nil, err
	}
	return row.entity(), nil
}

// Delete removes a lesson record.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "lessons", id)
}
