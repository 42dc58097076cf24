package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const classSchoolColumns = "id, class_name, description"

var classSchoolList = listSpec{
	table:   "class_schools",
	columns: classSchoolColumns,
	sorts: map[string]string{
		"id":          "id",
		"className":   "class_name",
		"description": "description",
	},
}

// ClassSchoolRepository manages persistence for classes.
type ClassSchoolRepository struct {
	db *sqlx.DB
}

// NewClassSchoolRepository constructs a new class repository.
func NewClassSchoolRepository(db *sqlx.DB) *ClassSchoolRepository {
	return &ClassSchoolRepository{db: db}
}

// Save inserts the class when it has no identifier and updates it otherwise.
func (r *ClassSchoolRepository) Save(ctx context.Context, class *models.ClassSchool) (*models.ClassSchool, error) {
	if class.ID == 0 {
		const query = `INSERT INTO class_schools (class_name, description) VALUES (:class_name, :description) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, class)
		if err != nil {
			return nil, fmt.Errorf("create class: %w", err)
		}
		class.ID = id
		return class, nil
	}

	const query = `UPDATE class_schools SET class_name = :class_name, description = :description WHERE id = :id`
	if err := updateByID(ctx, r.db, query, class); err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return class, nil
}

// FindAll returns one page of classes and the total count.
func (r *ClassSchoolRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.ClassSchool, int, error) {
	var rows []models.ClassSchool
	total, err := page(ctx, r.db, classSchoolList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	classes := make([]*models.ClassSchool, 0, len(rows))
	for i := range rows {
		classes = append(classes, &rows[i])
	}
	return classes, total, nil
}

// FindByID returns a class record by ID.
func (r *ClassSchoolRepository) FindByID(ctx context.Context, id int64) (*models.ClassSchool, error) {
	var class models.ClassSchool
	if err := r.db.GetContext(ctx, &class, "SELECT "+classSchoolColumns+" FROM class_schools WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &class, nil
}

// Delete removes a class record.
func (r *ClassSchoolRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "class_schools", id)
}
