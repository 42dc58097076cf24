package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const schoolColumns = "id, school_name, address, phone"

var schoolList = listSpec{
	table:   "schools",
	columns: schoolColumns,
	sorts: map[string]string{
		"id":         "id",
		"schoolName": "school_name",
		"address":    "address",
		"phone":      "phone",
	},
}

// SchoolRepository manages persistence for schools. Teachers and rooms are never loaded.
type SchoolRepository struct {
	db *sqlx.DB
}

// NewSchoolRepository constructs a new school repository.
func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// Save inserts the school when it has no identifier and updates it otherwise.
func (r *SchoolRepository) Save(ctx context.Context, school *models.School) (*models.School, error) {
	if school.ID == 0 {
		const query = `INSERT INTO schools (school_name, address, phone) VALUES (:school_name, :address, :phone) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, school)
		if err != nil {
			return nil, fmt.Errorf("create school: %w", err)
		}
		school.ID = id
		return school, nil
	}

	const query = `UPDATE schools SET school_name = :school_name, address = :address, phone = :phone WHERE id = :id`
	if err := updateByID(ctx, r.db, query, school); err != nil {
		return nil, fmt.Errorf("update school: %w", err)
	}
	return school, nil
}

// FindAll returns one page of schools and the total count.
func (r *SchoolRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.School, int, error) {
	var rows []models.School
	total, err := page(ctx, r.db, schoolList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	schools := make([]*models.School, 0, len(rows))
	for i := range rows {
		schools = append(schools, &rows[i])
	}
	return schools, total, nil
}

// FindByID returns a school by ID.
func (r *SchoolRepository) FindByID(ctx context.Context, id int64) (*models.School, error) {
	var school models.School
	if err := r.db.GetContext(ctx, &school, "SELECT "+schoolColumns+" FROM schools WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &school, nil
}

// Delete removes a school record; missing rows are not an error.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "schools", id)
}
