package models

import "time"

// Semester models an academic semester.
type Semester struct {
	ID           int64      `db:"id"`
	SemesterName *string    `db:"semester_name"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	TotalWeek    *int       `db:"total_week"`
}

// IDRef returns the identifier for use as a foreign key, nil when unset.
func (s *Semester) IDRef() *int64 {
	if s == nil {
		return nil
	}
	return idRef(s.ID)
}
