package dto

import (
	"fmt"
	"time"
)

// SemesterDTO is the wire shape of a semester.
type SemesterDTO struct {
	ID           *int64     `json:"id"`
	SemesterName *string    `json:"semesterName" validate:"omitempty,max=255"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	TotalWeek    *int       `json:"totalWeek" validate:"omitempty,gte=0"`
}

// Identifier returns the semester identifier.
func (d *SemesterDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

// Equal reports whether both semesters are persisted under the same identifier.
func (d *SemesterDTO) Equal(o *SemesterDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

// Hash derives from the identifier alone.
func (d *SemesterDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *SemesterDTO) String() string {
	return fmt.Sprintf("SemesterDTO{id=%s, semesterName=%s, startDate=%s, endDate=%s, totalWeek=%s}",
		fmtID(d.ID), fmtText(d.SemesterName), fmtTime(d.StartDate), fmtTime(d.EndDate), fmtInt(d.TotalWeek))
}
