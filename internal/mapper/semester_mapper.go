package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// SemesterMapper maps Semester and SemesterDTO.
type SemesterMapper struct{}

func (SemesterMapper) ToEntity(d *dto.SemesterDTO) *models.Semester {
	if d == nil {
		return nil
	}
	return &models.Semester{
		ID:           toID(d.ID),
		SemesterName: clone(d.SemesterName),
		StartDate:    clone(d.StartDate),
		EndDate:      clone(d.EndDate),
		TotalWeek:    clone(d.TotalWeek),
	}
}

func (SemesterMapper) ToDTO(e *models.Semester) *dto.SemesterDTO {
	if e == nil {
		return nil
	}
	return &dto.SemesterDTO{
		ID:           fromID(e.ID),
		SemesterName: clone(e.SemesterName),
		StartDate:    clone(e.StartDate),
		EndDate:      clone(e.EndDate),
		TotalWeek:    clone(e.TotalWeek),
	}
}

func (m SemesterMapper) ToDTOs(items []*models.Semester) []*dto.SemesterDTO {
	out := make([]*dto.SemesterDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

// FromID builds a placeholder semester carrying only its identifier.
func (SemesterMapper) FromID(id *int64) *models.Semester {
	if id == nil {
		return nil
	}
	return &models.Semester{ID: *id}
}

func (SemesterMapper) Columns() []string {
	return []string{"id", "semesterName", "startDate", "endDate", "totalWeek"}
}

func (SemesterMapper) Row(d *dto.SemesterDTO) map[string]string {
	return map[string]string{
		"id":           idCell(d.ID),
		"semesterName": textCell(d.SemesterName),
		"startDate":    timeCell(d.StartDate),
		"endDate":      timeCell(d.EndDate),
		"totalWeek":    intCell(d.TotalWeek),
	}
}
