package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// SchoolMapper maps School and SchoolDTO.
type SchoolMapper struct{}

// ToEntity copies scalar fields; teachers and rooms are left unset.
func (SchoolMapper) ToEntity(d *dto.SchoolDTO) *models.School {
	if d == nil {
		return nil
	}
	return &models.School{
		ID:         toID(d.ID),
		SchoolName: clone(d.SchoolName),
		Address:    clone(d.Address),
		Phone:      clone(d.Phone),
	}
}

func (SchoolMapper) ToDTO(e *models.School) *dto.SchoolDTO {
	if e == nil {
		return nil
	}
	return &dto.SchoolDTO{
		ID:         fromID(e.ID),
		SchoolName: clone(e.SchoolName),
		Address:    clone(e.Address),
		Phone:      clone(e.Phone),
	}
}

func (m SchoolMapper) ToDTOs(items []*models.School) []*dto.SchoolDTO {
	out := make([]*dto.SchoolDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

// FromID builds a placeholder school carrying only its identifier.
func (SchoolMapper) FromID(id *int64) *models.School {
	if id == nil {
		return nil
	}
	return &models.School{ID: *id}
}

func (SchoolMapper) Columns() []string {
	return []string{"id", "schoolName", "address", "phone"}
}

func (SchoolMapper) Row(d *dto.SchoolDTO) map[string]string {
	return map[string]string{
		"id":         idCell(d.ID),
		"schoolName": textCell(d.SchoolName),
		"address":    textCell(d.Address),
		"phone":      textCell(d.Phone),
	}
}
