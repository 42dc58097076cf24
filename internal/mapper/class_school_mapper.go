package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// ClassSchoolMapper maps ClassSchool and ClassSchoolDTO.
type ClassSchoolMapper struct{}

func (ClassSchoolMapper) ToEntity(d *dto.ClassSchoolDTO) *models.ClassSchool {
	if d == nil {
		return nil
	}
	return &models.ClassSchool{
		ID:          toID(d.ID),
		ClassName:   clone(d.ClassName),
		Description: clone(d.Description),
	}
}

func (ClassSchoolMapper) ToDTO(e *models.ClassSchool) *dto.ClassSchoolDTO {
	if e == nil {
		return nil
	}
	return &dto.ClassSchoolDTO{
		ID:          fromID(e.ID),
		ClassName:   clone(e.ClassName),
		Description: clone(e.Description),
	}
}

func (m ClassSchoolMapper) ToDTOs(items []*models.ClassSchool) []*dto.ClassSchoolDTO {
	out := make([]*dto.ClassSchoolDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

func (ClassSchoolMapper) FromID(id *int64) *models.ClassSchool {
	if id == nil {
		return nil
	}
	return &models.ClassSchool{ID: *id}
}

func (ClassSchoolMapper) Columns() []string {
	return []string{"id", "className", "description"}
}

func (ClassSchoolMapper) Row(d *dto.ClassSchoolDTO) map[string]string {
	return map[string]string{
		"id":          idCell(d.ID),
		"className":   textCell(d.ClassName),
		"description": textCell(d.Description),
	}
}
