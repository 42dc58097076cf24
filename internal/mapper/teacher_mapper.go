package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// TeacherMapper maps Teacher and TeacherDTO.
type TeacherMapper struct {
	schools SchoolMapper
}

func (m TeacherMapper) ToEntity(d *dto.TeacherDTO) *models.Teacher {
	if d == nil {
		return nil
	}
	return &models.Teacher{
		ID:          toID(d.ID),
		TeacherName: clone(d.TeacherName),
		Email:       clone(d.Email),
		Phone:       clone(d.Phone),
		School:      m.schools.FromID(d.SchoolID),
	}
}

func (TeacherMapper) ToDTO(e *models.Teacher) *dto.TeacherDTO {
	if e == nil {
		return nil
	}
	return &dto.TeacherDTO{
		ID:          fromID(e.ID),
		TeacherName: clone(e.TeacherName),
		Email:       clone(e.Email),
		Phone:       clone(e.Phone),
		SchoolID:    e.School.IDRef(),
	}
}

func (m TeacherMapper) ToDTOs(items []*models.Teacher) []*dto.TeacherDTO {
	out := make([]*dto.TeacherDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

// FromID builds a placeholder teacher carrying only its identifier.
func (TeacherMapper) FromID(id *int64) *models.Teacher {
	if id == nil {
		return nil
	}
	return &models.Teacher{ID: *id}
}

func (TeacherMapper) Columns() []string {
	return []string{"id", "teacherName", "email", "phone", "schoolId"}
}

func (TeacherMapper) Row(d *dto.TeacherDTO) map[string]string {
	return map[string]string{
		"id":          idCell(d.ID),
		"teacherName": textCell(d.TeacherName),
		"email":       textCell(d.Email),
		"phone":       textCell(d.Phone),
		"schoolId":    idCell(d.SchoolID),
	}
}
