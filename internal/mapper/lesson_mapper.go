package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// LessonMapper maps Lesson and LessonDTO, resolving references through the related mappers.
type LessonMapper struct {
	semesters SemesterMapper
	classes   ClassSchoolMapper
	teachers  TeacherMapper
	rooms     RoomMapper
}

func (m LessonMapper) ToEntity(d *dto.LessonDTO) *models.Lesson {
	if d == nil {
		return nil
	}
	return &models.Lesson{
		ID:          toID(d.ID),
		LessonName:  clone(d.LessonName),
		Description: clone(d.Description),
		DayOfWeek:   clone(d.DayOfWeek),
		StartPeriod: clone(d.StartPeriod),
		EndPeriod:   clone(d.EndPeriod),
		Semester:    m.semesters.FromID(d.SemesterID),
		ClassSchool: m.classes.FromID(d.ClassSchoolID),
		Teacher:     m.teachers.FromID(d.TeacherID),
		Room:        m.rooms.FromID(d.RoomID),
	}
}

func (LessonMapper) ToDTO(e *models.Lesson) *dto.LessonDTO {
	if e == nil {
		return nil
	}
	return &dto.LessonDTO{
		ID:            fromID(e.ID),
		LessonName:    clone(e.LessonName),
		Description:   clone(e.Description),
		DayOfWeek:     clone(e.DayOfWeek),
		StartPeriod:   clone(e.StartPeriod),
		EndPeriod:     clone(e.EndPeriod),
		SemesterID:    e.Semester.IDRef(),
		ClassSchoolID: e.ClassSchool.IDRef(),
		TeacherID:     e.Teacher.IDRef(),
		RoomID:        e.Room.IDRef(),
	}
}

func (m LessonMapper) ToDTOs(items []*models.Lesson) []*dto.LessonDTO {
	out := make([]*dto.LessonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

func (LessonMapper) FromID(id *int64) *models.Lesson {
	if id == nil {
		return nil
	}
	return &models.Lesson{ID: *id}
}

func (LessonMapper) Columns() []string {
	return []string{"id", "lessonName", "description", "dayOfWeek", "startPeriod", "endPeriod", "semesterId", "classSchoolId", "teacherId", "roomId"}
}

func (LessonMapper) Row(d *dto.LessonDTO) map[string]string {
	return map[string]string{
		"id":            idCell(d.ID),
		"lessonName":    textCell(d.LessonName),
		"description":   textCell(d.Description),
		"dayOfWeek":     intCell(d.DayOfWeek),
		"startPeriod":   intCell(d.StartPeriod),
		"endPeriod":     intCell(d.EndPeriod),
		"semesterId":    idCell(d.SemesterID),
		"classSchoolId": idCell(d.ClassSchoolID),
		"teacherId":     idCell(d.TeacherID),
		"roomId":        idCell(d.RoomID),
	}
}
