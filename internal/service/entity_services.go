package service

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/mapper"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

type (
	SchoolService      = CRUDService[*models.School, *dto.SchoolDTO]
	TeacherService     = CRUDService[*models.Teacher, *dto.TeacherDTO]
	RoomService        = CRUDService[*models.Room, *dto.RoomDTO]
	SemesterService    = CRUDService[*models.Semester, *dto.SemesterDTO]
	ClassSchoolService = CRUDService[*models.ClassSchool, *dto.ClassSchoolDTO]
	LessonService      = CRUDService[*models.Lesson, *dto.LessonDTO]
)

func NewSchoolService(repo EntityRepository[*models.School], deps CRUDDeps) *SchoolService {
	return NewCRUDService[*models.School, *dto.SchoolDTO]("school", repo, mapper.SchoolMapper{}, deps)
}

func NewTeacherService(repo EntityRepository[*models.Teacher], deps CRUDDeps) *TeacherService {
	return NewCRUDService[*models.Teacher, *dto.TeacherDTO]("teacher", repo, mapper.TeacherMapper{}, deps)
}

func NewRoomService(repo EntityRepository[*models.Room], deps CRUDDeps) *RoomService {
	return NewCRUDService[*models.Room, *dto.RoomDTO]("room", repo, mapper.RoomMapper{}, deps)
}

func NewSemesterService(repo EntityRepository[*models.Semester], deps CRUDDeps) *SemesterService {
	return NewCRUDService[*models.Semester, *dto.SemesterDTO]("semester", repo, mapper.SemesterMapper{}, deps)
}

func NewClassSchoolService(repo EntityRepository[*models.ClassSchool], deps CRUDDeps) *ClassSchoolService {
	return NewCRUDService[*models.ClassSchool, *dto.ClassSchoolDTO]("classSchool", repo, mapper.ClassSchoolMapper{}, deps)
}

func NewLessonService(repo EntityRepository[*models.Lesson], deps CRUDDeps) *LessonService {
	return NewCRUDService[*models.Lesson, *dto.LessonDTO]("lesson", repo, mapper.LessonMapper{}, deps)
}
