package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/service"
)

// Resources groups the entity services served over REST.
type Resources struct {
	Schools      *service.SchoolService
	Teachers     *service.TeacherService
	Rooms        *service.RoomService
	Semesters    *service.SemesterService
	ClassSchools *service.ClassSchoolService
	Lessons      *service.LessonService
}

// RegisterResources mounts every entity collection on group.
func RegisterResources(group *gin.RouterGroup, res Resources, cfg ResourceConfig) {
	NewResourceHandler[*dto.SchoolDTO](res.Schools, "schools", func() *dto.SchoolDTO { return &dto.SchoolDTO{} }, cfg).Register(group)
	NewResourceHandler[*dto.TeacherDTO](res.Teachers, "teachers", func() *dto.TeacherDTO { return &dto.TeacherDTO{} }, cfg).Register(group)
	NewResourceHandler[*dto.RoomDTO](res.Rooms, "rooms", func() *dto.RoomDTO { return &dto.RoomDTO{} }, cfg).Register(group)
	NewResourceHandler[*dto.SemesterDTO](res.Semesters, "semesters", func() *dto.SemesterDTO { return &dto.SemesterDTO{} }, cfg).Register(group)
	NewResourceHandler[*dto.ClassSchoolDTO](res.ClassSchools, "class-schools", func() *dto.ClassSchoolDTO { return &dto.ClassSchoolDTO{} }, cfg).Register(group)
	NewResourceHandler[*dto.LessonDTO](res.Lessons, "lessons", func() *dto.LessonDTO { return &dto.LessonDTO{} }, cfg).Register(group)
}
