package dto

import "fmt"

// LessonDTO is the wire shape of a lesson; related records are referenced by id.
type LessonDTO struct {
	ID            *int64  `json:"id"`
	LessonName    *string `json:"lessonName" validate:"omitempty,max=255"`
	Description   *string `json:"description" validate:"omitempty,max=1024"`
	DayOfWeek     *int    `json:"dayOfWeek" validate:"omitempty,min=1,max=7"`
	StartPeriod   *int    `json:"startPeriod" validate:"omitempty,gte=0"`
	EndPeriod     *int    `json:"endPeriod" validate:"omitempty,gte=0"`
	SemesterID    *int64  `json:"semesterId"`
	ClassSchoolID *int64  `json:"classSchoolId"`
	TeacherID     *int64  `json:"teacherId"`
	RoomID        *int64  `json:"roomId"`
}

// Identifier returns the lesson identifier.
func (d *LessonDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

// Equal compares identifiers only.
func (d *LessonDTO) Equal(o *LessonDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

// Hash derives from the identifier alone.
func (d *LessonDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *LessonDTO) String() string {
	return fmt.Sprintf("LessonDTO{id=%s, lessonName=%s, description=%s, dayOfWeek=%s, startPeriod=%s, endPeriod=%s, semesterId=%s, classSchoolId=%s, teacherId=%s, roomId=%s}",
		fmtID(d.ID), fmtText(d.LessonName), fmtText(d.Description), fmtInt(d.DayOfWeek),
		fmtInt(d.StartPeriod), fmtInt(d.EndPeriod), fmtID(d.SemesterID), fmtID(d.ClassSchoolID),
		fmtID(d.TeacherID), fmtID(d.RoomID))
}
