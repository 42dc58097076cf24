package dto

import "fmt"

// TeacherDTO is the wire shape of a teacher; the school is referenced by id.
type TeacherDTO struct {
	ID          *int64  `json:"id"`
	TeacherName *string `json:"teacherName" validate:"omitempty,max=255"`
	Email       *string `json:"email" validate:"omitempty,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	SchoolID    *int64  `json:"schoolId"`
}

// Identifier returns the teacher identifier.
func (d *TeacherDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

// Equal compares identifiers only.
func (d *TeacherDTO) Equal(o *TeacherDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

// Hash derives from the identifier alone.
func (d *TeacherDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *TeacherDTO) String() string {
	return fmt.Sprintf("TeacherDTO{id=%s, teacherName=%s, email=%s, phone=%s, schoolId=%s}",
		fmtID(d.ID), fmtText(d.TeacherName), fmtText(d.Email), fmtText(d.Phone), fmtID(d.SchoolID))
}
