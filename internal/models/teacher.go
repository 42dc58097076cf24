package models

// Teacher represents an instructor attached to a school.
type Teacher struct {
	ID          int64   `db:"id"`
	TeacherName *string `db:"teacher_name"`
	Email       *string `db:"email"`
	Phone       *string `db:"phone"`
	School      *School `db:"-"`
}

// IDRef returns the identifier for use as a foreign key, nil when unset.
func (t *Teacher) IDRef() *int64 {
	if t == nil {
		return nil
	}
	return idRef(t.ID)
}
