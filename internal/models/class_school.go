package models

// ClassSchool represents a class (homeroom group) of students.
type ClassSchool struct {
	ID          int64   `db:"id"`
	ClassName   *string `db:"class_name"`
	Description *string `db:"description"`
}

// IDRef returns the identifier for use as a foreign key, nil when unset.
func (c *ClassSchool) IDRef() *int64 {
	if c == nil {
		return nil
	}
	return idRef(c.ID)
}
