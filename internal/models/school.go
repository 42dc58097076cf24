package models

// School is a campus owning teachers and rooms.
type School struct {
	ID         int64   `db:"id"`
	SchoolName *string `db:"school_name"`
	Address    *string `db:"address"`
	Phone      *string `db:"phone"`

	// Teachers and Rooms are never loaded with the school; query them by schoolId.
	Teachers []Teacher `db:"-"`
	Rooms    []Room    `db:"-"`
}

// IDRef returns the identifier for use as a foreign key, nil when unset.
func (s *School) IDRef() *int64 {
	if s == nil {
		return nil
	}
	return idRef(s.ID)
}
