package models

// Room is a physical classroom of a school.
type Room struct {
	ID       int64   `db:"id"`
	RoomName *string `db:"room_name"`
	Capacity *int    `db:"capacity"`
	School   *School `db:"-"`
}

// IDRef returns the identifier for use as a foreign key, nil when unset.
func (r *Room) IDRef() *int64 {
	if r == nil {
		return nil
	}
	return idRef(r.ID)
}
