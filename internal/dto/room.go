package dto

import "fmt"

// RoomDTO is the wire shape of a room.
type RoomDTO struct {
	ID       *int64  `json:"id"`
	RoomName *string `json:"roomName" validate:"omitempty,max=255"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0"`
	SchoolID *int64  `json:"schoolId"`
}

func (d *RoomDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

func (d *RoomDTO) Equal(o *RoomDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

func (d *RoomDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *RoomDTO) String() string {
	return fmt.Sprintf("RoomDTO{id=%s, roomName=%s, capacity=%s, schoolId=%s}",
		fmtID(d.ID), fmtText(d.RoomName), fmtInt(d.Capacity), fmtID(d.SchoolID))
}
