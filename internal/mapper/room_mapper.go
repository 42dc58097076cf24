package mapper

import (
	"github.com/sondong-edu/school-admin-api/internal/dto"
	"github.com/sondong-edu/school-admin-api/internal/models"
)

// RoomMapper maps Room and RoomDTO.
type RoomMapper struct {
	schools SchoolMapper
}

func (m RoomMapper) ToEntity(d *dto.RoomDTO) *models.Room {
	if d == nil {
		return nil
	}
	return &models.Room{
		ID:       toID(d.ID),
		RoomName: clone(d.RoomName),
		Capacity: clone(d.Capacity),
		School:   m.schools.FromID(d.SchoolID),
	}
}

func (RoomMapper) ToDTO(e *models.Room) *dto.RoomDTO {
	if e == nil {
		return nil
	}
	return &dto.RoomDTO{
		ID:       fromID(e.ID),
		RoomName: clone(e.RoomName),
		Capacity: clone(e.Capacity),
		SchoolID: e.School.IDRef(),
	}
}

func (m RoomMapper) ToDTOs(items []*models.Room) []*dto.RoomDTO {
	out := make([]*dto.RoomDTO, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToDTO(item))
	}
	return out
}

func (RoomMapper) FromID(id *int64) *models.Room {
	if id == nil {
		return nil
	}
	return &models.Room{ID: *id}
}

func (RoomMapper) Columns() []string {
	return []string{"id", "roomName", "capacity", "schoolId"}
}

func (RoomMapper) Row(d *dto.RoomDTO) map[string]string {
	return map[string]string{
		"id":       idCell(d.ID),
		"roomName": textCell(d.RoomName),
		"capacity": intCell(d.Capacity),
		"schoolId": idCell(d.SchoolID),
	}
}
