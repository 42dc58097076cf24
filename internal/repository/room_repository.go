package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const roomColumns = "id, room_name, capacity, school_id"

var roomList = listSpec{
	table:   "rooms",
	columns: roomColumns,
	sorts: map[string]string{
		"id":       "id",
		"roomName": "room_name",
		"capacity": "capacity",
		"schoolId": "school_id",
	},
	filters: map[string]string{"schoolId": "school_id"},
}

type roomRow struct {
	models.Room
	SchoolID *int64 `db:"school_id"`
}

func (r roomRow) entity() *models.Room {
	room := r.Room
	if r.SchoolID != nil {
		room.School = &models.School{ID: *r.SchoolID}
	}
	return &room
}

// RoomRepository manages persistence for rooms.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository constructs a new room repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Save inserts the room when it has no identifier and updates it otherwise.
func (r *RoomRepository) Save(ctx context.Context, room *models.Room) (*models.Room, error) {
	row := roomRow{Room: *room, SchoolID: room.School.IDRef()}
	if room.ID == 0 {
		const query = `INSERT INTO rooms (room_name, capacity, school_id) VALUES (:room_name, :capacity, :school_id) RETURNING id`
		id, err := insertReturningID(ctx, r.db, query, row)
		if err != nil {
			return nil, fmt.Errorf("create room: %w", err)
		}
		room.ID = id
		return room, nil
	}

	const query = `UPDATE rooms SET room_name = :room_name, capacity = :capacity, school_id = :school_id WHERE id = :id`
	if err := updateByID(ctx, r.db, query, row); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}

// FindAll returns one page of rooms and the total count.
func (r *RoomRepository) FindAll(ctx context.Context, req models.PageRequest) ([]*models.Room, int, error) {
	var rows []roomRow
	total, err := page(ctx, r.db, roomList, req, &rows)
	if err != nil {
		return nil, 0, err
	}
	rooms := make([]*models.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, row.entity())
	}
	return rooms, total, nil
}

// FindByID returns a room by ID.
func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	var row roomRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+roomColumns+" FROM rooms WHERE id = $1", id); err != nil {
		return nil, err
	}
	return row.entity(), nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "rooms", id)
}
