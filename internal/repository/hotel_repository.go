// Package repository contains data access logic separated from HTTP handlers.
// This file holds the hotel repository.  A hotel row embeds its facility and
// image lists as JSON columns; room types are child rows in `room_types`
// ordered by position and are always loaded together with the hotel.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/iliyamo/hotel-booking/internal/model"
)

type HotelRepo struct{ db *sql.DB }

// NewHotelRepo constructs a HotelRepo with the provided DB handle.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

const hotelCols = `id, user_id, name, country, longitude, latitude, description,
	type, max_adult_count, max_child_count, facilities, image_urls,
	star_rating, status, created_at, updated_at`

// Create inserts a hotel with its room types in one transaction.  On
// success the hotel's ID, its room type IDs and the timestamps are filled
// in.  The named return lets the deferred commit report its error.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO hotels
		 (user_id, name, country, longitude, latitude, description, type,
		  max_adult_count, max_child_count, facilities, image_urls, star_rating, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		h.UserID, h.Name, h.Country, h.Location.Longitude, h.Location.Latitude,
		h.Description, h.Type, h.MaxAdultCount, h.MaxChildCount,
		jsonList(h.Facilities), jsonList(h.ImageURLs), h.StarRating, h.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	if err = insertRoomTypes(ctx, tx, h.ID, h.RoomTypes); err != nil {
		return err
	}
	err = tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM hotels WHERE id=?", h.ID).
		Scan(&h.CreatedAt, &h.UpdatedAt)
	return err
}

// GetByID fetches a hotel with its room types.  ErrHotelNotFound is
// returned when no row exists.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+hotelCols+" FROM hotels WHERE id=? LIMIT 1", id)
	h, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if h.RoomTypes, err = r.roomTypesFor(ctx, h.ID); err != nil {
		return nil, err
	}
	return h, nil
}

// ListByOwner returns all hotels listed by one manager, newest first.
func (r *HotelRepo) ListByOwner(ctx context.Context, userID uint64) ([]*model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE user_id=? ORDER BY id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

// Update persists every mutable column of h, including status, and
// replaces its room types, all in one transaction.  Callers decide the
// status they pass in: the manager surface resets edited Available
// listings to Under Maintenance before calling, and the admin
// verification path uses UpdateStatus instead.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`UPDATE hotels
		 SET name=?, country=?, longitude=?, latitude=?, description=?, type=?,
		     max_adult_count=?, max_child_count=?, facilities=?, image_urls=?,
		     star_rating=?, status=?, updated_at=CURRENT_TIMESTAMP
		 WHERE id=?`,
		h.Name, h.Country, h.Location.Longitude, h.Location.Latitude,
		h.Description, h.Type, h.MaxAdultCount, h.MaxChildCount,
		jsonList(h.Facilities), jsonList(h.ImageURLs), h.StarRating, h.Status, h.ID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM room_types WHERE hotel_id=?", h.ID); err != nil {
		return err
	}
	err = insertRoomTypes(ctx, tx, h.ID, h.RoomTypes)
	return err
}

// UpdateStatus sets the availability flag of a hotel.  Existence is
// checked by callers before the write; setting an unchanged value is a
// no-op by design.
func (r *HotelRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE hotels SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	return err
}

// HotelSearchQuery defines filters & pagination for the public browse API.
type HotelSearchQuery struct {
	Country  string
	Type     string
	Name     string
	MinStars int
	Page     int
	PageSize int
}

// Search returns Available hotels matching the query plus the total match
// count for pagination.
func (r *HotelRepo) Search(ctx context.Context, q HotelSearchQuery) ([]*model.Hotel, int64, error) {
	where := []string{"status = ?"}
	args := []any{model.HotelAvailable}

	if q.Country != "" {
		where = append(where, "LOWER(country) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Country)+"%")
	}
	if q.Type != "" {
		where = append(where, "LOWER(type) = ?")
		args = append(args, strings.ToLower(q.Type))
	}
	if q.Name != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Name)+"%")
	}
	if q.MinStars > 0 {
		where = append(where, "star_rating >= ?")
		args = append(args, q.MinStars)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM hotels WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE "+cond+" ORDER BY star_rating DESC, id LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := r.collect(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ---- scanning helpers ----

type rowScanner interface{ Scan(dest ...any) error }

func scanHotel(row rowScanner) (*model.Hotel, error) {
	var (
		h          model.Hotel
		facilities string
		images     string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Country,
		&h.Location.Longitude, &h.Location.Latitude, &h.Description,
		&h.Type, &h.MaxAdultCount, &h.MaxChildCount, &facilities, &images,
		&h.StarRating, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.Facilities = parseList(facilities)
	h.ImageURLs = parseList(images)
	return &h, nil
}

func (r *HotelRepo) collect(ctx context.Context, rows *sql.Rows) ([]*model.Hotel, error) {
	var out []*model.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, h := range out {
		var err error
		if h.RoomTypes, err = r.roomTypesFor(ctx, h.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *HotelRepo) roomTypesFor(ctx context.Context, hotelID uint64) ([]model.RoomType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, hotel_id, type, capacity, price_per_night, image_urls,
		        available_rooms, description, position
		 FROM room_types WHERE hotel_id=? ORDER BY position`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoomType
	for rows.Next() {
		var (
			rt     model.RoomType
			images string
			desc   sql.NullString
		)
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Type, &rt.Capacity,
			&rt.PricePerNight, &images, &rt.AvailableRooms, &desc, &rt.Position); err != nil {
			return nil, err
		}
		rt.ImageURLs = parseList(images)
		rt.Description = desc.String
		out = append(out, rt)
	}
	return out, rows.Err()
}

// GetRoomType fetches a room type belonging to a specific hotel.
// ErrRoomTypeNotFound covers both a missing row and a hotel mismatch.
func (r *HotelRepo) GetRoomType(ctx context.Context, hotelID, roomTypeID uint64) (*model.RoomType, error) {
	var (
		rt     model.RoomType
		images string
		desc   sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, hotel_id, type, capacity, price_per_night, image_urls,
		        available_rooms, description, position
		 FROM room_types WHERE id=? AND hotel_id=? LIMIT 1`, roomTypeID, hotelID).
		Scan(&rt.ID, &rt.HotelID, &rt.Type, &rt.Capacity, &rt.PricePerNight,
			&images, &rt.AvailableRooms, &desc, &rt.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	rt.ImageURLs = parseList(images)
	rt.Description = desc.String
	return &rt, nil
}

func insertRoomTypes(ctx context.Context, tx *sql.Tx, hotelID uint64, rts []model.RoomType) error {
	for i := range rts {
		rt := &rts[i]
		res, err := tx.ExecContext(ctx,
			`INSERT INTO room_types
			 (hotel_id, type, capacity, price_per_night, image_urls, available_rooms, description, position)
			 VALUES (?,?,?,?,?,?,?,?)`,
			hotelID, rt.Type, rt.Capacity, rt.PricePerNight,
			jsonList(rt.ImageURLs), rt.AvailableRooms, rt.Description, i)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		rt.ID = uint64(id)
		rt.HotelID = hotelID
		rt.Position = i
	}
	return nil
}

// jsonList marshals a string slice into the JSON column representation.
// nil encodes as an empty array so reads never see SQL NULL.
func jsonList(ss []string) string {
	if len(ss) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func parseList(s string) []string {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}
