package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking/internal/model"
)

type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `id, user_id, hotel_id, room_type_id, adult_count, child_count,
	check_in, check_out, total_cost, status, created_at, updated_at`

// Create inserts a booking and fills in the generated ID and timestamps.
// Referential checks (user, hotel, room type) happen in the handler before
// this call.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if b.Status == "" {
		b.Status = model.BookingPending
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings
		 (user_id, hotel_id, room_type_id, adult_count, child_count, check_in, check_out, total_cost, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.UserID, b.HotelID, b.RoomTypeID, b.AdultCount, b.ChildCount,
		b.CheckIn.UTC(), b.CheckOut.UTC(), b.TotalCost, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM bookings WHERE id=?", b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	var b model.Booking
	err := r.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.UserID, &b.HotelID, &b.RoomTypeID, &b.AdultCount, &b.ChildCount,
			&b.CheckIn, &b.CheckOut, &b.TotalCost, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByUser returns all bookings made by one user, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE user_id=? ORDER BY id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.HotelID, &b.RoomTypeID,
			&b.AdultCount, &b.ChildCount, &b.CheckIn, &b.CheckOut,
			&b.TotalCost, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking to a new lifecycle stage.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	return err
}
