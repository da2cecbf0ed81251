package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

// In-memory stores exercising the handler logic without a database.

type fakeUserStore struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]*model.User{}}
}

func (s *fakeUserStore) add(u model.User) *model.User {
	if u.ID == 0 {
		s.nextID++
		u.ID = s.nextID
	} else if u.ID > s.nextID {
		s.nextID = u.ID
	}
	cp := u
	s.users[cp.ID] = &cp
	return &cp
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User, password string, cost int) error {
	for _, ex := range s.users {
		if ex.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.Status == "" {
		u.Status = model.UserActive
	}
	s.nextID++
	u.ID = s.nextID
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) Update(_ context.Context, u *model.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, ex := range s.users {
		if ex.Email == u.Email && ex.ID != u.ID {
			return repository.ErrEmailExists
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeHotelStore struct {
	hotels map[uint64]*model.Hotel
	nextID uint64

	statusWrites int
}

func newFakeHotelStore() *fakeHotelStore {
	return &fakeHotelStore{hotels: map[uint64]*model.Hotel{}}
}

func (s *fakeHotelStore) add(h model.Hotel) *model.Hotel {
	if h.ID == 0 {
		s.nextID++
		h.ID = s.nextID
	} else if h.ID > s.nextID {
		s.nextID = h.ID
	}
	cp := h
	s.hotels[cp.ID] = &cp
	return &cp
}

func (s *fakeHotelStore) Create(_ context.Context, h *model.Hotel) error {
	s.nextID++
	h.ID = s.nextID
	for i := range h.RoomTypes {
		h.RoomTypes[i].ID = uint64(i + 1)
		h.RoomTypes[i].HotelID = h.ID
	}
	cp := *h
	s.hotels[h.ID] = &cp
	return nil
}

func (s *fakeHotelStore) GetByID(_ context.Context, id uint64) (*model.Hotel, error) {
	h, ok := s.hotels[id]
	if !ok {
		return nil, repository.ErrHotelNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *fakeHotelStore) ListByOwner(_ context.Context, userID uint64) ([]*model.Hotel, error) {
	var out []*model.Hotel
	for _, h := range s.hotels {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeHotelStore) Update(_ context.Context, h *model.Hotel) error {
	if _, ok := s.hotels[h.ID]; !ok {
		return repository.ErrHotelNotFound
	}
	cp := *h
	s.hotels[h.ID] = &cp
	return nil
}

func (s *fakeHotelStore) UpdateStatus(_ context.Context, id uint64, status string) error {
	h, ok := s.hotels[id]
	if !ok {
		return repository.ErrHotelNotFound
	}
	h.Status = status
	s.statusWrites++
	return nil
}

// Search mirrors the SQL filter semantics: country and name match by
// case-insensitive substring, type by case-insensitive equality.
func (s *fakeHotelStore) Search(_ context.Context, q repository.HotelSearchQuery) ([]*model.Hotel, int64, error) {
	var matches []*model.Hotel
	for _, h := range s.hotels {
		if h.Status != model.HotelAvailable {
			continue
		}
		if q.MinStars > 0 && h.StarRating < q.MinStars {
			continue
		}
		if q.Country != "" && !strings.Contains(strings.ToLower(h.Country), strings.ToLower(q.Country)) {
			continue
		}
		if q.Type != "" && !strings.EqualFold(h.Type, q.Type) {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(q.Name)) {
			continue
		}
		cp := *h
		matches = append(matches, &cp)
	}
	total := int64(len(matches))
	start := (q.Page - 1) * q.PageSize
	if start >= len(matches) {
		return nil, total, nil
	}
	end := start + q.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

func (s *fakeHotelStore) GetRoomType(_ context.Context, hotelID, roomTypeID uint64) (*model.RoomType, error) {
	h, ok := s.hotels[hotelID]
	if !ok {
		return nil, repository.ErrRoomTypeNotFound
	}
	for _, rt := range h.RoomTypes {
		if rt.ID == roomTypeID {
			cp := rt
			return &cp, nil
		}
	}
	return nil, repository.ErrRoomTypeNotFound
}

type fakeBookingStore struct {
	bookings map[uint64]*model.Booking
	nextID   uint64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[uint64]*model.Booking{}}
}

func (s *fakeBookingStore) add(b model.Booking) *model.Booking {
	if b.ID == 0 {
		s.nextID++
		b.ID = s.nextID
	} else if b.ID > s.nextID {
		s.nextID = b.ID
	}
	cp := b
	s.bookings[cp.ID] = &cp
	return &cp
}

func (s *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	s.nextID++
	b.ID = s.nextID
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *fakeBookingStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBookingStore) ListByUser(_ context.Context, userID uint64) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) UpdateStatus(_ context.Context, id uint64, status string) error {
	b, ok := s.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

// ---- request plumbing helpers ----

func newTestCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func itoa(id uint64) string { return strconv.FormatUint(id, 10) }

// asUser mimics the auth middleware's claim injection.
func asUser(c echo.Context, u *model.User) {
	c.Set("user_id", float64(u.ID)) // JWT numbers decode as float64
	c.Set("role", u.Role)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}
