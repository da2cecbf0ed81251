package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/model"
)

const validHotel = `{
	"name": "Riverside Inn",
	"country": "Vietnam",
	"location": {"longitude": 106.7, "latitude": 10.77},
	"description": "Quiet rooms by the river",
	"type": "boutique",
	"maxAdultCount": 2,
	"maxChildCount": 1,
	"facilities": ["wifi", "parking"],
	"imageUrls": ["https://img.example.com/1.jpg"],
	"starRating": 4,
	"roomTypes": [
		{"type": "double", "capacity": 2, "pricePerNight": 75, "availableRooms": 10}
	]
}`

func hotelHandlerSetup() (*fakeUserStore, *fakeHotelStore, *HotelHandler, *model.User) {
	users := newFakeUserStore()
	hotels := newFakeHotelStore()
	mgr := users.add(model.User{Email: "mgr@example.com", Role: model.RoleHotelManager, Status: model.UserActive})
	return users, hotels, NewHotelHandler(users, hotels), mgr
}

func TestCreateHotelStartsUnderMaintenance(t *testing.T) {
	_, hotels, h, mgr := hotelHandlerSetup()

	c, rec := newTestCtx(t, http.MethodPost, "/v1/my-hotels", validHotel)
	asUser(c, mgr)
	require.NoError(t, h.Create(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	stored, err := hotels.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.HotelUnderMaintenance, stored.Status)
	assert.Equal(t, mgr.ID, stored.UserID)
	require.Len(t, stored.RoomTypes, 1)
	assert.Equal(t, "double", stored.RoomTypes[0].Type)
}

func TestCreateHotelValidation(t *testing.T) {
	_, hotels, h, mgr := hotelHandlerSetup()

	c, rec := newTestCtx(t, http.MethodPost, "/v1/my-hotels", `{"name":"X"}`)
	asUser(c, mgr)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, hotels.hotels)
}

func TestCreateHotelGhostOwner(t *testing.T) {
	_, _, h, _ := hotelHandlerSetup()

	ghost := &model.User{ID: 999, Role: model.RoleHotelManager}
	c, rec := newTestCtx(t, http.MethodPost, "/v1/my-hotels", validHotel)
	asUser(c, ghost)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMineRejectsForeignHotel(t *testing.T) {
	users, hotels, h, mgr := hotelHandlerSetup()
	other := users.add(model.User{Email: "other@example.com", Role: model.RoleHotelManager})
	theirs := hotels.add(model.Hotel{UserID: other.ID, Name: "Theirs", Status: model.HotelAvailable})

	c, rec := newTestCtx(t, http.MethodGet, "/v1/my-hotels/"+itoa(theirs.ID), "")
	c.SetParamNames("id")
	c.SetParamValues(itoa(theirs.ID))
	asUser(c, mgr)
	require.NoError(t, h.GetMine(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCanReadAnyHotel(t *testing.T) {
	users, hotels, h, mgr := hotelHandlerSetup()
	admin := users.add(model.User{Email: "admin@example.com", Role: model.RoleAdmin})
	theirs := hotels.add(model.Hotel{UserID: mgr.ID, Name: "Riverside", Status: model.HotelUnderMaintenance})

	c, rec := newTestCtx(t, http.MethodGet, "/v1/my-hotels/"+itoa(theirs.ID), "")
	c.SetParamNames("id")
	c.SetParamValues(itoa(theirs.ID))
	asUser(c, admin)
	require.NoError(t, h.GetMine(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Riverside")
}

func TestUpdateMineResetsVerification(t *testing.T) {
	_, hotels, h, mgr := hotelHandlerSetup()
	mine := hotels.add(model.Hotel{UserID: mgr.ID, Name: "Riverside Inn", Status: model.HotelAvailable})

	c, rec := newTestCtx(t, http.MethodPut, "/v1/my-hotels/"+itoa(mine.ID), validHotel)
	c.SetParamNames("id")
	c.SetParamValues(itoa(mine.ID))
	asUser(c, mgr)
	require.NoError(t, h.UpdateMine(c))

	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := hotels.GetByID(context.Background(), mine.ID)
	require.NoError(t, err)
	assert.Equal(t, model.HotelUnderMaintenance, stored.Status, "edited listing needs re-verification")
	assert.Zero(t, hotels.statusWrites,
		"the reset must ride the field update, not a separate status write")
}

func TestListMineOnlyReturnsOwn(t *testing.T) {
	users, hotels, h, mgr := hotelHandlerSetup()
	other := users.add(model.User{Email: "other@example.com", Role: model.RoleHotelManager})
	hotels.add(model.Hotel{UserID: mgr.ID, Name: "Mine"})
	hotels.add(model.Hotel{UserID: other.ID, Name: "Theirs"})

	c, rec := newTestCtx(t, http.MethodGet, "/v1/my-hotels", "")
	asUser(c, mgr)
	require.NoError(t, h.ListMine(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mine")
	assert.NotContains(t, rec.Body.String(), "Theirs")
}
