package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// A stub driver whose transactions always fail on commit.  It verifies the
// transactional write paths report the commit error instead of success.

var errCommitFailed = errors.New("commit failed")

func init() {
	sql.Register("failcommit", failCommitDriver{})
}

type failCommitDriver struct{}

func (failCommitDriver) Open(string) (driver.Conn, error) { return &failCommitConn{}, nil }

type failCommitConn struct{}

func (*failCommitConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (*failCommitConn) Close() error              { return nil }
func (*failCommitConn) Begin() (driver.Tx, error) { return failCommitTx{}, nil }

func (*failCommitConn) ExecContext(_ context.Context, _ string, _ []driver.NamedValue) (driver.Result, error) {
	return stubResult{}, nil
}

func (*failCommitConn) QueryContext(_ context.Context, _ string, _ []driver.NamedValue) (driver.Rows, error) {
	return &timestampRows{}, nil
}

type failCommitTx struct{}

func (failCommitTx) Commit() error   { return errCommitFailed }
func (failCommitTx) Rollback() error { return nil }

type stubResult struct{}

func (stubResult) LastInsertId() (int64, error) { return 1, nil }
func (stubResult) RowsAffected() (int64, error) { return 1, nil }

type timestampRows struct{ done bool }

func (*timestampRows) Columns() []string { return []string{"created_at", "updated_at"} }
func (*timestampRows) Close() error      { return nil }
func (r *timestampRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	now := time.Now()
	dest[0], dest[1] = now, now
	r.done = true
	return nil
}

func failingCommitRepo(t *testing.T) *HotelRepo {
	t.Helper()
	db, err := sql.Open("failcommit", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHotelRepo(db)
}

func TestCreateReportsCommitFailure(t *testing.T) {
	repo := failingCommitRepo(t)

	h := &model.Hotel{
		UserID: 1, Name: "Sea View", Country: "Vietnam",
		StarRating: 4, Status: model.HotelUnderMaintenance,
		RoomTypes: []model.RoomType{{Type: "double", Capacity: 2, PricePerNight: 50}},
	}
	err := repo.Create(context.Background(), h)
	assert.ErrorIs(t, err, errCommitFailed, "an uncommitted insert must not look persisted")
}

func TestUpdateReportsCommitFailure(t *testing.T) {
	repo := failingCommitRepo(t)

	h := &model.Hotel{
		ID: 1, UserID: 1, Name: "Sea View", Country: "Vietnam",
		StarRating: 4, Status: model.HotelUnderMaintenance,
		RoomTypes: []model.RoomType{{Type: "double", Capacity: 2, PricePerNight: 50}},
	}
	err := repo.Update(context.Background(), h)
	assert.ErrorIs(t, err, errCommitFailed, "an uncommitted update must not look persisted")
}
