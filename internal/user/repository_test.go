package user

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

func setupMockDB(t *testing.T) (pgxmock.PgxPoolIface, Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPgxRepository(mock)
}

func TestPgxRepository_GetByID(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM public.users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email"}).AddRow(int64(1), "Ann", "ann@example.com"))

	u, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, Name: "Ann", Email: "ann@example.com"}, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_GetByID_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery("FROM public.users").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_Create(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO public.users")).
		WithArgs("Ann", "ann@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	u := &User{Name: "Ann", Email: "ann@example.com"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(5), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_Create_DuplicateEmail(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO public.users")).
		WithArgs("Ann", "ann@example.com").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &User{Name: "Ann", Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestPgxRepository_Update(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE public.users SET name = $1, email = $2 WHERE id = $3")).
		WithArgs("Bob", "bob@example.com", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), &User{ID: 2, Name: "Bob", Email: "bob@example.com"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_Update_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE public.users")).
		WithArgs("Bob", "bob@example.com", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &User{ID: 2, Name: "Bob", Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPgxRepository_Delete(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.users WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnError(errors.New("connection lost"))

	require.NoError(t, repo.Delete(context.Background(), 3))

	err := repo.Delete(context.Background(), 4)
	assert.ErrorContains(t, err, "delete user failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_Delete_ReferencedByBookings(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bookings_booker_id_fkey"})

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUserReferenced)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxRepository_List(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM public.users ORDER BY id ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email"}).
			AddRow(int64(1), "Ann", "ann@example.com").
			AddRow(int64(2), "Bob", "bob@example.com"))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)
}
