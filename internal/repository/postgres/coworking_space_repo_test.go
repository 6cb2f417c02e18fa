package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventspace/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestCoworkingSpaceRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	space := &domain.CoworkingSpace{
		ID:          "cw-1",
		Name:        "Downtown Hub",
		Description: "Open desks and meeting rooms",
		Location:    "Main St 1",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO coworking_spaces`).
					WithArgs("cw-1", "Downtown Hub", "Open desks and meeting rooms", "Main St 1", sqlmock.AnyArg(), ts, ts).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation returns ErrDuplicateSpace",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO coworking_spaces`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_coworking_spaces_name_location"})
			},
			wantErr: domain.ErrDuplicateSpace,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO coworking_spaces`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCoworkingSpaceRepository(db)
			err = repo.Create(ctx, space)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCoworkingSpaceRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   "cw-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, location, image_path, created_at, updated_at`).
					WithArgs("cw-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "location", "image_path", "created_at", "updated_at"}).
						AddRow("cw-1", "Downtown Hub", "desc", "Main St 1", nil, ts, ts))
			},
		},
		{
			name: "not found",
			id:   "cw-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, location`).
					WithArgs("cw-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCoworkingSpaceRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, got.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCoworkingSpaceRepository_List(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, description, location, image_path, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "location", "image_path", "created_at", "updated_at"}).
			AddRow("cw-1", "Downtown Hub", "d", "Main St 1", nil, ts, ts).
			AddRow("cw-2", "Tech Village", "d", "Park Ave 5", "/img/tv.png", ts, ts))

	repo := NewCoworkingSpaceRepository(db)
	spaces, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 2)
	require.Equal(t, "Downtown Hub", spaces[0].Name)
	require.Equal(t, "Tech Village", spaces[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCoworkingSpaceRepository_Update(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	newName := "Downtown Hub v2"

	tests := []struct {
		name    string
		upd     domain.SpaceUpdate
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updates only provided fields",
			upd:  domain.SpaceUpdate{Name: &newName},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE coworking_spaces SET updated_at = NOW\(\), name = \$1`).
					WithArgs(newName, "cw-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "location", "image_path", "created_at", "updated_at"}).
						AddRow("cw-1", newName, "d", "Main St 1", nil, ts, ts))
			},
		},
		{
			name: "not found",
			upd:  domain.SpaceUpdate{Name: &newName},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE coworking_spaces SET`).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "unique violation returns ErrDuplicateSpace",
			upd:  domain.SpaceUpdate{Name: &newName},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE coworking_spaces SET`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_coworking_spaces_name_location"})
			},
			wantErr: domain.ErrDuplicateSpace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCoworkingSpaceRepository(db)
			got, err := repo.Update(ctx, "cw-1", tt.upd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, newName, got.Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCoworkingSpaceRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM coworking_spaces`).
					WithArgs("cw-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows deleted returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM coworking_spaces`).
					WithArgs("cw-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCoworkingSpaceRepository(db)
			err = repo.Delete(ctx, "cw-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
