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

func TestEventRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	reg := &domain.EventRegistration{
		ID:               "reg-1",
		EventID:          "ev-1",
		ParticipantName:  "Alice",
		ParticipantEmail: "alice@example.com",
		RegistrationDate: ts,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
					WithArgs("reg-1", "ev-1", "Alice", "alice@example.com", sqlmock.AnyArg(), ts, ts, ts).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email returns ErrAlreadyRegistered",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_event_registrations_event_email"})
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "missing event returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
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
			repo := NewEventRegistrationRepository(db)
			err = repo.Create(ctx, reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRegistrationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, participant_name, participant_email`).
		WithArgs("reg-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "participant_name", "participant_email", "participant_phone", "registration_date", "created_at", "updated_at"}).
			AddRow("reg-1", "ev-1", "Alice", "alice@example.com", "+49123", ts, ts, ts))

	repo := NewEventRegistrationRepository(db)
	got, err := repo.GetByID(ctx, "reg-1")
	require.NoError(t, err)
	require.Equal(t, "reg-1", got.ID)
	require.NotNil(t, got.ParticipantPhone)
	require.Equal(t, "+49123", *got.ParticipantPhone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRegistrationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name: "returns registrations in registration order",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, participant_name, participant_email`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "participant_name", "participant_email", "participant_phone", "registration_date", "created_at", "updated_at"}).
						AddRow("reg-1", "ev-1", "Alice", "alice@example.com", nil, ts, ts, ts).
						AddRow("reg-2", "ev-1", "Bob", "bob@example.com", nil, ts.Add(time.Hour), ts, ts))
			},
			wantLen: 2,
		},
		{
			name: "no registrations yields empty slice",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, participant_name, participant_email`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "participant_name", "participant_email", "participant_phone", "registration_date", "created_at", "updated_at"}))
			},
			wantLen: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, participant_name, participant_email`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRegistrationRepository(db)
			regs, err := repo.ListByEventID(ctx, "ev-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, regs)
			require.Len(t, regs, tt.wantLen)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
