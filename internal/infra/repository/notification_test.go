//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"transit-booking/internal/infra"
	"transit-booking/internal/infra/repository"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/usecase/shared"
	repositorymock "transit-booking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jobTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("success: job queued with its payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries)

		payload := []byte(`{"transactionId":"tx-1"}`)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    "booking.confirmed",
			Topic:   "booking.confirmed",
			Payload: payload,
			RunAt:   pgtype.Timestamptz{Time: jobTime, Valid: true},
			Status:  shared.NotificationStatusQueued,
		}).Return(nil)

		err := repo.CreateJob(ctx, mockDB, "booking.confirmed", "booking.confirmed", payload, jobTime)
		require.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repo.CreateJob(ctx, mockDB, "booking.cancelled", "booking.cancelled", []byte(`{}`), jobTime)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	reason := "exchange not found"

	testCases := []struct {
		name          string
		status        string
		lastError     *string
		expectedText  pgtype.Text
		queryErr      error
		expectedError bool
	}{
		{
			name:         "success: sent clears last error",
			status:       shared.NotificationStatusSent,
			expectedText: pgtype.Text{Valid: false},
		},
		{
			name:         "success: failed keeps the reason",
			status:       shared.NotificationStatusFailed,
			lastError:    &reason,
			expectedText: pgtype.Text{String: reason, Valid: true},
		},
		{
			name:          "error: database error occurs",
			status:        shared.NotificationStatusSent,
			expectedText:  pgtype.Text{Valid: false},
			queryErr:      errors.New("connection reset"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries)

			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, sqlc.UpdateNotificationJobStatusParams{
				ID:        jobID,
				Status:    tc.status,
				LastError: tc.expectedText,
			}).Return(tc.queryErr)

			err := repo.UpdateJobStatus(ctx, mockDB, jobID, tc.status, tc.lastError)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNotificationRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries)

	jobID := uuid.New()
	next := jobTime.Add(30 * time.Second)
	mockQueries.EXPECT().RescheduleNotificationJob(ctx, mockDB, sqlc.RescheduleNotificationJobParams{
		ID:        jobID,
		RunAt:     pgtype.Timestamptz{Time: next, Valid: true},
		LastError: pgtype.Text{String: "channel closed", Valid: true},
	}).Return(nil)

	require.NoError(t, repo.Reschedule(ctx, mockDB, jobID, next, "channel closed"))
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries)

		id := uuid.New()
		lease := jobTime.Add(time.Minute)
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			LeaseUntil: pgtype.Timestamptz{Time: lease, Valid: true},
			Now:        pgtype.Timestamptz{Time: jobTime, Valid: true},
			BatchSize:  10,
		}).Return([]sqlc.NotificationJobs{{
			ID:        id,
			Kind:      "booking.confirmed",
			Topic:     "booking.confirmed",
			Payload:   []byte(`{"transactionId":"tx-1"}`),
			RunAt:     pgtype.Timestamptz{Time: jobTime, Valid: true},
			Attempts:  2,
			Status:    shared.NotificationStatusQueued,
			CreatedAt: pgtype.Timestamptz{Time: jobTime.Add(-time.Minute), Valid: true},
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, jobTime, lease, 10)
		require.NoError(t, err)

		expected := []shared.NotificationJob{{
			ID:        id,
			Kind:      "booking.confirmed",
			Topic:     "booking.confirmed",
			Payload:   []byte(`{"transactionId":"tx-1"}`),
			Attempts:  2,
			RunAt:     jobTime,
			CreatedAt: jobTime.Add(-time.Minute),
		}}
		if diff := cmp.Diff(expected, jobs); diff != "" {
			t.Errorf("ClaimDue() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: nothing due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		jobs, err := repo.ClaimDue(ctx, &mockDBTX{}, jobTime, jobTime.Add(time.Minute), 10)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := repo.ClaimDue(ctx, &mockDBTX{}, jobTime, jobTime.Add(time.Minute), 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
