//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/queries"
	"transit-booking/tests/common/builder"
	queriesmock "transit-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByTransactionID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView("tx-1")

	testCases := []struct {
		name     string
		id       string
		storeErr error
		errIs    error
	}{
		{name: "found", id: "tx-1"},
		{name: "empty id", id: "", errIs: errs.ErrValidation},
		{name: "missing", id: "tx-1", storeErr: infra.WrapRepoErr("booking", nil, infra.KindNotFound), errIs: errs.ErrBookingNotFound},
		{name: "db failure", id: "tx-1", storeErr: infra.WrapRepoErr("booking", errors.New("down")), errIs: errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			if tc.id != "" {
				if tc.storeErr != nil {
					store.EXPECT().FindByTransactionID(ctx, tc.id).Return(nil, tc.storeErr)
				} else {
					store.EXPECT().FindByTransactionID(ctx, tc.id).Return(view, nil)
				}
			}

			got, err := queries.NewBookingQueries(store).GetByTransactionID(ctx, tc.id)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListByBusAndDate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)

	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView("tx-1")}
	store.EXPECT().ListByBusAndDate(ctx, "XYZ-1234", monday(t)).Return(views, nil)

	got, err := q.ListByBusAndDate(ctx, "XYZ-1234", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, views, got)

	_, err = q.ListByBusAndDate(ctx, "", "2025-03-10")
	assert.True(t, errs.Is(err, errs.ErrValidation))
	_, err = q.ListByBusAndDate(ctx, "XYZ-1234", "10-03-2025")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestNotificationQueries_ListPending(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "default", limit: 0, wantLimit: 50},
		{name: "negative uses default", limit: -5, wantLimit: 50},
		{name: "explicit", limit: 10, wantLimit: 10},
		{name: "clamped", limit: 1000, wantLimit: 200},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockNotificationReadStore(ctrl)
			store.EXPECT().GetPendingJobs(ctx, tc.wantLimit).Return([]*queries.NotificationJobView{}, nil)

			_, err := queries.NewNotificationQueries(store).ListPending(ctx, tc.limit)
			assert.NoError(t, err)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockNotificationReadStore(ctrl)
		store.EXPECT().GetPendingJobs(ctx, gomock.Any()).Return(nil, errors.New("down"))

		_, err := queries.NewNotificationQueries(store).ListPending(ctx, 0)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
