package service

import (
	"context"

	"github.com/golang/mock/gomock"

	mock_service "github.com/aliskhannn/vocab-deck-bot/internal/service/mock"
)

// passThroughTx makes the transactor mock run the callback inline.
func passThroughTx(tr *mock_service.MockTransactor) {
	tr.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}
