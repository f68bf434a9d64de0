package services_test

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/espresso-tracker/internal/services"
)

// newPassthroughTx returns a Transactor that runs fn on the caller's context.
func newPassthroughTx(ctrl *gomock.Controller) *services.MockTransactor {
	tx := services.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
