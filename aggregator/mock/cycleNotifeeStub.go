package mock

import (
	"context"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

// CycleNotifeeStub -
type CycleNotifeeStub struct {
	CycleCompletedCalled func(ctx context.Context, cycle *aggregator.CycleResult) error
}

// CycleCompleted -
func (stub *CycleNotifeeStub) CycleCompleted(ctx context.Context, cycle *aggregator.CycleResult) error {
	if stub.CycleCompletedCalled != nil {
		return stub.CycleCompletedCalled(ctx, cycle)
	}

	return nil
}

// IsInterfaceNil -
func (stub *CycleNotifeeStub) IsInterfaceNil() bool {
	return stub == nil
}
