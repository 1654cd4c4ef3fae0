package mock

import "context"

// PoolMidFetcherStub -
type PoolMidFetcherStub struct {
	NameCalled             func() string
	FetchBestPoolMidCalled func(ctx context.Context, tokenAddress string, referenceAddress string) (float64, error)
}

// Name -
func (stub *PoolMidFetcherStub) Name() string {
	if stub.NameCalled != nil {
		return stub.NameCalled()
	}

	return "PoolMidFetcherStub"
}

// FetchBestPoolMid -
func (stub *PoolMidFetcherStub) FetchBestPoolMid(ctx context.Context, tokenAddress string, referenceAddress string) (float64, error) {
	if stub.FetchBestPoolMidCalled != nil {
		return stub.FetchBestPoolMidCalled(ctx, tokenAddress, referenceAddress)
	}

	return 1, nil
}

// IsInterfaceNil -
func (stub *PoolMidFetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
