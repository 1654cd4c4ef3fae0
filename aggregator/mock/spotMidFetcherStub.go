package mock

import "context"

// SpotMidFetcherStub -
type SpotMidFetcherStub struct {
	NameCalled     func() string
	FetchMidCalled func(ctx context.Context, base string, quote string) (float64, error)
}

// Name -
func (stub *SpotMidFetcherStub) Name() string {
	if stub.NameCalled != nil {
		return stub.NameCalled()
	}

	return "SpotMidFetcherStub"
}

// FetchMid -
func (stub *SpotMidFetcherStub) FetchMid(ctx context.Context, base string, quote string) (float64, error) {
	if stub.FetchMidCalled != nil {
		return stub.FetchMidCalled(ctx, base, quote)
	}

	return 1, nil
}

// IsInterfaceNil -
func (stub *SpotMidFetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
