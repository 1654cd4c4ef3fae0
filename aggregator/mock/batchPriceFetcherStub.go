package mock

import (
	"context"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

// BatchPriceFetcherStub -
type BatchPriceFetcherStub struct {
	NameCalled        func() string
	FetchPricesCalled func(ctx context.Context, symbols []string) (map[string]aggregator.PriceQuote, error)
}

// Name -
func (stub *BatchPriceFetcherStub) Name() string {
	if stub.NameCalled != nil {
		return stub.NameCalled()
	}

	return "BatchPriceFetcherStub"
}

// FetchPrices -
func (stub *BatchPriceFetcherStub) FetchPrices(ctx context.Context, symbols []string) (map[string]aggregator.PriceQuote, error) {
	if stub.FetchPricesCalled != nil {
		return stub.FetchPricesCalled(ctx, symbols)
	}

	return make(map[string]aggregator.PriceQuote), nil
}

// IsInterfaceNil -
func (stub *BatchPriceFetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
