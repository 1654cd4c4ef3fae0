package mock

import (
	"context"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

// StableFxResolverStub -
type StableFxResolverStub struct {
	ResolveStableUsdFactorCalled func(ctx context.Context, symbol string, preferredQuotes []string) aggregator.FxFactor
}

// ResolveStableUsdFactor -
func (stub *StableFxResolverStub) ResolveStableUsdFactor(ctx context.Context, symbol string, preferredQuotes []string) aggregator.FxFactor {
	if stub.ResolveStableUsdFactorCalled != nil {
		return stub.ResolveStableUsdFactorCalled(ctx, symbol, preferredQuotes)
	}

	return aggregator.FxFactor{
		Stablecoin: symbol,
		UsdFactor:  1,
		Source:     aggregator.SourcePeg,
	}
}

// IsInterfaceNil -
func (stub *StableFxResolverStub) IsInterfaceNil() bool {
	return stub == nil
}
