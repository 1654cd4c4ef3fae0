package aggregator

import (
	"context"
)

// ResponseGetter is the component able to execute a get operation on the provided URL
type ResponseGetter interface {
	Get(ctx context.Context, url string, response interface{}) error
}

// ResponsePoster is the component able to execute a JSON post operation on the provided URL
type ResponsePoster interface {
	Post(ctx context.Context, url string, request interface{}, response interface{}) error
}

// BatchPriceFetcher defines the behavior of a component able to query USD quotes
// for a batch of symbols in one call
type BatchPriceFetcher interface {
	Name() string
	FetchPrices(ctx context.Context, symbols []string) (map[string]PriceQuote, error)
	IsInterfaceNil() bool
}

// SpotMidFetcher defines the behavior of a component able to compute the order-book
// mid price of a listed spot pair
type SpotMidFetcher interface {
	Name() string
	FetchMid(ctx context.Context, base string, quote string) (float64, error)
	IsInterfaceNil() bool
}

// PoolMidFetcher defines the behavior of a component able to derive a mid price
// from the deepest liquidity pool pairing two EVM token addresses
type PoolMidFetcher interface {
	Name() string
	FetchBestPoolMid(ctx context.Context, tokenAddress string, referenceAddress string) (float64, error)
	IsInterfaceNil() bool
}

// StableFxResolver defines the behavior of a component able to resolve the USD
// factor of a stablecoin. Implementations never fail: when no live data can be
// found they fall back to the peg factor of 1.0
type StableFxResolver interface {
	ResolveStableUsdFactor(ctx context.Context, symbol string, preferredQuotes []string) FxFactor
	IsInterfaceNil() bool
}

// CycleNotifee defines the behavior of a component able to consume the result
// set of a completed update cycle
type CycleNotifee interface {
	CycleCompleted(ctx context.Context, cycle *CycleResult) error
	IsInterfaceNil() bool
}
