package aggregator

import "errors"

var (
	// ErrEndpointUnavailable signals a network failure, timeout or non-2xx response from one endpoint
	ErrEndpointUnavailable = errors.New("endpoint unavailable")
	// ErrAllEndpointsDown signals that every configured endpoint of a source was exhausted
	ErrAllEndpointsDown = errors.New("all endpoints down")
	// ErrPairNotFound signals that the requested pair is not listed on the venue
	ErrPairNotFound = errors.New("pair not found")
	// ErrNoLiquidity signals that at least one side of the order book is empty
	ErrNoLiquidity = errors.New("no liquidity on the order book")
	// ErrNoPoolsFound signals that no liquidity pool pairs the two token addresses
	ErrNoPoolsFound = errors.New("no pools found")
	// ErrInvalidTokenAddress signals a malformed EVM token address
	ErrInvalidTokenAddress = errors.New("invalid token address")
	// ErrBaseUsdUnavailable signals that the base/USD price could not be fetched,
	// making the whole update cycle impossible
	ErrBaseUsdUnavailable = errors.New("base/USD price unavailable")
	// ErrDivisionByZero signals a non-positive USD factor reaching the converter
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNilBatchPriceFetcher signals that a nil batch price fetcher was provided
	ErrNilBatchPriceFetcher = errors.New("nil batch price fetcher")
	// ErrNilSpotMidFetcher signals that a nil spot mid fetcher was provided
	ErrNilSpotMidFetcher = errors.New("nil spot mid fetcher")
	// ErrNilPoolMidFetcher signals that a nil pool mid fetcher was provided
	ErrNilPoolMidFetcher = errors.New("nil pool mid fetcher")
	// ErrNilStableFxResolver signals that a nil stable fx resolver was provided
	ErrNilStableFxResolver = errors.New("nil stable fx resolver")
	// ErrNilCycleNotifee signals that a nil cycle notifee was provided
	ErrNilCycleNotifee = errors.New("nil cycle notifee")
	// ErrEmptyPairsSlice signals that an empty pair arguments slice was provided
	ErrEmptyPairsSlice = errors.New("empty pair arguments slice")
	// ErrNilArgsPair signals that a nil pair argument was provided
	ErrNilArgsPair = errors.New("nil pair argument")
	// ErrInvalidPairValue signals an invalid value in a pair argument
	ErrInvalidPairValue = errors.New("invalid pair argument value")
	// ErrEmptyBaseSymbol signals that an empty base symbol was provided
	ErrEmptyBaseSymbol = errors.New("empty base symbol")
	// ErrEmptyUsdReference signals that an empty USD reference symbol was provided
	ErrEmptyUsdReference = errors.New("empty USD reference symbol")
	// ErrBaseSymbolMismatch signals a target pair whose base differs from the cycle base symbol
	ErrBaseSymbolMismatch = errors.New("base symbol mismatch")
)
