package aggregator

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("hip3-oracles-go/aggregator")

// ArgsStableFxResolver is the argument DTO for the NewStableFxResolver function
type ArgsStableFxResolver struct {
	SpotFetcher  SpotMidFetcher
	PoolFetcher  PoolMidFetcher
	EvmAddresses map[string]string
	UsdReference string
	CacheTTL     time.Duration
}

type cachedFactor struct {
	factor    FxFactor
	expiresAt time.Time
}

// stableFxResolver resolves a stablecoin's USD factor through an ordered
// fallback chain: spot order-book mids over the preferred quote symbols,
// then the deepest DEX-aggregator pool against the USD reference token,
// then the 1.0 peg. It never fails: the peg tier always produces a value
type stableFxResolver struct {
	spotFetcher  SpotMidFetcher
	poolFetcher  PoolMidFetcher
	evmAddresses map[string]string
	usdReference string
	cacheTTL     time.Duration
	cacheMut     sync.Mutex
	cache        map[string]cachedFactor
}

// NewStableFxResolver will create a new stableFxResolver instance
func NewStableFxResolver(args ArgsStableFxResolver) (*stableFxResolver, error) {
	err := checkArgsStableFxResolver(args)
	if err != nil {
		return nil, err
	}

	evmAddresses := make(map[string]string, len(args.EvmAddresses))
	for symbol, address := range args.EvmAddresses {
		evmAddresses[symbol] = address
	}

	return &stableFxResolver{
		spotFetcher:  args.SpotFetcher,
		poolFetcher:  args.PoolFetcher,
		evmAddresses: evmAddresses,
		usdReference: args.UsdReference,
		cacheTTL:     args.CacheTTL,
		cache:        make(map[string]cachedFactor),
	}, nil
}

func checkArgsStableFxResolver(args ArgsStableFxResolver) error {
	if check.IfNil(args.SpotFetcher) {
		return ErrNilSpotMidFetcher
	}
	if check.IfNil(args.PoolFetcher) {
		return ErrNilPoolMidFetcher
	}
	if len(args.UsdReference) == 0 {
		return ErrEmptyUsdReference
	}

	return nil
}

// ResolveStableUsdFactor resolves the USD factor of the provided stablecoin,
// trying each preferred quote on the spot order book first, then the
// DEX-aggregator pool tier, then falling back to the 1.0 peg
func (resolver *stableFxResolver) ResolveStableUsdFactor(ctx context.Context, symbol string, preferredQuotes []string) FxFactor {
	if symbol == resolver.usdReference {
		return FxFactor{
			Stablecoin: symbol,
			UsdFactor:  1,
			Source:     SourcePeg,
		}
	}

	cacheKey := factorCacheKey(symbol, preferredQuotes)
	factor, found := resolver.cachedFactor(cacheKey)
	if found {
		return factor
	}

	factor, found = resolver.resolveThroughSpotBook(ctx, symbol, preferredQuotes)
	if found {
		resolver.storeFactor(cacheKey, factor)
		return factor
	}

	factor, found = resolver.resolveThroughPools(ctx, symbol)
	if found {
		resolver.storeFactor(cacheKey, factor)
		return factor
	}

	log.Debug("no live data for stablecoin, falling back to peg", "symbol", symbol)

	return FxFactor{
		Stablecoin: symbol,
		UsdFactor:  1,
		Source:     SourcePeg,
	}
}

func (resolver *stableFxResolver) resolveThroughSpotBook(ctx context.Context, symbol string, preferredQuotes []string) (FxFactor, bool) {
	for idx, quote := range preferredQuotes {
		if ctx.Err() != nil {
			return FxFactor{}, false
		}
		if quote == symbol {
			continue
		}

		mid, err := resolver.spotFetcher.FetchMid(ctx, symbol, quote)
		if err != nil {
			log.Debug("spot mid unavailable, trying next quote",
				"symbol", symbol, "quote", quote, "error", err.Error())
			continue
		}

		factor := mid
		if quote != resolver.usdReference {
			// bridged resolution: the quote's own USD factor is resolved with the
			// quote removed from the candidate list, bounding the recursion depth
			remaining := removeQuote(preferredQuotes, idx)
			quoteFactor := resolver.ResolveStableUsdFactor(ctx, quote, remaining)
			factor = mid * quoteFactor.UsdFactor
		}

		return FxFactor{
			Stablecoin: symbol,
			UsdFactor:  factor,
			Source:     SourceSpotBook,
		}, true
	}

	return FxFactor{}, false
}

func (resolver *stableFxResolver) resolveThroughPools(ctx context.Context, symbol string) (FxFactor, bool) {
	if ctx.Err() != nil {
		return FxFactor{}, false
	}

	tokenAddress, hasToken := resolver.evmAddresses[symbol]
	referenceAddress, hasReference := resolver.evmAddresses[resolver.usdReference]
	if !hasToken || !hasReference {
		return FxFactor{}, false
	}

	mid, err := resolver.poolFetcher.FetchBestPoolMid(ctx, tokenAddress, referenceAddress)
	if err != nil {
		log.Debug("pool mid unavailable", "symbol", symbol, "error", err.Error())
		return FxFactor{}, false
	}
	if mid <= 0 {
		return FxFactor{}, false
	}

	return FxFactor{
		Stablecoin: symbol,
		UsdFactor:  mid,
		Source:     SourceAggregator,
	}, true
}

func (resolver *stableFxResolver) cachedFactor(key string) (FxFactor, bool) {
	if resolver.cacheTTL <= 0 {
		return FxFactor{}, false
	}

	resolver.cacheMut.Lock()
	defer resolver.cacheMut.Unlock()

	entry, found := resolver.cache[key]
	if !found || time.Now().After(entry.expiresAt) {
		return FxFactor{}, false
	}

	return entry.factor, true
}

// storeFactor caches live factors only, peg fallbacks are re-tried on the next call
func (resolver *stableFxResolver) storeFactor(key string, factor FxFactor) {
	if resolver.cacheTTL <= 0 || factor.Source == SourcePeg {
		return
	}

	resolver.cacheMut.Lock()
	defer resolver.cacheMut.Unlock()

	resolver.cache[key] = cachedFactor{
		factor:    factor,
		expiresAt: time.Now().Add(resolver.cacheTTL),
	}
}

func factorCacheKey(symbol string, preferredQuotes []string) string {
	return symbol + "|" + strings.Join(preferredQuotes, ",")
}

func removeQuote(quotes []string, idx int) []string {
	remaining := make([]string, 0, len(quotes)-1)
	remaining = append(remaining, quotes[:idx]...)
	remaining = append(remaining, quotes[idx+1:]...)
	return remaining
}

// IsInterfaceNil returns true if there is no value under the interface
func (resolver *stableFxResolver) IsInterfaceNil() bool {
	return resolver == nil
}
