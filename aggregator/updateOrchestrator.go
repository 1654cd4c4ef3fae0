package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// ArgsUpdateOrchestrator is the argument DTO for the update orchestrator
type ArgsUpdateOrchestrator struct {
	Pairs        []*ArgsTargetPair
	BaseSymbol   string
	BatchFetcher BatchPriceFetcher
	FxResolver   StableFxResolver
	Notifee      CycleNotifee
	CycleTimeout time.Duration
}

// updateOrchestrator prices all configured base/stablecoin pairs in one cycle:
// the base/USD price is fetched exactly once, then each pair's stablecoin
// factor is resolved concurrently and the cross price computed. Per-pair
// failures never abort the cycle, only a base/USD total failure does
type updateOrchestrator struct {
	pairs        []*targetPair
	baseSymbol   string
	batchFetcher BatchPriceFetcher
	fxResolver   StableFxResolver
	notifee      CycleNotifee
	cycleTimeout time.Duration
	mutLastCycle sync.RWMutex
	lastCycle    *CycleResult
}

// NewUpdateOrchestrator will create a new updateOrchestrator instance
func NewUpdateOrchestrator(args ArgsUpdateOrchestrator) (*updateOrchestrator, error) {
	err := checkArgsUpdateOrchestrator(args)
	if err != nil {
		return nil, err
	}

	pairs := make([]*targetPair, 0, len(args.Pairs))
	for idx, argsPair := range args.Pairs {
		if argsPair == nil {
			return nil, fmt.Errorf("%w, index %d", ErrNilArgsPair, idx)
		}
		if argsPair.Base != args.BaseSymbol {
			return nil, fmt.Errorf("%w, pair %s-%s, cycle base %s",
				ErrBaseSymbolMismatch, argsPair.Base, argsPair.Quote, args.BaseSymbol)
		}
		pair, errPair := newTargetPair(argsPair)
		if errPair != nil {
			return nil, errPair
		}
		pairs = append(pairs, pair)
	}

	return &updateOrchestrator{
		pairs:        pairs,
		baseSymbol:   args.BaseSymbol,
		batchFetcher: args.BatchFetcher,
		fxResolver:   args.FxResolver,
		notifee:      args.Notifee,
		cycleTimeout: args.CycleTimeout,
	}, nil
}

func checkArgsUpdateOrchestrator(args ArgsUpdateOrchestrator) error {
	if len(args.Pairs) < 1 {
		return ErrEmptyPairsSlice
	}
	if len(args.BaseSymbol) == 0 {
		return ErrEmptyBaseSymbol
	}
	if check.IfNil(args.BatchFetcher) {
		return ErrNilBatchPriceFetcher
	}
	if check.IfNil(args.FxResolver) {
		return ErrNilStableFxResolver
	}
	if check.IfNil(args.Notifee) {
		return ErrNilCycleNotifee
	}

	return nil
}

// Execute runs one full update cycle and hands the result set to the notifee
func (orchestrator *updateOrchestrator) Execute(ctx context.Context) error {
	if orchestrator.cycleTimeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, orchestrator.cycleTimeout)
		defer cancel()
	}

	baseQuote, err := orchestrator.fetchBaseUsdPrice(ctx)
	if err != nil {
		return err
	}

	cycle := &CycleResult{
		ID:           uuid.NewString(),
		BaseSymbol:   orchestrator.baseSymbol,
		BaseUsdPrice: baseQuote.Value,
		Timestamp:    time.Now().Unix(),
		Pairs:        make([]*PairResult, len(orchestrator.pairs)),
	}

	wg := sync.WaitGroup{}
	wg.Add(len(orchestrator.pairs))
	for idx, pair := range orchestrator.pairs {
		go func(idx int, pair *targetPair) {
			defer wg.Done()
			cycle.Pairs[idx] = orchestrator.resolvePair(ctx, pair, baseQuote.Value)
		}(idx, pair)
	}
	wg.Wait()

	for _, result := range cycle.Pairs {
		log.Debug("pair priced",
			"pair", result.OracleKey,
			"price", result.Price,
			"source", string(result.Source))
	}

	orchestrator.mutLastCycle.Lock()
	orchestrator.lastCycle = cycle
	orchestrator.mutLastCycle.Unlock()

	return orchestrator.notifee.CycleCompleted(ctx, cycle)
}

func (orchestrator *updateOrchestrator) fetchBaseUsdPrice(ctx context.Context) (PriceQuote, error) {
	quotes, err := orchestrator.batchFetcher.FetchPrices(ctx, []string{orchestrator.baseSymbol})
	if err != nil {
		return PriceQuote{}, fmt.Errorf("%w, %s", ErrBaseUsdUnavailable, err.Error())
	}

	baseQuote, found := quotes[orchestrator.baseSymbol]
	if !found || baseQuote.Value <= 0 {
		return PriceQuote{}, fmt.Errorf("%w, no usable %s quote in the batch response",
			ErrBaseUsdUnavailable, orchestrator.baseSymbol)
	}

	return baseQuote, nil
}

func (orchestrator *updateOrchestrator) resolvePair(ctx context.Context, pair *targetPair, baseUsdPrice float64) *PairResult {
	fxFactor := orchestrator.fxResolver.ResolveStableUsdFactor(ctx, pair.quote, pair.preferredQuotes)

	result := &PairResult{
		Base:      pair.base,
		Quote:     pair.quote,
		OracleKey: pair.oracleKey,
		Decimals:  pair.decimals,
		Source:    fxFactor.Source,
		Timestamp: time.Now().Unix(),
	}

	price, err := BaseStablePrice(baseUsdPrice, fxFactor)
	if err != nil {
		result.Err = err
		return result
	}

	result.Price = trim(price, pair.decimals)
	return result
}

// LastCycle returns the result set of the most recently completed cycle, or nil
// when no cycle has completed yet
func (orchestrator *updateOrchestrator) LastCycle() *CycleResult {
	orchestrator.mutLastCycle.RLock()
	defer orchestrator.mutLastCycle.RUnlock()

	return orchestrator.lastCycle
}

// IsInterfaceNil returns true if there is no value under the interface
func (orchestrator *updateOrchestrator) IsInterfaceNil() bool {
	return orchestrator == nil
}
