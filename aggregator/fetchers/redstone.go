package fetchers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	// RedStoneName is the name of the RedStone batch-quote fetcher
	RedStoneName = "RedStone"

	redStoneProvider   = "redstone"
	minRedStoneSymbols = 1
)

var log = logger.GetOrCreate("hip3-oracles-go/aggregator/fetchers")

// ArgsRedStoneFetcher is the argument DTO for the NewRedStoneFetcher function
type ArgsRedStoneFetcher struct {
	ResponseGetter aggregator.ResponseGetter
	Endpoints      []string
	MaxAttempts    uint32
	BaseBackoff    time.Duration
}

type redStoneQuoteResponse struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// redStoneFetcher queries a ranked list of RedStone gateway endpoints for a
// batch of symbols in one call. Each endpoint gets a bounded number of attempts
// with exponential backoff before the fetcher advances to the next one;
// exhausting all endpoints is terminal for the call
type redStoneFetcher struct {
	responseGetter aggregator.ResponseGetter
	endpoints      []string
	maxAttempts    uint32
	baseBackoff    time.Duration
}

// NewRedStoneFetcher will create a new redStoneFetcher instance
func NewRedStoneFetcher(args ArgsRedStoneFetcher) (*redStoneFetcher, error) {
	if args.ResponseGetter == nil {
		return nil, errNilResponseGetter
	}
	if len(args.Endpoints) == 0 {
		return nil, errEmptyEndpointsList
	}
	if args.MaxAttempts == 0 {
		return nil, errInvalidMaxAttempts
	}
	if args.BaseBackoff <= 0 {
		return nil, errInvalidBaseBackoff
	}

	endpoints := make([]string, len(args.Endpoints))
	copy(endpoints, args.Endpoints)

	return &redStoneFetcher{
		responseGetter: args.ResponseGetter,
		endpoints:      endpoints,
		maxAttempts:    args.MaxAttempts,
		baseBackoff:    args.BaseBackoff,
	}, nil
}

// Name returns the name of the fetcher
func (fetcher *redStoneFetcher) Name() string {
	return RedStoneName
}

// FetchPrices queries the gateway endpoints in their ranked order and returns
// the USD quotes for all requested symbols. Endpoints are retried sequentially
// with backoff delays of baseBackoff * 2^attempt so upstream rate limits are
// respected
func (fetcher *redStoneFetcher) FetchPrices(ctx context.Context, symbols []string) (map[string]aggregator.PriceQuote, error) {
	if len(symbols) < minRedStoneSymbols {
		return nil, errEmptySymbolsList
	}

	var lastErr error
	for _, endpoint := range fetcher.endpoints {
		for attempt := uint32(0); attempt < fetcher.maxAttempts; attempt++ {
			if attempt > 0 {
				err := fetcher.waitBackoff(ctx, attempt)
				if err != nil {
					return nil, err
				}
			}

			quotes, err := fetcher.fetchFromEndpoint(ctx, endpoint, symbols)
			if err == nil {
				return quotes, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			log.Debug("redstone endpoint attempt failed",
				"endpoint", endpoint, "attempt", attempt+1, "error", err.Error())
		}
	}

	return nil, fmt.Errorf("%w, last error: %s", aggregator.ErrAllEndpointsDown, lastErr.Error())
}

func (fetcher *redStoneFetcher) fetchFromEndpoint(ctx context.Context, endpoint string, symbols []string) (map[string]aggregator.PriceQuote, error) {
	requestURL := fmt.Sprintf("%s/prices?symbols=%s&provider=%s",
		strings.TrimSuffix(endpoint, "/"),
		url.QueryEscape(strings.Join(symbols, ",")),
		redStoneProvider)

	response := make(map[string]redStoneQuoteResponse)
	err := fetcher.responseGetter.Get(ctx, requestURL, &response)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]aggregator.PriceQuote, len(symbols))
	for _, symbol := range symbols {
		quote, found := response[symbol]
		if !found || quote.Value <= 0 {
			return nil, fmt.Errorf("%w, missing or non-positive value for symbol %s", errInvalidResponseData, symbol)
		}

		quotes[symbol] = aggregator.PriceQuote{
			Symbol:    symbol,
			Value:     quote.Value,
			Source:    aggregator.SourceRedStone,
			Timestamp: quote.Timestamp,
		}
	}

	return quotes, nil
}

// waitBackoff blocks for baseBackoff * 2^(attempt-1), aborting early when the
// provided context is done
func (fetcher *redStoneFetcher) waitBackoff(ctx context.Context, attempt uint32) error {
	delay := fetcher.baseBackoff * time.Duration(1<<(attempt-1))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (fetcher *redStoneFetcher) IsInterfaceNil() bool {
	return fetcher == nil
}
