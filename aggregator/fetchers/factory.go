package fetchers

import (
	"time"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

// ImplementedSources holds the closed set of source client names; the fallback
// order between them is fixed by the resolver, not discovered at runtime
var ImplementedSources = map[string]struct{}{
	RedStoneName:    {},
	HLSpotName:      {},
	DexScreenerName: {},
}

// ArgsSourceClients is the argument DTO for the NewSourceClients function
type ArgsSourceClients struct {
	ResponseGetter      aggregator.ResponseGetter
	ResponsePoster      aggregator.ResponsePoster
	RedStoneEndpoints   []string
	RedStoneMaxAttempts uint32
	RedStoneBaseBackoff time.Duration
	SpotNetworkAddress  string
	ScreenerAddress     string
	ScreenerChainID     string
}

// SourceClients groups the three source client variants consumed by the
// fx resolver and the update orchestrator
type SourceClients struct {
	Batch aggregator.BatchPriceFetcher
	Spot  aggregator.SpotMidFetcher
	Pool  aggregator.PoolMidFetcher
}

// NewSourceClients creates all source client variants in one call
func NewSourceClients(args ArgsSourceClients) (*SourceClients, error) {
	batchFetcher, err := NewRedStoneFetcher(ArgsRedStoneFetcher{
		ResponseGetter: args.ResponseGetter,
		Endpoints:      args.RedStoneEndpoints,
		MaxAttempts:    args.RedStoneMaxAttempts,
		BaseBackoff:    args.RedStoneBaseBackoff,
	})
	if err != nil {
		return nil, err
	}

	spotFetcher, err := NewSpotBookFetcher(ArgsSpotBookFetcher{
		ResponsePoster: args.ResponsePoster,
		NetworkAddress: args.SpotNetworkAddress,
	})
	if err != nil {
		return nil, err
	}

	poolFetcher, err := NewDexScreenerFetcher(ArgsDexScreenerFetcher{
		ResponseGetter: args.ResponseGetter,
		NetworkAddress: args.ScreenerAddress,
		ChainID:        args.ScreenerChainID,
	})
	if err != nil {
		return nil, err
	}

	return &SourceClients{
		Batch: batchFetcher,
		Spot:  spotFetcher,
		Pool:  poolFetcher,
	}, nil
}
