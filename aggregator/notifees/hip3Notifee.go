package notifees

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// oracle prices are stringified with fixed precision before submission
const oraclePriceDecimals = 12

var log = logger.GetOrCreate("hip3-oracles-go/aggregator/notifees")

// ArgsHip3Notifee is the argument DTO for the NewHip3Notifee function
type ArgsHip3Notifee struct {
	Exchange ExchangeClient
	Dex      string
}

// hip3Notifee consumes cycle results and pushes the oracle price mapping of
// the configured HIP-3 dex to the exchange endpoint
type hip3Notifee struct {
	exchange ExchangeClient
	dex      string
}

// NewHip3Notifee will create a new hip3Notifee instance
func NewHip3Notifee(args ArgsHip3Notifee) (*hip3Notifee, error) {
	if check.IfNil(args.Exchange) {
		return nil, errNilExchangeClient
	}
	if len(args.Dex) == 0 {
		return nil, errEmptyDexHandle
	}

	return &hip3Notifee{
		exchange: args.Exchange,
		dex:      args.Dex,
	}, nil
}

// CycleCompleted assembles the oracle price mapping from the cycle's per-pair
// results and submits it. Pegged pairs are submitted like any other, their
// frequency is an operator health signal, not an error
func (notifee *hip3Notifee) CycleCompleted(ctx context.Context, cycle *aggregator.CycleResult) error {
	if cycle == nil {
		return errNilCycleResult
	}

	oraclePrices := make([][2]string, 0, len(cycle.Pairs))
	peggedPairs := 0
	for _, result := range cycle.Pairs {
		if result.Err != nil {
			log.Warn("skipping unpriced pair in oracle submission",
				"pair", result.OracleKey, "error", result.Err.Error())
			continue
		}
		if result.Source == aggregator.SourcePeg {
			peggedPairs++
		}

		oraclePrices = append(oraclePrices, [2]string{
			fmt.Sprintf("%s:%s", notifee.dex, result.OracleKey),
			strconv.FormatFloat(result.Price, 'f', oraclePriceDecimals, 64),
		})
	}

	if len(oraclePrices) == 0 {
		log.Warn("no priced pairs in cycle, skipping oracle submission", "cycle", cycle.ID)
		return nil
	}

	sort.Slice(oraclePrices, func(i, j int) bool {
		return oraclePrices[i][0] < oraclePrices[j][0]
	})

	log.Info("submitting oracle prices",
		"cycle", cycle.ID,
		"dex", notifee.dex,
		"pairs", len(oraclePrices),
		"pegged", peggedPairs)

	return notifee.exchange.SubmitOracleUpdate(ctx, notifee.dex, oraclePrices)
}

// IsInterfaceNil returns true if there is no value under the interface
func (notifee *hip3Notifee) IsInterfaceNil() bool {
	return notifee == nil
}
