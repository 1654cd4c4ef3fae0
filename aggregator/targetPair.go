package aggregator

import (
	"fmt"
	"math"
)

const maxDecimals = uint64(18)

// ArgsTargetPair is the argument DTO describing one base/stablecoin pair to price
type ArgsTargetPair struct {
	Base            string
	Quote           string
	OracleKey       string
	Decimals        uint64
	PreferredQuotes []string
}

type targetPair struct {
	base            string
	quote           string
	oracleKey       string
	decimals        uint64
	preferredQuotes []string
}

func newTargetPair(args *ArgsTargetPair) (*targetPair, error) {
	if len(args.Base) == 0 {
		return nil, fmt.Errorf("%w, empty base symbol", ErrInvalidPairValue)
	}
	if len(args.Quote) == 0 {
		return nil, fmt.Errorf("%w, empty quote symbol for base %s", ErrInvalidPairValue, args.Base)
	}
	if args.Decimals > maxDecimals {
		return nil, fmt.Errorf("%w, decimals %d exceeds maximum %d for pair %s-%s",
			ErrInvalidPairValue, args.Decimals, maxDecimals, args.Base, args.Quote)
	}

	oracleKey := args.OracleKey
	if len(oracleKey) == 0 {
		oracleKey = fmt.Sprintf("%s-%s", args.Base, args.Quote)
	}

	preferredQuotes := make([]string, len(args.PreferredQuotes))
	copy(preferredQuotes, args.PreferredQuotes)

	return &targetPair{
		base:            args.Base,
		quote:           args.Quote,
		oracleKey:       oracleKey,
		decimals:        args.Decimals,
		preferredQuotes: preferredQuotes,
	}, nil
}

// trim keeps the provided number of decimals on the value
func trim(value float64, decimals uint64) float64 {
	factor := math.Pow10(int(decimals))
	return math.Trunc(value*factor) / factor
}
