package fetchers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

const (
	// HLSpotName is the name of the Hyperliquid spot order-book fetcher
	HLSpotName = "HLSpot"

	spotMetaRequestType = "spotMeta"
	l2BookRequestType   = "l2Book"
)

// ArgsSpotBookFetcher is the argument DTO for the NewSpotBookFetcher function
type ArgsSpotBookFetcher struct {
	ResponsePoster aggregator.ResponsePoster
	NetworkAddress string
}

type infoRequest struct {
	Type string `json:"type"`
	Coin string `json:"coin,omitempty"`
}

type spotToken struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type spotPair struct {
	Name   string `json:"name"`
	Tokens [2]int `json:"tokens"`
	Index  int    `json:"index"`
}

type spotMetaResponse struct {
	Tokens   []spotToken `json:"tokens"`
	Universe []spotPair  `json:"universe"`
}

type bookLevel struct {
	Px string `json:"px"`
	Sz string `json:"sz"`
	N  int    `json:"n"`
}

type l2BookResponse struct {
	Coin   string        `json:"coin"`
	Levels [][]bookLevel `json:"levels"`
	Time   int64         `json:"time"`
}

// spotBookFetcher resolves a (base, quote) pair to its index in the venue's
// spot listing, reads the L2 order book and computes mid = (best bid + best ask) / 2
type spotBookFetcher struct {
	responsePoster aggregator.ResponsePoster
	networkAddress string
}

// NewSpotBookFetcher will create a new spotBookFetcher instance
func NewSpotBookFetcher(args ArgsSpotBookFetcher) (*spotBookFetcher, error) {
	if args.ResponsePoster == nil {
		return nil, errNilResponsePoster
	}
	if len(args.NetworkAddress) == 0 {
		return nil, errEmptyNetworkAddress
	}

	return &spotBookFetcher{
		responsePoster: args.ResponsePoster,
		networkAddress: args.NetworkAddress,
	}, nil
}

// Name returns the name of the fetcher
func (fetcher *spotBookFetcher) Name() string {
	return HLSpotName
}

// FetchMid returns the order-book mid price of the provided spot pair
func (fetcher *spotBookFetcher) FetchMid(ctx context.Context, base string, quote string) (float64, error) {
	pairIndex, err := fetcher.pairIndex(ctx, base, quote)
	if err != nil {
		return 0, err
	}

	request := infoRequest{
		Type: l2BookRequestType,
		Coin: fmt.Sprintf("@%d", pairIndex),
	}
	response := l2BookResponse{}
	err = fetcher.responsePoster.Post(ctx, fetcher.networkAddress, &request, &response)
	if err != nil {
		return 0, err
	}

	if len(response.Levels) < 2 || len(response.Levels[0]) == 0 || len(response.Levels[1]) == 0 {
		return 0, fmt.Errorf("%w for pair %s/%s", aggregator.ErrNoLiquidity, base, quote)
	}

	bestBid, err := strconv.ParseFloat(response.Levels[0][0].Px, 64)
	if err != nil {
		return 0, fmt.Errorf("%w, %s", errInvalidResponseData, err.Error())
	}
	bestAsk, err := strconv.ParseFloat(response.Levels[1][0].Px, 64)
	if err != nil {
		return 0, fmt.Errorf("%w, %s", errInvalidResponseData, err.Error())
	}
	if bestBid <= 0 || bestAsk <= 0 {
		return 0, fmt.Errorf("%w, non-positive best bid or ask for pair %s/%s", errInvalidResponseData, base, quote)
	}

	return (bestBid + bestAsk) / 2, nil
}

// pairIndex resolves the index of the (base, quote) pair in the venue's spot
// listing by matching the token indices from the spot metadata
func (fetcher *spotBookFetcher) pairIndex(ctx context.Context, base string, quote string) (int, error) {
	request := infoRequest{Type: spotMetaRequestType}
	response := spotMetaResponse{}
	err := fetcher.responsePoster.Post(ctx, fetcher.networkAddress, &request, &response)
	if err != nil {
		return 0, err
	}

	baseIndex, foundBase := tokenIndex(response.Tokens, base)
	quoteIndex, foundQuote := tokenIndex(response.Tokens, quote)
	if !foundBase || !foundQuote {
		return 0, fmt.Errorf("%w, pair %s/%s", aggregator.ErrPairNotFound, base, quote)
	}

	for _, pair := range response.Universe {
		if pair.Tokens[0] == baseIndex && pair.Tokens[1] == quoteIndex {
			return pair.Index, nil
		}
	}

	return 0, fmt.Errorf("%w, pair %s/%s", aggregator.ErrPairNotFound, base, quote)
}

func tokenIndex(tokens []spotToken, name string) (int, bool) {
	for _, token := range tokens {
		if token.Name == name {
			return token.Index, true
		}
	}

	return 0, false
}

// IsInterfaceNil returns true if there is no value under the interface
func (fetcher *spotBookFetcher) IsInterfaceNil() bool {
	return fetcher == nil
}
