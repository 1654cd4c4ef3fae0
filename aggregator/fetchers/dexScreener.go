package fetchers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/feusd-io/hip3-oracles-go/aggregator"
)

const (
	// DexScreenerName is the name of the DEX-aggregator pool fetcher
	DexScreenerName = "DexScreener"

	tokenPairsPath = "/latest/dex/tokens/"
)

// ArgsDexScreenerFetcher is the argument DTO for the NewDexScreenerFetcher function
type ArgsDexScreenerFetcher struct {
	ResponseGetter aggregator.ResponseGetter
	NetworkAddress string
	ChainID        string
}

type dexScreenerToken struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
}

type dexScreenerLiquidity struct {
	Usd float64 `json:"usd"`
}

type dexScreenerPool struct {
	ChainID     string               `json:"chainId"`
	BaseToken   dexScreenerToken     `json:"baseToken"`
	QuoteToken  dexScreenerToken     `json:"quoteToken"`
	PriceNative string               `json:"priceNative"`
	Liquidity   dexScreenerLiquidity `json:"liquidity"`
}

type dexScreenerResponse struct {
	Pairs []dexScreenerPool `json:"pairs"`
}

// dexScreenerFetcher loads all liquidity pools pairing two token addresses,
// selects the one with maximum liquidity and derives an orientation-normalized
// mid price: the result always reads "queried token per reference token"
type dexScreenerFetcher struct {
	responseGetter aggregator.ResponseGetter
	networkAddress string
	chainID        string
}

// NewDexScreenerFetcher will create a new dexScreenerFetcher instance
func NewDexScreenerFetcher(args ArgsDexScreenerFetcher) (*dexScreenerFetcher, error) {
	if args.ResponseGetter == nil {
		return nil, errNilResponseGetter
	}
	if len(args.NetworkAddress) == 0 {
		return nil, errEmptyNetworkAddress
	}

	return &dexScreenerFetcher{
		responseGetter: args.ResponseGetter,
		networkAddress: args.NetworkAddress,
		chainID:        args.ChainID,
	}, nil
}

// Name returns the name of the fetcher
func (fetcher *dexScreenerFetcher) Name() string {
	return DexScreenerName
}

// FetchBestPoolMid returns the price of the token at tokenAddress denominated in
// the token at referenceAddress, taken from the deepest pool pairing the two
func (fetcher *dexScreenerFetcher) FetchBestPoolMid(ctx context.Context, tokenAddress string, referenceAddress string) (float64, error) {
	if !common.IsHexAddress(tokenAddress) {
		return 0, fmt.Errorf("%w, token address %s", aggregator.ErrInvalidTokenAddress, tokenAddress)
	}
	if !common.IsHexAddress(referenceAddress) {
		return 0, fmt.Errorf("%w, reference address %s", aggregator.ErrInvalidTokenAddress, referenceAddress)
	}

	token := common.HexToAddress(tokenAddress)
	reference := common.HexToAddress(referenceAddress)

	requestURL := strings.TrimSuffix(fetcher.networkAddress, "/") + tokenPairsPath + token.Hex()
	response := dexScreenerResponse{}
	err := fetcher.responseGetter.Get(ctx, requestURL, &response)
	if err != nil {
		return 0, err
	}

	bestPool, found := fetcher.selectDeepestPool(response.Pairs, token, reference)
	if !found {
		return 0, fmt.Errorf("%w pairing %s with %s", aggregator.ErrNoPoolsFound, token.Hex(), reference.Hex())
	}

	priceNative, err := strconv.ParseFloat(bestPool.PriceNative, 64)
	if err != nil {
		return 0, fmt.Errorf("%w, %s", errInvalidResponseData, err.Error())
	}
	if priceNative <= 0 {
		return 0, fmt.Errorf("%w, non-positive pool price", errInvalidResponseData)
	}

	// priceNative is quote-per-base for the pool's own orientation; invert when
	// the queried token sits on the quote side
	if common.HexToAddress(bestPool.BaseToken.Address) == token {
		return priceNative, nil
	}

	return 1 / priceNative, nil
}

func (fetcher *dexScreenerFetcher) selectDeepestPool(pools []dexScreenerPool, token common.Address, reference common.Address) (dexScreenerPool, bool) {
	bestPool := dexScreenerPool{}
	found := false
	for _, pool := range pools {
		if len(fetcher.chainID) > 0 && pool.ChainID != fetcher.chainID {
			continue
		}

		poolBase := common.HexToAddress(pool.BaseToken.Address)
		poolQuote := common.HexToAddress(pool.QuoteToken.Address)
		matchesStraight := poolBase == token && poolQuote == reference
		matchesInverted := poolBase == reference && poolQuote == token
		if !matchesStraight && !matchesInverted {
			continue
		}

		if !found || pool.Liquidity.Usd > bestPool.Liquidity.Usd {
			bestPool = pool
			found = true
		}
	}

	return bestPool, found
}

// IsInterfaceNil returns true if there is no value under the interface
func (fetcher *dexScreenerFetcher) IsInterfaceNil() bool {
	return fetcher == nil
}
