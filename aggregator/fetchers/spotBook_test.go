package fetchers

import (
	"context"
	"errors"
	"testing"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	"github.com/feusd-io/hip3-oracles-go/aggregator/mock"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spotTestNetworkAddress = "https://api.venue.test/info"

func createMockArgsSpotBookFetcher() ArgsSpotBookFetcher {
	return ArgsSpotBookFetcher{
		ResponsePoster: &mock.HttpResponsePosterStub{},
		NetworkAddress: spotTestNetworkAddress,
	}
}

func createSpotPosterStub(meta spotMetaResponse, book l2BookResponse, expectedCoin string, t *testing.T) *mock.HttpResponsePosterStub {
	return &mock.HttpResponsePosterStub{
		PostCalled: func(ctx context.Context, url string, request interface{}, response interface{}) error {
			require.Equal(t, spotTestNetworkAddress, url)

			castRequest, ok := request.(*infoRequest)
			require.True(t, ok)
			switch castRequest.Type {
			case spotMetaRequestType:
				castResponse, _ := response.(*spotMetaResponse)
				*castResponse = meta
			case l2BookRequestType:
				if len(expectedCoin) > 0 {
					require.Equal(t, expectedCoin, castRequest.Coin)
				}
				castResponse, _ := response.(*l2BookResponse)
				*castResponse = book
			default:
				require.Fail(t, "unexpected info request type "+castRequest.Type)
			}

			return nil
		},
	}
}

func createTestSpotMeta() spotMetaResponse {
	return spotMetaResponse{
		Tokens: []spotToken{
			{Name: "USDHL", Index: 12},
			{Name: "USDT0", Index: 5},
			{Name: "USDC", Index: 0},
		},
		Universe: []spotPair{
			{Name: "@107", Tokens: [2]int{5, 0}, Index: 107},
			{Name: "@166", Tokens: [2]int{12, 0}, Index: 166},
		},
	}
}

func TestNewSpotBookFetcher(t *testing.T) {
	t.Parallel()

	t.Run("nil response poster should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = nil

		fetcher, err := NewSpotBookFetcher(args)
		assert.True(t, check.IfNil(fetcher))
		assert.Equal(t, errNilResponsePoster, err)
	})
	t.Run("empty network address should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSpotBookFetcher()
		args.NetworkAddress = ""

		fetcher, err := NewSpotBookFetcher(args)
		assert.True(t, check.IfNil(fetcher))
		assert.Equal(t, errEmptyNetworkAddress, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewSpotBookFetcher(createMockArgsSpotBookFetcher())
		assert.False(t, check.IfNil(fetcher))
		assert.Nil(t, err)
		assert.Equal(t, HLSpotName, fetcher.Name())
	})
}

func TestSpotBookFetcher_FetchMid(t *testing.T) {
	t.Parallel()

	t.Run("poster errors should be returned", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = &mock.HttpResponsePosterStub{
			PostCalled: func(ctx context.Context, url string, request interface{}, response interface{}) error {
				return expectedErr
			},
		}

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "USDHL", "USDC")
		assert.Equal(t, float64(0), mid)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("unknown token should error with pair not found", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = createSpotPosterStub(createTestSpotMeta(), l2BookResponse{}, "", t)

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "FEUSD", "USDC")
		assert.Equal(t, float64(0), mid)
		assert.True(t, errors.Is(err, aggregator.ErrPairNotFound))
	})
	t.Run("listed tokens without a pair entry should error with pair not found", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = createSpotPosterStub(createTestSpotMeta(), l2BookResponse{}, "", t)

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "USDHL", "USDT0")
		assert.Equal(t, float64(0), mid)
		assert.True(t, errors.Is(err, aggregator.ErrPairNotFound))
	})
	t.Run("empty book side should error with no liquidity", func(t *testing.T) {
		t.Parallel()

		book := l2BookResponse{
			Levels: [][]bookLevel{
				{{Px: "0.9994", Sz: "1000", N: 2}},
				{},
			},
		}
		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = createSpotPosterStub(createTestSpotMeta(), book, "@166", t)

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "USDHL", "USDC")
		assert.Equal(t, float64(0), mid)
		assert.True(t, errors.Is(err, aggregator.ErrNoLiquidity))
	})
	t.Run("unparsable price level should error", func(t *testing.T) {
		t.Parallel()

		book := l2BookResponse{
			Levels: [][]bookLevel{
				{{Px: "not-a-number", Sz: "1000", N: 2}},
				{{Px: "0.9996", Sz: "500", N: 1}},
			},
		}
		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = createSpotPosterStub(createTestSpotMeta(), book, "@166", t)

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "USDHL", "USDC")
		assert.Equal(t, float64(0), mid)
		assert.True(t, errors.Is(err, errInvalidResponseData))
	})
	t.Run("should compute the mid from the best bid and ask", func(t *testing.T) {
		t.Parallel()

		book := l2BookResponse{
			Coin: "@166",
			Levels: [][]bookLevel{
				{{Px: "0.9994", Sz: "1000", N: 2}, {Px: "0.9990", Sz: "5000", N: 4}},
				{{Px: "0.9996", Sz: "800", N: 1}, {Px: "0.9999", Sz: "2000", N: 3}},
			},
		}
		args := createMockArgsSpotBookFetcher()
		args.ResponsePoster = createSpotPosterStub(createTestSpotMeta(), book, "@166", t)

		fetcher, _ := NewSpotBookFetcher(args)
		mid, err := fetcher.FetchMid(context.Background(), "USDHL", "USDC")
		require.Nil(t, err)
		assert.InDelta(t, 0.9995, mid, 1e-12)
	})
}
