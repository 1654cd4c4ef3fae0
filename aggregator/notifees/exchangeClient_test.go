package notifees

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/feusd-io/hip3-oracles-go/aggregator/mock"
	"github.com/feusd-io/hip3-oracles-go/tools/wallet"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walletSk = "8734062c1158f26a3ca8a4a0da87b527a7c168653f7f4c77045e5cf571497d9d"

func createMockArgsExchangeClient() ArgsExchangeClient {
	feederWallet, _ := wallet.NewWalletFromHexKey(walletSk)

	return ArgsExchangeClient{
		ResponsePoster: &mock.HttpResponsePosterStub{},
		NetworkAddress: "https://api.venue.test/exchange",
		Wallet:         feederWallet,
	}
}

func TestNewExchangeClient(t *testing.T) {
	t.Parallel()

	t.Run("nil response poster should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		args.ResponsePoster = nil

		client, err := NewExchangeClient(args)
		assert.True(t, check.IfNil(client))
		assert.Equal(t, errNilResponsePoster, err)
	})
	t.Run("empty network address should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		args.NetworkAddress = ""

		client, err := NewExchangeClient(args)
		assert.True(t, check.IfNil(client))
		assert.Equal(t, errEmptyNetworkAddress, err)
	})
	t.Run("nil wallet should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		args.Wallet = nil

		client, err := NewExchangeClient(args)
		assert.True(t, check.IfNil(client))
		assert.Equal(t, errNilWallet, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		client, err := NewExchangeClient(createMockArgsExchangeClient())
		assert.False(t, check.IfNil(client))
		assert.Nil(t, err)
	})
}

func TestExchangeClient_SubmitOracleUpdate(t *testing.T) {
	t.Parallel()

	oraclePrices := [][2]string{
		{"feusd:BTC-FEUSD", "65000.000000000000"},
		{"feusd:BTC-USDHL", "65032.500000000000"},
	}

	t.Run("poster errors should be returned", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		args.ResponsePoster = &mock.HttpResponsePosterStub{
			PostCalled: func(ctx context.Context, url string, request interface{}, response interface{}) error {
				return expectedErr
			},
		}

		client, _ := NewExchangeClient(args)
		err := client.SubmitOracleUpdate(context.Background(), "feusd", oraclePrices)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("rejected submission should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		args.ResponsePoster = &mock.HttpResponsePosterStub{
			PostCalled: func(ctx context.Context, url string, request interface{}, response interface{}) error {
				cast, _ := response.(*exchangeResponse)
				cast.Status = "err"
				cast.Response = json.RawMessage(`"Unknown dex"`)
				return nil
			},
		}

		client, _ := NewExchangeClient(args)
		err := client.SubmitOracleUpdate(context.Background(), "feusd", oraclePrices)
		assert.True(t, errors.Is(err, errSubmissionRejected))
		assert.Contains(t, err.Error(), "Unknown dex")
	})
	t.Run("should post a well-formed, recoverably signed action", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsExchangeClient()
		feederWallet, err := wallet.NewWalletFromHexKey(walletSk)
		require.Nil(t, err)
		args.Wallet = feederWallet

		var capturedRequest *exchangeRequest
		args.ResponsePoster = &mock.HttpResponsePosterStub{
			PostCalled: func(ctx context.Context, url string, request interface{}, response interface{}) error {
				assert.Equal(t, args.NetworkAddress, url)

				capturedRequest, _ = request.(*exchangeRequest)
				cast, _ := response.(*exchangeResponse)
				cast.Status = statusOk
				return nil
			},
		}

		client, _ := NewExchangeClient(args)
		err = client.SubmitOracleUpdate(context.Background(), "feusd", oraclePrices)
		require.Nil(t, err)
		require.NotNil(t, capturedRequest)

		assert.Equal(t, setOracleActionType, capturedRequest.Action.Type)
		assert.Equal(t, "feusd", capturedRequest.Action.Dex)
		assert.Equal(t, oraclePrices, capturedRequest.Action.OraclePxs)
		assert.True(t, capturedRequest.Nonce > 0)

		// the exchange recovers the signer from the action digest, so must we
		payload, err := json.Marshal(&capturedRequest.Action)
		require.Nil(t, err)
		nonceBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(nonceBytes, uint64(capturedRequest.Nonce))
		digest := crypto.Keccak256(payload, nonceBytes)

		r, err := hexutil.Decode(capturedRequest.Signature.R)
		require.Nil(t, err)
		s, err := hexutil.Decode(capturedRequest.Signature.S)
		require.Nil(t, err)
		require.True(t, capturedRequest.Signature.V == 27 || capturedRequest.Signature.V == 28)

		signature := append(append(r, s...), capturedRequest.Signature.V-27)
		recoveredPub, err := crypto.SigToPub(digest, signature)
		require.Nil(t, err)
		assert.Equal(t, feederWallet.Address(), crypto.PubkeyToAddress(*recoveredPub))
	})
}
