package notifees

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/feusd-io/hip3-oracles-go/aggregator"
	"github.com/feusd-io/hip3-oracles-go/tools/wallet"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

const setOracleActionType = "perpDeploySetOracle"
const statusOk = "ok"

// ArgsExchangeClient is the argument DTO for the NewExchangeClient function
type ArgsExchangeClient struct {
	ResponsePoster aggregator.ResponsePoster
	NetworkAddress string
	Wallet         wallet.Wallet
}

type setOracleAction struct {
	Type      string      `json:"type"`
	Dex       string      `json:"dex"`
	OraclePxs [][2]string `json:"oraclePxs"`
}

type actionSignature struct {
	R string `json:"r"`
	S string `json:"s"`
	V byte   `json:"v"`
}

type exchangeRequest struct {
	Action    setOracleAction `json:"action"`
	Nonce     int64           `json:"nonce"`
	Signature actionSignature `json:"signature"`
}

type exchangeResponse struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

// exchangeClient signs set-oracle actions with the feeder wallet and posts
// them to the exchange endpoint
type exchangeClient struct {
	responsePoster aggregator.ResponsePoster
	networkAddress string
	wallet         wallet.Wallet
}

// NewExchangeClient will create a new exchangeClient instance
func NewExchangeClient(args ArgsExchangeClient) (*exchangeClient, error) {
	if args.ResponsePoster == nil {
		return nil, errNilResponsePoster
	}
	if len(args.NetworkAddress) == 0 {
		return nil, errEmptyNetworkAddress
	}
	if check.IfNil(args.Wallet) {
		return nil, errNilWallet
	}

	return &exchangeClient{
		responsePoster: args.ResponsePoster,
		networkAddress: args.NetworkAddress,
		wallet:         args.Wallet,
	}, nil
}

// SubmitOracleUpdate signs and posts a set-oracle action holding the provided
// (oracle key, price) tuples
func (client *exchangeClient) SubmitOracleUpdate(ctx context.Context, dex string, oraclePrices [][2]string) error {
	action := setOracleAction{
		Type:      setOracleActionType,
		Dex:       dex,
		OraclePxs: oraclePrices,
	}

	nonce := time.Now().UnixMilli()
	signature, err := client.signAction(action, nonce)
	if err != nil {
		return err
	}

	request := exchangeRequest{
		Action:    action,
		Nonce:     nonce,
		Signature: signature,
	}

	response := exchangeResponse{}
	err = client.responsePoster.Post(ctx, client.networkAddress, &request, &response)
	if err != nil {
		return err
	}

	if response.Status != statusOk {
		return fmt.Errorf("%w, status %s, response %s", errSubmissionRejected, response.Status, string(response.Response))
	}

	return nil
}

func (client *exchangeClient) signAction(action setOracleAction, nonce int64) (actionSignature, error) {
	payload, err := json.Marshal(&action)
	if err != nil {
		return actionSignature{}, err
	}

	nonceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBytes, uint64(nonce))
	digest := crypto.Keccak256(payload, nonceBytes)

	signature, err := client.wallet.Sign(digest)
	if err != nil {
		return actionSignature{}, err
	}

	return actionSignature{
		R: hexutil.Encode(signature[:32]),
		S: hexutil.Encode(signature[32:64]),
		V: signature[64] + 27,
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (client *exchangeClient) IsInterfaceNil() bool {
	return client == nil
}
