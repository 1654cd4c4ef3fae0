package notifees

import (
	"context"
)

// ExchangeClient defines the component able to submit a signed set-oracle
// action to the HIP-3 exchange endpoint
type ExchangeClient interface {
	SubmitOracleUpdate(ctx context.Context, dex string, oraclePrices [][2]string) error
	IsInterfaceNil() bool
}
