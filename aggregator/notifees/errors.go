package notifees

import "errors"

var (
	errNilExchangeClient   = errors.New("nil exchange client")
	errNilResponsePoster   = errors.New("nil response poster")
	errNilWallet           = errors.New("nil wallet")
	errEmptyDexHandle      = errors.New("empty dex handle")
	errEmptyNetworkAddress = errors.New("empty network address")
	errNilCycleResult      = errors.New("nil cycle result")
	errSubmissionRejected  = errors.New("oracle submission rejected")
)
