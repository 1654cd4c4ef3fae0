package fetchers

import "errors"

var (
	errNilResponseGetter   = errors.New("nil response getter")
	errNilResponsePoster   = errors.New("nil response poster")
	errEmptyEndpointsList  = errors.New("empty endpoints list")
	errInvalidMaxAttempts  = errors.New("invalid max attempts value")
	errInvalidBaseBackoff  = errors.New("invalid base backoff value")
	errEmptyNetworkAddress = errors.New("empty network address")
	errEmptySymbolsList    = errors.New("empty symbols list")
	errInvalidResponseData = errors.New("invalid response data")
)
