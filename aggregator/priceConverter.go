package aggregator

// BaseStablePrice converts a base/USD price into a base/stablecoin price using
// the stablecoin's USD factor: result = baseUsdPrice / fx.UsdFactor.
// No rounding is applied here, truncation to the pair's decimals happens at
// the call site
func BaseStablePrice(baseUsdPrice float64, fx FxFactor) (float64, error) {
	if fx.UsdFactor <= 0 {
		return 0, ErrDivisionByZero
	}

	return baseUsdPrice / fx.UsdFactor, nil
}
