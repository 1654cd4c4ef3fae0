package aggregator

// PriceSource identifies which tier of the fallback chain produced a value
type PriceSource string

const (
	// SourceRedStone marks values fetched from the RedStone batch-quote gateways
	SourceRedStone PriceSource = "RedStone"
	// SourceSpotBook marks values derived from a spot order-book mid
	SourceSpotBook PriceSource = "SpotBook"
	// SourceAggregator marks values derived from a DEX-aggregator liquidity pool
	SourceAggregator PriceSource = "Aggregator"
	// SourcePeg marks the 1.0 peg fallback used when no live data was found
	SourcePeg PriceSource = "Peg"
)

// PriceQuote holds one resolved USD quote for a symbol. Instances are created
// fresh on each resolution call and never mutated
type PriceQuote struct {
	Symbol    string
	Value     float64
	Source    PriceSource
	Timestamp int64
}

// FxFactor represents "1 unit of stablecoin = UsdFactor USD". A factor of
// exactly 1.0 tagged SourcePeg means no live data was found
type FxFactor struct {
	Stablecoin string
	UsdFactor  float64
	Source     PriceSource
}

// PairResult holds the outcome of pricing a single target pair inside one
// update cycle
type PairResult struct {
	Base      string      `json:"base"`
	Quote     string      `json:"quote"`
	OracleKey string      `json:"oracleKey"`
	Price     float64     `json:"price"`
	Decimals  uint64      `json:"decimals"`
	Source    PriceSource `json:"source"`
	Timestamp int64       `json:"timestamp"`
	Err       error       `json:"-"`
}

// CycleResult is the result set of one full update cycle, handed to the
// oracle-submission notifee
type CycleResult struct {
	ID           string        `json:"id"`
	BaseSymbol   string        `json:"baseSymbol"`
	BaseUsdPrice float64       `json:"baseUsdPrice"`
	Timestamp    int64         `json:"timestamp"`
	Pairs        []*PairResult `json:"pairs"`
}
