package config

// PriceFeederConfig holds the whole configuration of the oracle price feeder
type PriceFeederConfig struct {
	GeneralConfig GeneralConfig
	RedStone      RedStoneConfig
	HLSpot        HLSpotConfig
	DexScreener   DexScreenerConfig
	EvmAddresses  map[string]string
	Pairs         []PairConfig
}

// GeneralConfig holds the general feeder parameters
type GeneralConfig struct {
	ExchangeAddress       string
	DexHandle             string
	BaseSymbol            string
	UsdReference          string
	PrivateKeyHex         string
	WalletMnemonicFile    string
	PollIntervalInSeconds uint32
	CycleTimeoutInSeconds uint32
	FxCacheTTLInSeconds   uint32
	Logs                  LogsConfig
}

// LogsConfig holds the file logging parameters
type LogsConfig struct {
	LogFileLifeSpanInSec int
	LogFileLifeSpanInMB  int
}

// RedStoneConfig holds the batch-quote gateway parameters
type RedStoneConfig struct {
	Endpoints           []string
	MaxAttempts         uint32
	BaseBackoffInMillis uint32
}

// HLSpotConfig holds the spot order-book source parameters
type HLSpotConfig struct {
	NetworkAddress string
}

// DexScreenerConfig holds the DEX-aggregator source parameters
type DexScreenerConfig struct {
	NetworkAddress string
	ChainID        string
}

// PairConfig describes one target pair to price and push
type PairConfig struct {
	Base            string
	Quote           string
	OracleKey       string
	Decimals        uint64
	PreferredQuotes []string
}

// ContextFlagsConfig holds the values parsed from the command line flags
type ContextFlagsConfig struct {
	WorkingDir        string
	LogLevel          string
	ConfigurationFile string
	SaveLogFile       bool
	EnableLogName     bool
	DisableAnsiColor  bool
	RestApiInterface  string
}
