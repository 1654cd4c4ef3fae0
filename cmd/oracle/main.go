package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	apiGin "github.com/feusd-io/hip3-oracles-go/aggregator/api/gin"
	"github.com/feusd-io/hip3-oracles-go/aggregator/fetchers"
	"github.com/feusd-io/hip3-oracles-go/aggregator/notifees"
	"github.com/feusd-io/hip3-oracles-go/config"
	"github.com/feusd-io/hip3-oracles-go/tools/wallet"
	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
	"github.com/multiversx/mx-sdk-go/core/polling"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "hip3-oracle"
)

var log = logger.GetOrCreate("priceFeeder/main")

// appVersion should be populated at build time using ldflags
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = "undefined"

// fileLoggingHandler defines the lifecycle operations of the file logging component
type fileLoggingHandler interface {
	ChangeFileLifeSpan(newDuration time.Duration, newSizeInMB uint64) error
	Close() error
	IsInterfaceNil() bool
}

func main() {
	app := cli.NewApp()
	app.Name = "HIP-3 oracle price feeder"
	app.Usage = "Resolves BTC/stablecoin prices through the RedStone, spot order-book and " +
		"DEX-aggregator fallback chain, and pushes them to the HIP-3 oracle"
	app.Flags = getFlags()
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Authors = []cli.Author{
		{
			Name:  "The FeUSD Team",
			Email: "contact@feusd.io",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startFeeder(c, app.Version)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startFeeder(ctx *cli.Context, version string) error {
	flagsConfig := getFlagsConfig(ctx)

	fileLogging, errLogger := attachFileLogger(log, flagsConfig)
	if errLogger != nil {
		return errLogger
	}

	log.Info("starting oracle price feeder", "version", version, "pid", os.Getpid())

	err := logger.SetLogLevel(flagsConfig.LogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		logsCfg := cfg.GeneralConfig.Logs
		timeLogLifeSpan := time.Second * time.Duration(logsCfg.LogFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logsCfg.LogFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	for symbol, address := range cfg.EvmAddresses {
		log.Info("read EVM address mapping", "symbol", symbol, "address", address)
	}

	feederWallet, err := createWallet(cfg)
	if err != nil {
		return err
	}
	log.Info("feeder wallet loaded", "address", feederWallet.Address().Hex())

	httpResponseGetter, err := aggregator.NewHttpResponseGetter()
	if err != nil {
		return err
	}

	httpResponsePoster, err := aggregator.NewHttpResponsePoster()
	if err != nil {
		return err
	}

	sourceClients, err := fetchers.NewSourceClients(fetchers.ArgsSourceClients{
		ResponseGetter:      httpResponseGetter,
		ResponsePoster:      httpResponsePoster,
		RedStoneEndpoints:   cfg.RedStone.Endpoints,
		RedStoneMaxAttempts: cfg.RedStone.MaxAttempts,
		RedStoneBaseBackoff: time.Millisecond * time.Duration(cfg.RedStone.BaseBackoffInMillis),
		SpotNetworkAddress:  cfg.HLSpot.NetworkAddress,
		ScreenerAddress:     cfg.DexScreener.NetworkAddress,
		ScreenerChainID:     cfg.DexScreener.ChainID,
	})
	if err != nil {
		return err
	}

	fxResolver, err := aggregator.NewStableFxResolver(aggregator.ArgsStableFxResolver{
		SpotFetcher:  sourceClients.Spot,
		PoolFetcher:  sourceClients.Pool,
		EvmAddresses: cfg.EvmAddresses,
		UsdReference: cfg.GeneralConfig.UsdReference,
		CacheTTL:     time.Second * time.Duration(cfg.GeneralConfig.FxCacheTTLInSeconds),
	})
	if err != nil {
		return err
	}

	exchangeClient, err := notifees.NewExchangeClient(notifees.ArgsExchangeClient{
		ResponsePoster: httpResponsePoster,
		NetworkAddress: cfg.GeneralConfig.ExchangeAddress,
		Wallet:         feederWallet,
	})
	if err != nil {
		return err
	}

	hip3Notifee, err := notifees.NewHip3Notifee(notifees.ArgsHip3Notifee{
		Exchange: exchangeClient,
		Dex:      cfg.GeneralConfig.DexHandle,
	})
	if err != nil {
		return err
	}

	argsOrchestrator := aggregator.ArgsUpdateOrchestrator{
		Pairs:        make([]*aggregator.ArgsTargetPair, 0, len(cfg.Pairs)),
		BaseSymbol:   cfg.GeneralConfig.BaseSymbol,
		BatchFetcher: sourceClients.Batch,
		FxResolver:   fxResolver,
		Notifee:      hip3Notifee,
		CycleTimeout: time.Second * time.Duration(cfg.GeneralConfig.CycleTimeoutInSeconds),
	}
	for _, pair := range cfg.Pairs {
		argsOrchestrator.Pairs = append(argsOrchestrator.Pairs, &aggregator.ArgsTargetPair{
			Base:            pair.Base,
			Quote:           pair.Quote,
			OracleKey:       pair.OracleKey,
			Decimals:        pair.Decimals,
			PreferredQuotes: pair.PreferredQuotes,
		})
	}

	orchestrator, err := aggregator.NewUpdateOrchestrator(argsOrchestrator)
	if err != nil {
		return err
	}

	argsPollingHandler := polling.ArgsPollingHandler{
		Log:              log,
		Name:             "oracle update cycle polling handler",
		PollingInterval:  time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		PollingWhenError: time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		Executor:         orchestrator,
	}

	pollingHandler, err := polling.NewPollingHandler(argsPollingHandler)
	if err != nil {
		return err
	}

	httpServerWrapper, err := apiGin.NewWebServerHandler(flagsConfig.RestApiInterface, orchestrator)
	if err != nil {
		return err
	}

	err = httpServerWrapper.StartHttpServer()
	if err != nil {
		return err
	}

	log.Info("starting update cycles", "dex", cfg.GeneralConfig.DexHandle, "pairs", len(cfg.Pairs))

	err = pollingHandler.StartProcessingLoop()
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("application closing, closing polling handler...")

	err = httpServerWrapper.Close()
	if err != nil {
		log.Error("error closing web server", "error", err.Error())
	}

	return pollingHandler.Close()
}

func loadConfig(filepath string) (config.PriceFeederConfig, error) {
	cfg := config.PriceFeederConfig{}
	err := chainCore.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return config.PriceFeederConfig{}, err
	}

	return cfg, nil
}

func createWallet(cfg config.PriceFeederConfig) (wallet.Wallet, error) {
	if len(cfg.GeneralConfig.PrivateKeyHex) > 0 {
		return wallet.NewWalletFromHexKey(cfg.GeneralConfig.PrivateKeyHex)
	}

	mnemonic, err := os.ReadFile(cfg.GeneralConfig.WalletMnemonicFile)
	if err != nil {
		return nil, err
	}

	return wallet.NewWalletFromMnemonic(strings.TrimSpace(string(mnemonic)), "")
}

func attachFileLogger(log logger.Logger, flagsConfig config.ContextFlagsConfig) (fileLoggingHandler, error) {
	var fileLogging fileLoggingHandler
	var err error
	if flagsConfig.SaveLogFile {
		args := file.ArgsFileLogging{
			WorkingDir:      flagsConfig.WorkingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		fileLogging, err = file.NewFileLogging(args)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	logLevelFlagValue := flagsConfig.LogLevel
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return nil, err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return nil, err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return nil, err
		}
	}
	log.Trace("logger updated", "level", logLevelFlagValue, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return fileLogging, nil
}
