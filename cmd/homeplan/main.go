package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jwpark-dev/homeplan/internal/calc"
	"github.com/jwpark-dev/homeplan/internal/config"
	"github.com/jwpark-dev/homeplan/internal/simulation"
	"github.com/jwpark-dev/homeplan/pkg/constants"
	"github.com/jwpark-dev/homeplan/pkg/datetime"
	"github.com/jwpark-dev/homeplan/pkg/output"
	"github.com/jwpark-dev/homeplan/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to rate table configuration file")
	scenarioLocation := flag.String("scenario", "", "path to scenario file describing the calculation")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateTables() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *scenarioLocation == "" {
		logger.Fatal("no scenario file given; use -scenario",
			zap.String("op", "main"),
		)
	}
	scenario, err := config.LoadScenario(*scenarioLocation)
	if err != nil {
		logger.Fatal("failed to load scenario",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result, err := runScenario(conf.Tables, scenario, logger)
	if err != nil {
		logger.Fatal("scenario failed",
			zap.String("op", "main"),
			zap.String("mode", scenario.Mode),
			zap.Error(err),
		)
	}

	if outputFormat == constants.OutputFormatJSON {
		if err := output.JSONFormat(os.Stdout, result); err != nil {
			logger.Fatal("failed to encode result",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}
	if scenario.Mode != config.ModeCapitalGains {
		output.PrettyListing(os.Stdout, scenarioHousing(scenario))
	}
	prettyPrint(result)
}

// runScenario dispatches on the scenario mode and returns the raw result for
// the output layer.
func runScenario(tables config.Tables, scenario *config.Scenario, logger *zap.Logger) (any, error) {
	calculator := calc.New(tables, logger)
	sim := simulation.New(calculator, logger)

	housing := scenarioHousing(scenario)
	buyer := calc.Buyer{
		HouseCount:     scenario.Buyer.HouseCount,
		FirstTimeBuyer: scenario.Buyer.FirstTimeBuyer,
		Newlywed:       scenario.Buyer.Newlywed,
		ChildCount:     scenario.Buyer.ChildCount,
		ExpectingChild: scenario.Buyer.ExpectingChild,
		Income:         scenario.Buyer.Income,
		SpouseIncome:   scenario.Buyer.SpouseIncome,
	}

	needsPurchase := scenario.Mode != config.ModeCapitalGains
	if needsPurchase {
		if err := validation.ValidateHousing(housing); err != nil {
			return nil, err
		}
		if err := validation.ValidateBuyer(buyer); err != nil {
			return nil, err
		}
	}

	switch scenario.Mode {
	case config.ModeAcquisitionTax:
		return calculator.AcquisitionTax(housing, buyer), nil
	case config.ModeBrokerageFee:
		return calculator.BrokerageFee(housing.Price), nil
	case config.ModeTotalCost:
		return calculator.TotalCost(housing, buyer), nil
	case config.ModeLoans:
		return calculator.AllLoans(housing, buyer), nil
	case config.ModeRecommend:
		offers := calculator.AllLoans(housing, buyer)
		return calculator.Recommend(offers, scenario.TargetAmount), nil
	case config.ModeCapitalGains:
		property, err := scenarioProperty(scenario.CurrentProperty)
		if err != nil {
			return nil, err
		}
		return calculator.SaleResult(property), nil
	case config.ModeFirstBuy:
		return sim.FirstBuy(simulation.FirstBuyInput{
			Housing:          housing,
			Buyer:            buyer,
			AvailableCapital: scenario.AvailableCapital,
		}), nil
	case config.ModeTradeUp:
		property, err := scenarioProperty(scenario.CurrentProperty)
		if err != nil {
			return nil, err
		}
		return sim.TradeUp(simulation.TradeUpInput{
			CurrentProperty: property,
			NewHousing:      housing,
			Buyer:           buyer,
		}), nil
	}
	return nil, fmt.Errorf("unknown scenario mode %q", scenario.Mode)
}

func scenarioHousing(scenario *config.Scenario) calc.Housing {
	return calc.Housing{
		Price:         scenario.Housing.Price,
		Area:          scenario.Housing.Area,
		Region:        scenario.Housing.Region,
		District:      scenario.Housing.District,
		RegulatedArea: scenario.Housing.RegulatedArea,
		Type:          calc.HousingType(scenario.Housing.Type),
	}
}

func scenarioProperty(sp config.ScenarioProperty) (calc.PropertyForSale, error) {
	purchaseDate, err := datetime.ParseDate(sp.PurchaseDate)
	if err != nil {
		return calc.PropertyForSale{}, fmt.Errorf("invalid purchaseDate: %w", err)
	}
	property := calc.PropertyForSale{
		PurchasePrice:   sp.PurchasePrice,
		PurchaseDate:    purchaseDate,
		CurrentValue:    sp.CurrentValue,
		Area:            sp.Area,
		Region:          sp.Region,
		District:        sp.District,
		ResidenceYears:  sp.ResidenceYears,
		ResidenceMonths: sp.ResidenceMonths,
		SingleHousehold: sp.SingleHousehold,
	}
	if err := validation.ValidatePropertyForSale(property); err != nil {
		return calc.PropertyForSale{}, err
	}
	return property, nil
}

func prettyPrint(result any) {
	switch v := result.(type) {
	case calc.AcquisitionTax:
		output.PrettyAcquisitionTax(os.Stdout, v)
	case calc.BrokerageFee:
		output.PrettyBrokerageFee(os.Stdout, v)
	case calc.TotalCost:
		output.PrettyTotalCost(os.Stdout, v)
	case calc.SaleResult:
		output.PrettySaleResult(os.Stdout, v)
	case []calc.LoanOffer:
		output.PrettyLoans(os.Stdout, v)
	case calc.Recommendation:
		output.PrettyRecommendation(os.Stdout, v)
	case simulation.FirstBuyResult:
		output.PrettyFirstBuy(os.Stdout, v)
	case simulation.TradeUpResult:
		output.PrettyTradeUp(os.Stdout, v)
	}
}
