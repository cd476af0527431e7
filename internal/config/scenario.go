package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario modes accepted in a scenario file.
const (
	ModeAcquisitionTax = "acquisition-tax"
	ModeBrokerageFee   = "brokerage-fee"
	ModeCapitalGains   = "capital-gains"
	ModeTotalCost      = "total-cost"
	ModeLoans          = "loans"
	ModeRecommend      = "recommend"
	ModeFirstBuy       = "first-buy"
	ModeTradeUp        = "trade-up"
)

var validModes = map[string]bool{
	ModeAcquisitionTax: true,
	ModeBrokerageFee:   true,
	ModeCapitalGains:   true,
	ModeTotalCost:      true,
	ModeLoans:          true,
	ModeRecommend:      true,
	ModeFirstBuy:       true,
	ModeTradeUp:        true,
}

// Scenario describes one calculation request loaded from a YAML file. Which
// sections are required depends on the mode; dates are plain "2006-01-02"
// strings.
type Scenario struct {
	Mode             string           `mapstructure:"mode"`
	Housing          ScenarioHousing  `mapstructure:"housing"`
	Buyer            ScenarioBuyer    `mapstructure:"buyer"`
	CurrentProperty  ScenarioProperty `mapstructure:"currentProperty"`
	AvailableCapital int64            `mapstructure:"availableCapital"`
	TargetAmount     int64            `mapstructure:"targetAmount"`
}

// ScenarioHousing is the listing section of a scenario file.
type ScenarioHousing struct {
	Price         int64   `mapstructure:"price"`
	Area          float64 `mapstructure:"area"`
	Region        string  `mapstructure:"region"`
	District      string  `mapstructure:"district"`
	RegulatedArea bool    `mapstructure:"regulatedArea"`
	Type          string  `mapstructure:"type"`
}

// ScenarioBuyer is the buyer section of a scenario file.
type ScenarioBuyer struct {
	HouseCount     int   `mapstructure:"houseCount"`
	FirstTimeBuyer bool  `mapstructure:"firstTimeBuyer"`
	Newlywed       bool  `mapstructure:"newlywed"`
	ChildCount     int   `mapstructure:"childCount"`
	ExpectingChild bool  `mapstructure:"expectingChild"`
	Income         int64 `mapstructure:"income"`
	SpouseIncome   int64 `mapstructure:"spouseIncome"`
}

// ScenarioProperty is the currently-owned property section of a scenario file.
type ScenarioProperty struct {
	PurchasePrice   int64   `mapstructure:"purchasePrice"`
	PurchaseDate    string  `mapstructure:"purchaseDate"`
	CurrentValue    int64   `mapstructure:"currentValue"`
	Area            float64 `mapstructure:"area"`
	Region          string  `mapstructure:"region"`
	District        string  `mapstructure:"district"`
	ResidenceYears  int     `mapstructure:"residenceYears"`
	ResidenceMonths int     `mapstructure:"residenceMonths"`
	SingleHousehold bool    `mapstructure:"singleHousehold"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var scenario Scenario
	if err := v.Unmarshal(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if scenario.Mode == "" {
		return nil, fmt.Errorf("scenario file %s has no mode", path)
	}
	if !validModes[scenario.Mode] {
		return nil, fmt.Errorf("unknown scenario mode %q", scenario.Mode)
	}
	return &scenario, nil
}
