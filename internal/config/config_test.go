package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	if tables.AcquisitionTax.Tier1Price >= tables.AcquisitionTax.Tier2Price {
		t.Errorf("tier prices out of order: %d >= %d",
			tables.AcquisitionTax.Tier1Price, tables.AcquisitionTax.Tier2Price)
	}
	if got := len(tables.BrokerageFee); got != 5 {
		t.Errorf("brokerage table has %d brackets, expected 5", got)
	}
	if got := len(tables.CapitalGains.Brackets); got != 8 {
		t.Errorf("capital gains table has %d brackets, expected 8", got)
	}
	if tables.LoanTermYears != 30 {
		t.Errorf("LoanTermYears = %d, expected 30", tables.LoanTermYears)
	}
}

func TestDefaultTablesValidate(t *testing.T) {
	conf := DefaultConfiguration()
	if warnings := conf.ValidateTables(); len(warnings) != 0 {
		t.Errorf("default tables produced warnings: %v", warnings)
	}
}

func TestLoadConfiguration(t *testing.T) {
	t.Run("Empty path returns defaults", func(t *testing.T) {
		conf, err := LoadConfiguration("")
		if err != nil {
			t.Fatalf("LoadConfiguration() error: %v", err)
		}
		if conf.Tables.Didimdol.BaseRate != 0.027 {
			t.Errorf("Didimdol.BaseRate = %v, expected default 0.027", conf.Tables.Didimdol.BaseRate)
		}
	})

	t.Run("Overlay keeps untouched defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
tables:
  didimdol:
    baserate: 0.03
logging:
  level: debug
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		conf, err := LoadConfiguration(path)
		if err != nil {
			t.Fatalf("LoadConfiguration() error: %v", err)
		}
		if conf.Tables.Didimdol.BaseRate != 0.03 {
			t.Errorf("Didimdol.BaseRate = %v, expected overridden 0.03", conf.Tables.Didimdol.BaseRate)
		}
		// Keys absent from the file keep their compiled-in values.
		if conf.Tables.Didimdol.NewlywedRate != 0.021 {
			t.Errorf("Didimdol.NewlywedRate = %v, expected default 0.021", conf.Tables.Didimdol.NewlywedRate)
		}
		if conf.Tables.Newborn.LoanLimit != 500_000_000 {
			t.Errorf("Newborn.LoanLimit = %d, expected default 500M", conf.Tables.Newborn.LoanLimit)
		}
		if conf.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Errorf("expected an error for a missing file")
		}
	})
}

func TestValidateTablesWarnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{
			name:   "Tier prices inverted",
			mutate: func(t *Tables) { t.AcquisitionTax.Tier1Price = t.AcquisitionTax.Tier2Price },
		},
		{
			name:   "Brokerage table empty",
			mutate: func(t *Tables) { t.BrokerageFee = nil },
		},
		{
			name:   "Brokerage table all bounded",
			mutate: func(t *Tables) { t.BrokerageFee = t.BrokerageFee[:2] },
		},
		{
			name: "Brokerage brackets out of order",
			mutate: func(t *Tables) {
				t.BrokerageFee[0].UpperBound, t.BrokerageFee[1].UpperBound =
					t.BrokerageFee[1].UpperBound, t.BrokerageFee[0].UpperBound
			},
		},
		{
			name:   "LTV above one",
			mutate: func(t *Tables) { t.Didimdol.LTV = 1.7 },
		},
		{
			name:   "Zero loan term",
			mutate: func(t *Tables) { t.LoanTermYears = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			tt.mutate(&conf.Tables)
			if warnings := conf.ValidateTables(); len(warnings) == 0 {
				t.Errorf("expected a warning")
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	t.Run("First buy scenario", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		content := `
mode: first-buy
housing:
  price: 500000000
  area: 84
  region: 서울특별시
  district: 마포구
  type: apartment
buyer:
  houseCount: 0
  firstTimeBuyer: true
  income: 50000000
availableCapital: 200000000
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			t.Fatalf("LoadScenario() error: %v", err)
		}
		if scenario.Mode != ModeFirstBuy {
			t.Errorf("Mode = %q, expected %q", scenario.Mode, ModeFirstBuy)
		}
		if scenario.Housing.Price != 500_000_000 {
			t.Errorf("Housing.Price = %d, expected 500M", scenario.Housing.Price)
		}
		if !scenario.Buyer.FirstTimeBuyer {
			t.Errorf("Buyer.FirstTimeBuyer = false, expected true")
		}
		if scenario.AvailableCapital != 200_000_000 {
			t.Errorf("AvailableCapital = %d, expected 200M", scenario.AvailableCapital)
		}
	})

	t.Run("Trade up scenario with property", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		content := `
mode: trade-up
currentProperty:
  purchasePrice: 400000000
  purchaseDate: "2021-03-15"
  currentValue: 600000000
  residenceYears: 4
  residenceMonths: 10
  singleHousehold: true
housing:
  price: 1000000000
  area: 84
  regulatedArea: true
buyer:
  houseCount: 1
  income: 50000000
  spouseIncome: 40000000
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			t.Fatalf("LoadScenario() error: %v", err)
		}
		if scenario.CurrentProperty.PurchaseDate != "2021-03-15" {
			t.Errorf("PurchaseDate = %q, expected 2021-03-15", scenario.CurrentProperty.PurchaseDate)
		}
		if !scenario.Housing.RegulatedArea {
			t.Errorf("Housing.RegulatedArea = false, expected true")
		}
	})

	t.Run("Missing mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		if err := os.WriteFile(path, []byte("housing:\n  price: 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadScenario(path); err == nil {
			t.Errorf("expected an error for a scenario without a mode")
		}
	})

	t.Run("Unknown mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		if err := os.WriteFile(path, []byte("mode: teleport\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadScenario(path); err == nil {
			t.Errorf("expected an error for an unknown mode")
		}
	})
}
