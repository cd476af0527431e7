// Package calc implements the tax, fee, and loan arithmetic at the heart of
// homeplan. Every method is a pure function over its inputs and the rate
// tables held by the Calculator; ineligibility and non-exemption are result
// values, never errors.
package calc

import (
	"github.com/jwpark-dev/homeplan/internal/config"
	"go.uber.org/zap"
)

// Calculator evaluates taxes, fees, and loan products against a set of rate
// tables. It carries no mutable state and is safe for concurrent use.
type Calculator struct {
	tables config.Tables
	logger *zap.Logger
}

// New constructs a Calculator over the given tables.
func New(tables config.Tables, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{tables: tables, logger: logger}
}

// NewWithDefaults constructs a Calculator over the compiled-in tables.
func NewWithDefaults(logger *zap.Logger) *Calculator {
	return New(config.DefaultTables(), logger)
}

// Tables returns the rate tables in use.
func (c *Calculator) Tables() config.Tables {
	return c.tables
}
