// Package config defines the data structures related to configuration and
// includes functions for loading and processing the config.
package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
)

// Mortgage indicates a mortgage and its parameters.
type Mortgage struct {
	Name               string
	Principal          float64
	TermYears          int
	AnnualInterestRate float64
	Type               string

	// ParsedType and Result are populated by ProcessMortgages.
	ParsedType mortgage.Type    `mapstructure:"-" yaml:"-"`
	Result     *mortgage.Result `mapstructure:"-" yaml:"-"`
}

// ProcessMortgages validates every configured mortgage and computes its
// payment figures. Unlike ValidateConfiguration's warnings these checks are
// hard failures; the first invalid entry aborts processing.
func (conf *Configuration) ProcessMortgages(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for i := range conf.Mortgages {
		m := &conf.Mortgages[i]

		if m.Name == "" {
			return fmt.Errorf("mortgage %d has no name", i)
		}
		if m.Principal <= 0 {
			return fmt.Errorf("mortgage '%s' has non-positive principal %.2f", m.Name, m.Principal)
		}
		if m.TermYears <= 0 {
			return fmt.Errorf("mortgage '%s' has non-positive term %d", m.Name, m.TermYears)
		}
		if m.AnnualInterestRate < 0 {
			return fmt.Errorf("mortgage '%s' has negative interest rate %.2f", m.Name, m.AnnualInterestRate)
		}

		parsedType, err := mortgage.ParseType(m.Type)
		if err != nil {
			return fmt.Errorf("mortgage '%s': %w", m.Name, err)
		}
		m.ParsedType = parsedType

		result := mortgage.Calculate(mortgage.Input{
			Principal:         m.Principal,
			TermYears:         m.TermYears,
			AnnualRatePercent: m.AnnualInterestRate,
			Type:              parsedType,
		})
		m.Result = &result

		logger.Debug(fmt.Sprintf("computed mortgage %s: monthly %.2f total %.2f",
			m.Name, result.MonthlyPayment, result.TotalPayment),
			zap.String("op", "config.ProcessMortgages"),
		)
	}

	return nil
}

// NumberOfPayments returns the number of monthly payments over the term.
func (m *Mortgage) NumberOfPayments() int {
	return mortgage.NumberOfPayments(m.TermYears)
}
