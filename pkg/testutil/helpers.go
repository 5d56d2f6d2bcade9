// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-calculator/internal/config"
)

// FindMortgage finds a mortgage by name in the configured slice.
// Returns a pointer to the mortgage if found, nil otherwise.
func FindMortgage(mortgages []config.Mortgage, name string) *config.Mortgage {
	for i := range mortgages {
		if mortgages[i].Name == name {
			return &mortgages[i]
		}
	}
	return nil
}
