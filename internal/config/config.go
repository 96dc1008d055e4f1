package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Cycle CycleConfig `yaml:"cycle"`
}

// CycleConfig maps account names to accounting-cycle statement
// sections. ExtraExpenseAccounts lists accounts whose debit balances
// count as expenses explicitly, instead of relying on the built-in
// supplies-used inference.
type CycleConfig struct {
	RevenueAccounts      []string `yaml:"revenue_accounts"`
	ExpenseAccounts      []string `yaml:"expense_accounts"`
	AssetAccounts        []string `yaml:"asset_accounts"`
	LiabilityAccounts    []string `yaml:"liability_accounts"`
	EquityAccounts       []string `yaml:"equity_accounts"`
	ExtraExpenseAccounts []string `yaml:"extra_expense_accounts,omitempty"`
}

// Load reads a ledgerlab.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the account mapping matching the built-in sample
// journal.
func Default() *Config {
	return &Config{
		Cycle: CycleConfig{
			RevenueAccounts:   []string{"Revenue"},
			ExpenseAccounts:   []string{"Rent Expense", "Supplies Expense"},
			AssetAccounts:     []string{"Cash", "Supplies"},
			LiabilityAccounts: []string{"Accounts Payable"},
			EquityAccounts:    []string{"Owner's Capital"},
		},
	}
}
