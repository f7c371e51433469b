package models

// CategoryRule maps description or counterparty keywords to a tax category.
type CategoryRule struct {
	Category TaxCategory `yaml:"category" json:"category"`
	Keywords []string    `yaml:"keywords" json:"keywords"`
}

// CategoryRules is the top-level structure of the rules YAML file.
type CategoryRules struct {
	Rules []CategoryRule `yaml:"rules" json:"rules"`
}
