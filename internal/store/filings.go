package store

import (
	"fmt"
	"os"
	"time"

	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxcalc"

	"gopkg.in/yaml.v3"
)

// FilingEntry is the YAML layout of a filing record.
type FilingEntry struct {
	ID                 string     `yaml:"id"`
	Year               int        `yaml:"year"`
	Month              int        `yaml:"month"`
	Status             string     `yaml:"status"`
	DueDate            *time.Time `yaml:"due_date,omitempty"`
	FiledDate          *time.Time `yaml:"filed_date,omitempty"`
	ConfirmationNumber *string    `yaml:"confirmation_number,omitempty"`
}

// FilingsFile is the top-level structure of the filings YAML file.
type FilingsFile struct {
	Filings []FilingEntry `yaml:"filings"`
}

// ToRecord converts the entry into a FilingRecord. A missing due date is
// derived from filingDay.
func (e FilingEntry) ToRecord(filingDay int) (models.FilingRecord, error) {
	period, err := taxcalc.PeriodFor(e.Year, e.Month, time.UTC)
	if err != nil {
		return models.FilingRecord{}, err
	}
	status, err := models.ParseFilingStatus(e.Status)
	if err != nil {
		return models.FilingRecord{}, err
	}

	record := models.FilingRecord{
		ID:                 e.ID,
		Period:             period,
		Status:             status,
		FiledDate:          e.FiledDate,
		ConfirmationNumber: e.ConfirmationNumber,
	}
	if e.DueDate != nil {
		record.DueDate = *e.DueDate
	} else {
		if filingDay < 1 || filingDay > 28 {
			filingDay = taxcalc.DefaultRates().VATFilingDay
		}
		record.DueDate = dateutils.DayOfFollowingMonth(period.Year, time.Month(period.Month), filingDay, period.Location())
	}
	return record, nil
}

// EntryFromRecord converts a FilingRecord into its YAML entry.
func EntryFromRecord(r models.FilingRecord) FilingEntry {
	due := r.DueDate
	entry := FilingEntry{
		ID:                 r.ID,
		Year:               r.Period.Year,
		Month:              r.Period.Month,
		Status:             string(r.Status),
		FiledDate:          r.FiledDate,
		ConfirmationNumber: r.ConfirmationNumber,
	}
	if !due.IsZero() {
		entry.DueDate = &due
	}
	return entry
}

// LoadFilings reads the filings YAML file at path.
func LoadFilings(path string, filingDay int) ([]models.FilingRecord, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from flags or config
	if err != nil {
		return nil, snapshotError(path, "filings", err)
	}

	var file FilingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, snapshotError(path, "filings", fmt.Errorf("error parsing filings: %w", err))
	}

	records := make([]models.FilingRecord, 0, len(file.Filings))
	for i, entry := range file.Filings {
		record, err := entry.ToRecord(filingDay)
		if err != nil {
			return nil, snapshotError(path, "filings", fmt.Errorf("filing %d: %w", i+1, err))
		}
		records = append(records, record)
	}
	return records, nil
}

// SaveFilings writes records to path as YAML.
func SaveFilings(path string, records []models.FilingRecord) error {
	file := FilingsFile{Filings: make([]FilingEntry, 0, len(records))}
	for _, r := range records {
		file.Filings = append(file.Filings, EntryFromRecord(r))
	}
	return writeYAML(path, "filings", file)
}

// LoadBusiness reads the business profile YAML file at path.
func LoadBusiness(path string) (*models.BusinessTaxInfo, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from flags or config
	if err != nil {
		return nil, snapshotError(path, "business", err)
	}

	var business models.BusinessTaxInfo
	if err := yaml.Unmarshal(data, &business); err != nil {
		return nil, snapshotError(path, "business", fmt.Errorf("error parsing business profile: %w", err))
	}
	if business.BusinessType != "" && !business.BusinessType.Valid() {
		return nil, snapshotError(path, "business", fmt.Errorf("unknown business type %q", business.BusinessType))
	}
	return &business, nil
}

// SaveBusiness writes the business profile to path as YAML.
func SaveBusiness(path string, business *models.BusinessTaxInfo) error {
	if business == nil {
		return fmt.Errorf("cannot save nil business profile")
	}
	return writeYAML(path, "business", business)
}

// LoadRules reads the category rules YAML file at path. Rules with an
// unknown or empty category are rejected.
func LoadRules(path string) ([]models.CategoryRule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from flags or config
	if err != nil {
		return nil, snapshotError(path, "rules", err)
	}

	var file models.CategoryRules
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, snapshotError(path, "rules", fmt.Errorf("error parsing category rules: %w", err))
	}

	rules := make([]models.CategoryRule, 0, len(file.Rules))
	for _, rule := range file.Rules {
		category, err := models.ParseTaxCategory(string(rule.Category))
		if err != nil || category == nil {
			return nil, snapshotError(path, "rules", fmt.Errorf("rule with invalid category %q", rule.Category))
		}
		rules = append(rules, models.CategoryRule{Category: *category, Keywords: rule.Keywords})
	}
	return rules, nil
}

// SaveRules writes rules to path as YAML.
func SaveRules(path string, rules []models.CategoryRule) error {
	return writeYAML(path, "rules", models.CategoryRules{Rules: rules})
}

func writeYAML(path, kind string, value interface{}) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return snapshotError(path, kind, fmt.Errorf("error marshaling %s: %w", kind, err))
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return snapshotError(path, kind, err)
	}
	return nil
}
