// Package store loads and saves the file-backed data snapshot: the
// transactions CSV, the filings and business YAML files and the category rules.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/seed"
	"fjacquet/ngtax/internal/taxerror"
)

// FileStore reads a snapshot from files. Empty paths are skipped, and a
// missing filings, business or rules file yields an empty value rather than
// an error. The transactions file is required when set.
type FileStore struct {
	TransactionsFile string
	FilingsFile      string
	BusinessFile     string
	RulesFile        string
	FilingDay        int

	logger logging.Logger
}

// NewFileStore creates a FileStore. filingDay is used to fill in due dates
// missing from the filings file.
func NewFileStore(transactionsFile, filingsFile, businessFile, rulesFile string, filingDay int, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &FileStore{
		TransactionsFile: transactionsFile,
		FilingsFile:      filingsFile,
		BusinessFile:     businessFile,
		RulesFile:        rulesFile,
		FilingDay:        filingDay,
		logger:           logger,
	}
}

// FindConfigFile looks for a data file in standard locations.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
		filepath.Join("data", filename),   // ./data/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Fall back to the user's ~/.ngtax directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".ngtax", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Snapshot loads every configured file. It implements seed.Provider.
func (s *FileStore) Snapshot() (seed.Snapshot, error) {
	var snap seed.Snapshot

	if s.TransactionsFile != "" {
		txs, err := LoadTransactions(s.TransactionsFile)
		if err != nil {
			return seed.Snapshot{}, err
		}
		snap.Transactions = txs
		s.logger.Debug("Loaded transactions",
			logging.F(logging.FieldFile, s.TransactionsFile),
			logging.F(logging.FieldCount, len(txs)))
	}

	if path, ok := s.optional(s.FilingsFile, "filings"); ok {
		filings, err := LoadFilings(path, s.FilingDay)
		if err != nil {
			return seed.Snapshot{}, err
		}
		snap.Filings = filings
		s.logger.Debug("Loaded filings",
			logging.F(logging.FieldFile, path),
			logging.F(logging.FieldCount, len(filings)))
	}

	if path, ok := s.optional(s.BusinessFile, "business"); ok {
		business, err := LoadBusiness(path)
		if err != nil {
			return seed.Snapshot{}, err
		}
		snap.Business = business
	}

	return snap, nil
}

// Rules loads the category rules, or none when the rules file is missing.
func (s *FileStore) Rules() ([]models.CategoryRule, error) {
	path, ok := s.optional(s.RulesFile, "rules")
	if !ok {
		return []models.CategoryRule{}, nil
	}
	return LoadRules(path)
}

// optional resolves a file that may legitimately not exist.
func (s *FileStore) optional(filename, kind string) (string, bool) {
	if filename == "" {
		return "", false
	}
	path, err := FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Snapshot file not found, skipping",
			logging.F(logging.FieldFile, filename),
			logging.F(logging.FieldOperation, kind))
		return "", false
	}
	return path, true
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	return nil
}

// snapshotError wraps err with the file it came from. InvalidInput causes
// stay matchable with errors.Is.
func snapshotError(path, kind string, err error) error {
	return &taxerror.SnapshotError{FilePath: path, Kind: kind, Err: err}
}
