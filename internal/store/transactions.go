package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxerror"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// TransactionRow is the CSV layout of a transaction. All columns are read as
// strings so empty cells can mean "absent".
type TransactionRow struct {
	ID           string `csv:"ID"`
	Amount       string `csv:"Amount"`
	Timestamp    string `csv:"Timestamp"`
	TaxCategory  string `csv:"TaxCategory"`
	ReceiptURL   string `csv:"ReceiptURL"`
	Description  string `csv:"Description"`
	Counterparty string `csv:"Counterparty"`
}

// ToTransaction converts a row into a Transaction. A blank ID is replaced by
// a generated UUID.
func (r TransactionRow) ToTransaction() (models.Transaction, error) {
	amount, err := models.ParseAmount(r.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	ts, err := dateutils.ParseTimestamp(r.Timestamp)
	if err != nil {
		return models.Transaction{}, taxerror.WrapInvalidInput("timestamp", r.Timestamp, "unparseable timestamp", err)
	}

	category, err := models.ParseTaxCategory(r.TaxCategory)
	if err != nil {
		return models.Transaction{}, err
	}

	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = uuid.NewString()
	}

	tx := models.Transaction{
		ID:           id,
		Amount:       amount,
		Timestamp:    ts,
		TaxCategory:  category,
		Description:  strings.TrimSpace(r.Description),
		Counterparty: strings.TrimSpace(r.Counterparty),
	}
	if receipt := strings.TrimSpace(r.ReceiptURL); receipt != "" {
		tx = tx.WithReceipt(receipt)
	}
	return tx, nil
}

// RowFromTransaction converts a Transaction into its CSV row.
func RowFromTransaction(tx models.Transaction) TransactionRow {
	row := TransactionRow{
		ID:           tx.ID,
		Amount:       tx.Amount.String(),
		Timestamp:    dateutils.FormatTimestamp(tx.Timestamp),
		Description:  tx.Description,
		Counterparty: tx.Counterparty,
	}
	if tx.TaxCategory != nil {
		row.TaxCategory = string(*tx.TaxCategory)
	}
	if tx.ReceiptURL != nil {
		row.ReceiptURL = *tx.ReceiptURL
	}
	return row
}

// ReadTransactions parses transactions CSV from r. An empty input yields no
// transactions. The first bad row aborts with its line number.
func ReadTransactions(r io.Reader) ([]models.Transaction, error) {
	var rows []TransactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}

	txs := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := row.ToTransaction()
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions renders txs as CSV with a header row.
func WriteTransactions(w io.Writer, txs []models.Transaction) error {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, RowFromTransaction(tx))
	}

	csvWriter := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// LoadTransactions reads the transactions CSV at path.
func LoadTransactions(path string) ([]models.Transaction, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from flags or config
	if err != nil {
		return nil, snapshotError(path, "transactions", err)
	}
	defer func() {
		_ = file.Close()
	}()

	txs, err := ReadTransactions(file)
	if err != nil {
		return nil, snapshotError(path, "transactions", err)
	}
	return txs, nil
}

// SaveTransactions writes txs to path, creating parent directories.
func SaveTransactions(path string, txs []models.Transaction) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path) // #nosec G304 -- path comes from flags or config
	if err != nil {
		return snapshotError(path, "transactions", err)
	}

	if err := WriteTransactions(file, txs); err != nil {
		_ = file.Close()
		return snapshotError(path, "transactions", err)
	}
	if err := file.Close(); err != nil {
		return snapshotError(path, "transactions", err)
	}
	return nil
}
