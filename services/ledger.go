package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/utils"
)

// ErrRowNotFound is the lookup-miss sentinel. A miss is not a failure;
// reconciliation callers fall back to appending a fresh row.
var ErrRowNotFound = errors.New("ledger row not found")

// Ledger is the spreadsheet-backed system of record for enrollment and
// payment state. Row indexes are 1-based sheet rows.
type Ledger interface {
	AppendRow(ctx context.Context, values []interface{}) error
	FindRowByOrderID(ctx context.Context, orderID string) (int, error)
	UpdateRowRange(ctx context.Context, row int, startCol, endCol string, values []interface{}) error
	ClearRowRange(ctx context.Context, row int, startCol, endCol string) error
	ReadRow(ctx context.Context, row int) ([]interface{}, error)
	Rows(ctx context.Context) ([][]interface{}, error)
}

// SheetsLedger implements Ledger against a single Google Sheets
// worksheet. The sheet is shared mutable state with no locking or
// transactions: two concurrent callers that both miss on
// FindRowByOrderID will both append, leaving a duplicate row, and
// updates are last-write-wins. Lookups scan the whole sheet and return
// the first match top to bottom, so a duplicated order ID only ever
// has its first row updated.
type SheetsLedger struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	sheetName     string
}

// NewSheetsLedger wraps an authenticated Sheets service. readRange is
// the full A:L range of the worksheet, e.g. "Enrollments!A:L".
func NewSheetsLedger(service *sheets.Service, spreadsheetID, readRange string) *SheetsLedger {
	sheetName := readRange
	if i := strings.Index(readRange, "!"); i >= 0 {
		sheetName = readRange[:i]
	}
	return &SheetsLedger{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		sheetName:     sheetName,
	}
}

// AppendRow appends one row at the end of the sheet.
func (l *SheetsLedger) AppendRow(ctx context.Context, values []interface{}) error {
	valueRange := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := l.service.Spreadsheets.Values.Append(l.spreadsheetID, l.readRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return utils.UpstreamErr("sheets append failed", err)
	}
	return nil
}

// FindRowByOrderID reads the entire sheet and linearly scans column J
// for an exact match. O(rows) per call; there is no caching, so every
// verification event pays a full-sheet read.
func (l *SheetsLedger) FindRowByOrderID(ctx context.Context, orderID string) (int, error) {
	rows, err := l.Rows(ctx)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if len(row) > models.ColOrderID && fmt.Sprintf("%v", row[models.ColOrderID]) == orderID {
			return i + 1, nil // sheet rows are 1-based
		}
	}
	return 0, ErrRowNotFound
}

// UpdateRowRange overwrites the given column range of one row in place.
func (l *SheetsLedger) UpdateRowRange(ctx context.Context, row int, startCol, endCol string, values []interface{}) error {
	valueRange := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := l.service.Spreadsheets.Values.Update(l.spreadsheetID, l.rowRange(row, startCol, endCol), valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return utils.UpstreamErr("sheets update failed", err)
	}
	return nil
}

// ClearRowRange blanks the given column range of one row.
func (l *SheetsLedger) ClearRowRange(ctx context.Context, row int, startCol, endCol string) error {
	_, err := l.service.Spreadsheets.Values.Clear(l.spreadsheetID, l.rowRange(row, startCol, endCol), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return utils.UpstreamErr("sheets clear failed", err)
	}
	return nil
}

// ReadRow returns one row's values, or nil if the row is empty.
func (l *SheetsLedger) ReadRow(ctx context.Context, row int) ([]interface{}, error) {
	resp, err := l.service.Spreadsheets.Values.Get(l.spreadsheetID, l.rowRange(row, "A", "L")).
		Context(ctx).Do()
	if err != nil {
		return nil, utils.UpstreamErr("sheets read failed", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return resp.Values[0], nil
}

// Rows returns every row in the configured range.
func (l *SheetsLedger) Rows(ctx context.Context) ([][]interface{}, error) {
	resp, err := l.service.Spreadsheets.Values.Get(l.spreadsheetID, l.readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, utils.UpstreamErr("sheets read failed", err)
	}
	return resp.Values, nil
}

func (l *SheetsLedger) rowRange(row int, startCol, endCol string) string {
	return fmt.Sprintf("%s!%s%d:%s%d", l.sheetName, startCol, row, endCol, row)
}
