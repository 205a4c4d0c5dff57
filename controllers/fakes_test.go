package controllers_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/services"
)

// fakeLedger is an in-memory stand-in for the sheets ledger. It
// mirrors the real semantics: 1-based rows, first-match lookup on
// column J, in-place range overwrites.
type fakeLedger struct {
	rows [][]interface{}

	appendErr error
	findErr   error
	updateErr error

	appendCount int
	updateCount int
	clearCount  int
}

func colIndex(col string) int {
	return int(col[0] - 'A')
}

func (f *fakeLedger) AppendRow(ctx context.Context, values []interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appendCount++
	row := make([]interface{}, len(values))
	copy(row, values)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeLedger) FindRowByOrderID(ctx context.Context, orderID string) (int, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	for i, row := range f.rows {
		if len(row) > models.ColOrderID && fmt.Sprintf("%v", row[models.ColOrderID]) == orderID {
			return i + 1, nil
		}
	}
	return 0, services.ErrRowNotFound
}

func (f *fakeLedger) UpdateRowRange(ctx context.Context, row int, startCol, endCol string, values []interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if row < 1 || row > len(f.rows) {
		return errors.New("row out of range")
	}
	f.updateCount++
	start := colIndex(startCol)
	target := f.rows[row-1]
	for i, value := range values {
		idx := start + i
		for len(target) <= idx {
			target = append(target, "")
		}
		target[idx] = value
	}
	f.rows[row-1] = target
	return nil
}

func (f *fakeLedger) ClearRowRange(ctx context.Context, row int, startCol, endCol string) error {
	if row < 1 || row > len(f.rows) {
		return errors.New("row out of range")
	}
	f.clearCount++
	target := f.rows[row-1]
	for i := colIndex(startCol); i <= colIndex(endCol) && i < len(target); i++ {
		target[i] = ""
	}
	return nil
}

func (f *fakeLedger) ReadRow(ctx context.Context, row int) ([]interface{}, error) {
	if row < 1 || row > len(f.rows) {
		return nil, nil
	}
	return f.rows[row-1], nil
}

func (f *fakeLedger) Rows(ctx context.Context) ([][]interface{}, error) {
	return f.rows, nil
}

func (f *fakeLedger) row(t int) models.LedgerRow {
	return models.LedgerRowFromValues(f.rows[t])
}

// fakeGateway returns canned orders and payments.
type fakeGateway struct {
	orderID    string
	orderErr   error
	payment    *models.Payment
	paymentErr error

	createCalls int
	fetchCalls  int
}

func (f *fakeGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]string) (*models.Order, error) {
	f.createCalls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	id := f.orderID
	if id == "" {
		id = "order_fake001"
	}
	return &models.Order{
		ID:       id,
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
		Notes:    notes,
	}, nil
}

func (f *fakeGateway) FetchPayment(paymentID string) (*models.Payment, error) {
	f.fetchCalls++
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	if f.payment != nil {
		return f.payment, nil
	}
	return &models.Payment{
		ID:       paymentID,
		Amount:   100,
		Currency: "INR",
		Status:   models.PaymentStatusCaptured,
	}, nil
}
