package models

import "fmt"

// The ledger worksheet carries exactly twelve columns, A through L.
// Zero-based indexes into a raw sheet row:
const (
	ColTimestamp = iota
	ColName
	ColMobile
	ColEmail
	ColCity
	ColExperience
	ColAmount
	ColCurrency
	ColPaymentID
	ColOrderID
	ColStatus
	ColStatusTimestamp
)

// EnrollmentForm is the identity block submitted at checkout.
type EnrollmentForm struct {
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	City       string `json:"city"`
	Experience string `json:"experience"`
}

// IsEmpty reports whether no field was supplied.
func (f EnrollmentForm) IsEmpty() bool {
	return f == EnrollmentForm{}
}

// LedgerRow is one enrollment attempt in the sheet, keyed logically by
// order ID (column J). The store enforces no uniqueness; lookups match
// the first row top to bottom.
type LedgerRow struct {
	Timestamp       string `json:"timestamp"`
	Name            string `json:"name"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	City            string `json:"city"`
	Experience      string `json:"experience"`
	Amount          string `json:"amount"` // minor units, as written to the sheet
	Currency        string `json:"currency"`
	PaymentID       string `json:"paymentId"`
	OrderID         string `json:"orderId"`
	Status          string `json:"status"`
	StatusTimestamp string `json:"statusTimestamp"`
}

// Values flattens the row into the fixed A-L column order.
func (r LedgerRow) Values() []interface{} {
	return []interface{}{
		r.Timestamp,
		r.Name,
		r.Mobile,
		r.Email,
		r.City,
		r.Experience,
		r.Amount,
		r.Currency,
		r.PaymentID,
		r.OrderID,
		r.Status,
		r.StatusTimestamp,
	}
}

// LedgerRowFromValues maps a raw sheet row onto the fixed column
// layout. Short rows leave trailing fields empty.
func LedgerRowFromValues(values []interface{}) LedgerRow {
	cell := func(i int) string {
		if i < len(values) && values[i] != nil {
			return fmt.Sprintf("%v", values[i])
		}
		return ""
	}
	return LedgerRow{
		Timestamp:       cell(ColTimestamp),
		Name:            cell(ColName),
		Mobile:          cell(ColMobile),
		Email:           cell(ColEmail),
		City:            cell(ColCity),
		Experience:      cell(ColExperience),
		Amount:          cell(ColAmount),
		Currency:        cell(ColCurrency),
		PaymentID:       cell(ColPaymentID),
		OrderID:         cell(ColOrderID),
		Status:          cell(ColStatus),
		StatusTimestamp: cell(ColStatusTimestamp),
	}
}
