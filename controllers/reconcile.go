package controllers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/services"
	"github.com/Govind-619/EnrollPay/utils"
)

// ledgerTimeLayout is the timestamp format written to sheet cells.
const ledgerTimeLayout = "2006-01-02 15:04:05"

// upsertPaymentRow is the find-or-create-then-overwrite routine shared
// by verification, webhook and cancellation handling. When the order's
// row exists, columns G-L (amount, currency, payment ID, order ID,
// status, status timestamp) are overwritten in place. When it does
// not, a fresh row is appended with blank identity columns: a webhook
// that lands before (or instead of) the form submission has no way to
// recover the applicant's name or email, and that gap is accepted.
//
// Repeated delivery of the same event overwrites the same row with the
// same values, so the operation is idempotent in effect - though every
// delivery still pays a full sheet scan.
func (pc *PaymentController) upsertPaymentRow(ctx context.Context, orderID, paymentID string, amountMinor int64, currency, status string) error {
	now := time.Now().Format(ledgerTimeLayout)
	amount := strconv.FormatInt(amountMinor, 10)

	row, err := pc.Ledger.FindRowByOrderID(ctx, orderID)
	if errors.Is(err, services.ErrRowNotFound) {
		fresh := models.LedgerRow{
			Timestamp:       now,
			Amount:          amount,
			Currency:        currency,
			PaymentID:       paymentID,
			OrderID:         orderID,
			Status:          status,
			StatusTimestamp: now,
		}
		utils.LogInfo("No ledger row for order %s, appending one without identity columns", orderID)
		return pc.Ledger.AppendRow(ctx, fresh.Values())
	}
	if err != nil {
		return err
	}

	values := []interface{}{amount, currency, paymentID, orderID, status, now}
	return pc.Ledger.UpdateRowRange(ctx, row, "G", "L", values)
}

// sendConfirmation emails the applicant after a captured payment.
// Strictly best-effort: failures are logged and swallowed, and rows
// appended without identity columns have no address to mail.
func (pc *PaymentController) sendConfirmation(ctx context.Context, orderID string, amountMinor int64, currency string) {
	if !pc.Email.Enabled() {
		return
	}

	row, err := pc.Ledger.FindRowByOrderID(ctx, orderID)
	if err != nil {
		utils.LogError("Skipping confirmation mail, lookup failed for order %s: %v", orderID, err)
		return
	}
	values, err := pc.Ledger.ReadRow(ctx, row)
	if err != nil {
		utils.LogError("Skipping confirmation mail, read failed for order %s: %v", orderID, err)
		return
	}

	ledgerRow := models.LedgerRowFromValues(values)
	if ledgerRow.Email == "" {
		utils.LogDebug("Ledger row for order %s has no email, skipping confirmation mail", orderID)
		return
	}

	amountDisplay := fmt.Sprintf("%s %.2f", currency, float64(amountMinor)/100)
	if err := utils.SendEnrollmentConfirmation(pc.Email, ledgerRow.Email, ledgerRow.Name, orderID, amountDisplay); err != nil {
		utils.LogError("Failed to send confirmation mail for order %s: %v", orderID, err)
		return
	}
	utils.LogInfo("Sent confirmation mail for order %s to %s", orderID, ledgerRow.Email)
}
