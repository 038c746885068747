package Billing

import (
	"fmt"
	"testing"

	"RehabCenter/Models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedSession creates the minimal patient/therapist/procedure graph plus one
// scheduled session with the given procedure cost.
func seedSession(t *testing.T, db *gorm.DB, cost string) Models.Session {
	t.Helper()
	patient := Models.Patient{Name: "Ivan Melnyk", BirthDate: "1985-03-12", Phone: "+380671111111"}
	require.NoError(t, db.Create(&patient).Error)
	therapist := Models.Therapist{Name: "Maria Sydorenko", Specialization: "Traumatologist", Phone: "+380502222222"}
	require.NoError(t, db.Create(&therapist).Error)
	procedure := Models.Procedure{Title: "General examination", Cost: decimal.RequireFromString(cost), DurationMinutes: 20}
	require.NoError(t, db.Create(&procedure).Error)
	session := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "09:00", DurationMinutes: 20, Status: Models.SessionScheduled,
	}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func seedInvoice(t *testing.T, db *gorm.DB, sessionID uint, amount string) Models.Invoice {
	t.Helper()
	invoice := Models.Invoice{SessionID: sessionID, Amount: decimal.RequireFromString(amount), IssueDate: "2025-12-20"}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}

func TestGetBalance(t *testing.T) {
	invoice := Models.Invoice{Amount: decimal.RequireFromString("100.00")}

	balance := GetBalance(&invoice)
	require.Equal(t, "0.00", balance.TotalPaid.StringFixed(2))
	require.Equal(t, "100.00", balance.Remaining.StringFixed(2))
	require.False(t, balance.IsPaid)

	invoice.Payments = []Models.Payment{{Amount: decimal.RequireFromString("80.00")}}
	balance = GetBalance(&invoice)
	require.Equal(t, "80.00", balance.TotalPaid.StringFixed(2))
	require.Equal(t, "20.00", balance.Remaining.StringFixed(2))
	require.False(t, balance.IsPaid)

	invoice.Payments = append(invoice.Payments, Models.Payment{Amount: decimal.RequireFromString("20.00")})
	balance = GetBalance(&invoice)
	require.Equal(t, "100.00", balance.TotalPaid.StringFixed(2))
	require.True(t, balance.Remaining.IsZero())
	require.True(t, balance.IsPaid)
}

func TestGetBalanceZeroAmountInvoiceIsPaid(t *testing.T) {
	invoice := Models.Invoice{Amount: decimal.Zero}
	require.True(t, GetBalance(&invoice).IsPaid)
}

func TestEnsureInvoiceForSessionIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "450.00")

	first, err := EnsureInvoiceForSession(db, session.ID, decimal.RequireFromString("450.00"))
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := EnsureInvoiceForSession(db, session.ID, decimal.RequireFromString("999.00"))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "450.00", second.Amount.StringFixed(2))

	var count int64
	require.NoError(t, db.Model(&Models.Invoice{}).Where("session_id = ?", session.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAdmitPaymentFullThenRejectsEpsilon(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "100.00")
	invoice := seedInvoice(t, db, session.ID, "100.00")

	payment, err := AdmitPayment(db, PaymentInput{
		InvoiceID: invoice.ID,
		Amount:    decimal.RequireFromString("100.00"),
		Method:    Models.PaymentCard,
	})
	require.NoError(t, err)
	require.Equal(t, "100.00", payment.Amount.StringFixed(2))

	_, err = AdmitPayment(db, PaymentInput{
		InvoiceID: invoice.ID,
		Amount:    decimal.RequireFromString("0.01"),
	})
	var overpayment *OverpaymentError
	require.ErrorAs(t, err, &overpayment)
	require.Equal(t, "0.00", overpayment.Remaining.StringFixed(2))
	require.Contains(t, err.Error(), "0.00")
}

func TestAdmitPaymentPartialBalances(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "100.00")
	invoice := seedInvoice(t, db, session.ID, "100.00")

	_, err := AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString("80.00")})
	require.NoError(t, err)

	// 25.00 exceeds the remaining 20.00.
	_, err = AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString("25.00")})
	var overpayment *OverpaymentError
	require.ErrorAs(t, err, &overpayment)
	require.Contains(t, err.Error(), "20.00")

	// The rejected attempt must not have persisted anything.
	var count int64
	require.NoError(t, db.Model(&Models.Payment{}).Where("invoice_id = ?", invoice.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// Paying exactly the remaining settles the invoice.
	_, err = AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString("20.00")})
	require.NoError(t, err)

	var settled Models.Invoice
	require.NoError(t, db.Preload("Payments").Where("id = ?", invoice.ID).First(&settled).Error)
	require.True(t, GetBalance(&settled).IsPaid)
}

func TestAdmitPaymentDefaultsAndValidation(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "100.00")
	invoice := seedInvoice(t, db, session.ID, "100.00")

	payment, err := AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString("10.00")})
	require.NoError(t, err)
	require.Equal(t, Models.PaymentCash, payment.Method)
	require.NotEmpty(t, payment.PaymentDate)

	_, err = AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.Zero})
	require.Error(t, err)

	_, err = AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString("10.00"), Method: "Barter"})
	require.ErrorIs(t, err, ErrInvalidMethod)

	_, err = AdmitPayment(db, PaymentInput{InvoiceID: 9999, Amount: decimal.RequireFromString("10.00")})
	require.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestPaymentsNeverExceedInvoiceAmount(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "100.00")
	invoice := seedInvoice(t, db, session.ID, "100.00")

	for _, amount := range []string{"30.00", "30.00", "30.00", "30.00"} {
		AdmitPayment(db, PaymentInput{InvoiceID: invoice.ID, Amount: decimal.RequireFromString(amount)})
	}

	var loaded Models.Invoice
	require.NoError(t, db.Preload("Payments").Where("id = ?", invoice.ID).First(&loaded).Error)
	require.True(t, GetBalance(&loaded).TotalPaid.LessThanOrEqual(loaded.Amount))
}

func TestCompleteSessionCreatesInvoiceFromProcedureCost(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "450.00")

	updated, invoice, err := CompleteSession(db, session.ID)
	require.NoError(t, err)
	require.Equal(t, Models.SessionCompleted, updated.Status)
	require.Equal(t, session.ID, invoice.SessionID)
	require.Equal(t, "450.00", invoice.Amount.StringFixed(2))
	require.Empty(t, invoice.Payments)
}

func TestCompleteSessionKeepsExistingInvoice(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "450.00")
	existing := seedInvoice(t, db, session.ID, "300.00")

	_, invoice, err := CompleteSession(db, session.ID)
	require.NoError(t, err)
	require.Equal(t, existing.ID, invoice.ID)
	require.Equal(t, "300.00", invoice.Amount.StringFixed(2))
}

func TestCompleteSessionIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "450.00")

	_, _, err := CompleteSession(db, session.ID)
	require.NoError(t, err)

	_, _, err = CompleteSession(db, session.ID)
	require.ErrorIs(t, err, ErrAlreadyCompleted)

	// No duplicate invoice after the rejected attempt.
	var count int64
	require.NoError(t, db.Model(&Models.Invoice{}).Where("session_id = ?", session.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	_, _, err = CompleteSession(db, 9999)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateInvoiceExplicitPath(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "450.00")

	amount := decimal.RequireFromString("275.00")
	invoice, err := CreateInvoice(db, session.ID, &amount)
	require.NoError(t, err)
	require.Equal(t, "275.00", invoice.Amount.StringFixed(2))

	_, err = CreateInvoice(db, session.ID, &amount)
	require.ErrorIs(t, err, ErrDuplicateInvoice)

	_, err = CreateInvoice(db, 9999, nil)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateInvoiceDefaultsToProcedureCost(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db, "800.00")

	invoice, err := CreateInvoice(db, session.ID, nil)
	require.NoError(t, err)
	require.Equal(t, "800.00", invoice.Amount.StringFixed(2))
}

func TestChangeStatus(t *testing.T) {
	session := &Models.Session{Status: Models.SessionScheduled}
	require.NoError(t, ChangeStatus(session, Models.SessionCancelled))
	require.Equal(t, Models.SessionCancelled, session.Status)

	require.ErrorIs(t, ChangeStatus(session, Models.SessionScheduled), ErrInvalidTransition)

	completed := &Models.Session{Status: Models.SessionCompleted}
	require.ErrorIs(t, ChangeStatus(completed, Models.SessionScheduled), ErrInvalidTransition)
	require.ErrorIs(t, ChangeStatus(completed, Models.SessionCancelled), ErrInvalidTransition)
	require.NoError(t, ChangeStatus(completed, Models.SessionCompleted))
}
