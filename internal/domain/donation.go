package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FundCategory enumerates the donation funds the organization accepts
// contributions toward.
type FundCategory string

const (
	FundZakat     FundCategory = "zakat"
	FundSadaqah   FundCategory = "sadaqah"
	FundEducation FundCategory = "education"
	FundOrphans   FundCategory = "orphans"
	FundBuilding  FundCategory = "building"
	FundGeneral   FundCategory = "general"
)

// ParseFundCategory validates a raw fund value, defaulting blank to general.
func ParseFundCategory(s string) (FundCategory, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return FundGeneral, nil
	}
	switch f := FundCategory(trimmed); f {
	case FundZakat, FundSadaqah, FundEducation, FundOrphans, FundBuilding, FundGeneral:
		return f, nil
	default:
		return "", fmt.Errorf("unknown fund category %q", s)
	}
}

// DonationStatus enumerates donation lifecycle states.
type DonationStatus string

const (
	DonationPending    DonationStatus = "pending"
	DonationProcessing DonationStatus = "processing"
	DonationCompleted  DonationStatus = "completed"
	DonationFailed     DonationStatus = "failed"
	DonationRefunded   DonationStatus = "refunded"
)

// Fixed display names substituted when a donor asks to stay anonymous.
const (
	AnonymousFirstName = "Anonymous"
	AnonymousLastName  = "Donor"
)

// GatewayPayment holds the payment gateway's correlation identifiers for a
// donation, stored verbatim as the gateway reports them.
type GatewayPayment struct {
	OrderID   string `json:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	Signature string `json:"signature,omitempty"`
	Status    string `json:"status"`
}

// Donation is a monetary contribution tied to a donor account and a
// gateway transaction. ID is caller-supplied and doubles as the
// idempotency key for creation.
type Donation struct {
	ID          string
	DonorID     string
	FirstName   string
	LastName    string
	Email       string
	Anonymous   bool
	AmountMinor int64
	Currency    string
	Fund        FundCategory
	Category    string
	Description string
	Receipt     string
	Status      DonationStatus
	Payment     GatewayPayment
	Country     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FundDisplayName returns the human-readable fund name, e.g. "Zakat Fund".
// cases.Caser carries internal transform state and must not be shared
// across goroutines, so a fresh one is built per call.
func FundDisplayName(f FundCategory) string {
	return cases.Title(language.English).String(string(f)) + " Fund"
}

// DeriveCategory returns the stored category for a donation, preferring an
// explicit value over the fund tag.
func DeriveCategory(explicit string, fund FundCategory) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return string(fund)
}

// DeriveDescription returns the stored description for a donation,
// preferring an explicit value over one generated from the fund.
func DeriveDescription(explicit string, fund FundCategory) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return "Donation to the " + FundDisplayName(fund)
}

// MaskAnonymous overwrites the display name fields with the fixed
// placeholder pair when the donor requested anonymity.
func (d *Donation) MaskAnonymous() {
	if d.Anonymous {
		d.FirstName = AnonymousFirstName
		d.LastName = AnonymousLastName
	}
}

// EnsureReceipt assigns the timestamp-derived receipt identifier exactly
// once. A donation that already carries a receipt keeps it.
func (d *Donation) EnsureReceipt(now time.Time) string {
	if d.Receipt == "" {
		d.Receipt = fmt.Sprintf("DON-%d", now.UnixMilli())
	}
	return d.Receipt
}

// Finalized reports whether the donation reached a state from which
// Confirm is no longer legal.
func (d *Donation) Finalized() bool {
	switch d.Status {
	case DonationCompleted, DonationFailed, DonationRefunded:
		return true
	}
	return false
}

// Complete moves the donation to completed, storing the gateway's
// correlation identifiers. Calling it on a finalized donation fails.
func (d *Donation) Complete(orderID, paymentID, signature string, now time.Time) error {
	if d.Finalized() {
		return fmt.Errorf("%w: donation %s is %s", ErrAlreadyFinalized, d.ID, d.Status)
	}
	d.Status = DonationCompleted
	d.Payment = GatewayPayment{
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: signature,
		Status:    string(DonationCompleted),
	}
	d.UpdatedAt = now.UTC()
	return nil
}

// Fail moves a pending or processing donation to failed.
func (d *Donation) Fail(now time.Time) error {
	if d.Finalized() {
		return fmt.Errorf("%w: donation %s is %s", ErrAlreadyFinalized, d.ID, d.Status)
	}
	d.Status = DonationFailed
	d.Payment.Status = string(DonationFailed)
	d.UpdatedAt = now.UTC()
	return nil
}

// Refund moves a completed donation to refunded. Only the completed state
// may be refunded, and only once.
func (d *Donation) Refund(now time.Time) error {
	if d.Status != DonationCompleted {
		return fmt.Errorf("%w: cannot refund donation in state %q", ErrIllegalTransition, d.Status)
	}
	d.Status = DonationRefunded
	d.Payment.Status = string(DonationRefunded)
	d.UpdatedAt = now.UTC()
	return nil
}
