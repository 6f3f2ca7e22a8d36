package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Order status values. Forward path: new -> awaiting_payment -> ready_to_depart
// -> completed. Cancelled is reachable from any non-terminal state.
const (
	StatusNew             = "new"
	StatusAwaitingPayment = "awaiting_payment"
	StatusReadyToDepart   = "ready_to_depart"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// Payment status values. Unset until the first payment is recorded.
const (
	PaymentPartiallyPaid = "partially_paid"
	PaymentPaidInFull    = "paid_in_full"
)

// PaymentRecord is one received payment against an order's total.
// Records are append-only: never edited, never removed.
type PaymentRecord struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes,omitempty"`
}

// PaymentHistory is stored as a JSONB column on orders.
type PaymentHistory []PaymentRecord

func (h PaymentHistory) Value() (driver.Value, error) {
	if h == nil {
		return jsonbValue([]PaymentRecord{})
	}
	return jsonbValue([]PaymentRecord(h))
}

func (h *PaymentHistory) Scan(value interface{}) error {
	return jsonbScan(h, value)
}

// Order represents one customer booking against a destination.
type Order struct {
	ID               int64          `gorm:"primaryKey" json:"id"` // millisecond epoch assigned at creation, never auto-incremented
	CustomerName     string         `gorm:"not null" json:"customer_name"`
	CustomerPhone    string         `gorm:"not null" json:"customer_phone"`
	DestinationID    uint           `gorm:"not null;index" json:"destination_id"`
	DestinationTitle string         `json:"destination_title"` // denormalized so orders survive destination edits
	Participants     int            `gorm:"not null;check:participants > 0" json:"participants"`
	OrderDate        time.Time      `gorm:"not null" json:"order_date"`
	DepartureDate    *string        `json:"departure_date,omitempty"` // YYYY-MM-DD
	Status           string         `gorm:"not null;default:'new'" json:"status"` // new, awaiting_payment, ready_to_depart, completed, cancelled
	TotalPrice       float64        `gorm:"not null" json:"total_price"`
	PaymentStatus    *string        `json:"payment_status,omitempty"` // partially_paid, paid_in_full
	PaymentHistory   PaymentHistory `gorm:"type:jsonb" json:"payment_history"`
	Notes            *string        `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// NewOrderID derives a fresh order id from the clock, matching the ids the
// public site has always issued.
func NewOrderID(now time.Time) int64 {
	return now.UnixMilli()
}

// IsTerminal reports whether the order has reached a final state.
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// TotalPaid folds the payment history into the cumulative amount received.
func (o *Order) TotalPaid() float64 {
	var sum float64
	for _, p := range o.PaymentHistory {
		sum += p.Amount
	}
	return sum
}

// RemainingBalance is the total price minus everything paid so far.
func (o *Order) RemainingBalance() float64 {
	return o.TotalPrice - o.TotalPaid()
}

// Contact marks the first operator contact: the tariff has been communicated
// and the order now waits for payment.
func (o *Order) Contact() error {
	if o.IsTerminal() {
		return errOrderClosed()
	}
	if o.Status != StatusNew {
		return &StateConflictError{
			Code:    "ALREADY_CONTACTED",
			Message: "customer has already been contacted for this order",
		}
	}
	o.Status = StatusAwaitingPayment
	return nil
}

// RecordPayment appends a payment and re-derives payment status and order
// status. The first full payment moves the order to ready_to_depart; partial
// payments keep it awaiting payment. On any error nothing is mutated.
func (o *Order) RecordPayment(amount float64, notes string, now time.Time) error {
	if o.IsTerminal() {
		return errOrderClosed()
	}
	if o.Status != StatusAwaitingPayment && o.Status != StatusReadyToDepart {
		return &StateConflictError{
			Code:    "NOT_AWAITING_PAYMENT",
			Message: "contact the customer before recording payments",
		}
	}
	if amount <= 0 {
		return &ValidationError{
			Code:    "INVALID_AMOUNT",
			Message: "amount must be positive",
		}
	}
	if amount > o.RemainingBalance() {
		return &ValidationError{
			Code:    "EXCEEDS_BALANCE",
			Message: "exceeds remaining balance",
		}
	}

	// Copy before appending so callers holding the previous slice (e.g. the
	// row loaded from the store) never see a half-applied event.
	history := make(PaymentHistory, len(o.PaymentHistory), len(o.PaymentHistory)+1)
	copy(history, o.PaymentHistory)
	o.PaymentHistory = append(history, PaymentRecord{Amount: amount, Date: now, Notes: notes})

	o.refreshPaymentStatus()
	return nil
}

// MarkComplete closes a fully paid order. Terminal.
func (o *Order) MarkComplete() error {
	if o.Status != StatusReadyToDepart || o.PaymentStatus == nil || *o.PaymentStatus != PaymentPaidInFull {
		return &StateConflictError{
			Code:    "NOT_PAID_IN_FULL",
			Message: "order must be fully paid before it can be completed",
		}
	}
	o.Status = StatusCompleted
	return nil
}

// Cancel closes the order from any non-terminal state. Terminal.
func (o *Order) Cancel() error {
	if o.IsTerminal() {
		return errOrderClosed()
	}
	o.Status = StatusCancelled
	return nil
}

// SetParticipants changes the group size and reprices the order against the
// destination's tiers. Payment status is re-derived against the new total, so
// a paid-in-full order whose total grows drops back to partially paid.
func (o *Order) SetParticipants(count int, minPeople int, tiers PriceTiers) error {
	if o.IsTerminal() {
		return errOrderClosed()
	}
	if count < minPeople {
		return &ValidationError{
			Code:    "BELOW_MINIMUM",
			Message: "below minimum participants",
		}
	}
	o.Participants = count
	o.TotalPrice = OrderTotal(tiers, count)
	o.refreshPaymentStatus()
	return nil
}

// SetDepartureDate updates only the departure date. An empty date clears it.
func (o *Order) SetDepartureDate(date string) error {
	if o.IsTerminal() {
		return errOrderClosed()
	}
	if date == "" {
		o.DepartureDate = nil
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{
			Code:    "INVALID_DATE",
			Message: "departure date must use the YYYY-MM-DD format",
		}
	}
	o.DepartureDate = &date
	return nil
}

// refreshPaymentStatus re-derives PaymentStatus and Status from the payment
// history. Payments can only exist on orders already past first contact, so
// the only statuses touched here are awaiting_payment and ready_to_depart.
func (o *Order) refreshPaymentStatus() {
	if len(o.PaymentHistory) == 0 {
		o.PaymentStatus = nil
		return
	}
	status := PaymentPartiallyPaid
	if o.TotalPaid() >= o.TotalPrice {
		status = PaymentPaidInFull
	}
	o.PaymentStatus = &status
	if status == PaymentPaidInFull {
		o.Status = StatusReadyToDepart
	} else {
		o.Status = StatusAwaitingPayment
	}
}

func errOrderClosed() *StateConflictError {
	return &StateConflictError{
		Code:    "ORDER_CLOSED",
		Message: "completed or cancelled orders can no longer be modified",
	}
}
