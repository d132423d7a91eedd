package checkout

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/driveline-rentals/carrental-api/cart"
)

// State names the orchestrator's position in the checkout flow.
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StatePersistingOrders  State = "persisting_orders"
	StateRequestingSession State = "requesting_payment_session"
	StateRedirecting       State = "redirecting"
	StateFailed            State = "failed"
)

// Failure kinds. A failed Result carries exactly one of these; the
// user-facing message stays generic and the underlying detail is only
// logged.
var (
	ErrNotAuthenticated      = errors.New("checkout: not authenticated")
	ErrIncompleteFields      = errors.New("checkout: required rental fields missing")
	ErrOrderPersistFailed    = errors.New("checkout: order persistence failed")
	ErrSessionCreationFailed = errors.New("checkout: payment session creation failed")
	ErrRedirectFailed        = errors.New("checkout: payment redirect failed")
)

// UserRef identifies the signed-in customer. The auth layer owns it; the
// orchestrator only reads it to gate checkout.
type UserRef struct {
	ID   uint
	Name string
}

// OrderDraft is the write-only order record submitted for one cart line.
type OrderDraft struct {
	CustomerID      uint
	CarName         string
	PickupLocation  string
	DropoffLocation string
	PickupTime      string
	DropoffTime     string
	RentalDays      int
	TotalPrice      float64
	Status          string
}

// PriceLine is one hosted-checkout price entry: the per-day rate in minor
// currency units, quantity in rental days.
type PriceLine struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// OrderCreator persists one order per cart line.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft OrderDraft) error
}

// SessionCreator requests a hosted payment session for the full price-line
// list in a single call and returns its identifier.
type SessionCreator interface {
	CreateSession(ctx context.Context, lines []PriceLine) (string, error)
}

// Redirector resolves a session identifier into the hosted payment page URL
// the storefront navigates to.
type Redirector interface {
	Redirect(sessionID string) (string, error)
}

// Result is the terminal outcome of one checkout run.
type Result struct {
	State       State
	Err         error  // one of the failure kinds; nil unless State is StateFailed
	Message     string // user-facing, one generic message per failure category
	SessionID   string
	RedirectURL string
}

func (r Result) Failed() bool { return r.State == StateFailed }

// Orchestrator gates, sequences and hands off the checkout flow. It is not
// re-entrant for the same cart: a second Checkout started before the first
// returns will submit its own orders.
type Orchestrator struct {
	orders   OrderCreator
	sessions SessionCreator
	redirect Redirector
}

func NewOrchestrator(orders OrderCreator, sessions SessionCreator, redirect Redirector) *Orchestrator {
	return &Orchestrator{orders: orders, sessions: sessions, redirect: redirect}
}

// Checkout validates the cart, persists one order per line item in list
// order, creates the hosted payment session and resolves the redirect URL.
// It stops at the first failure; orders created before the failure stay
// committed and nothing is retried.
func (o *Orchestrator) Checkout(ctx context.Context, user *UserRef, items []cart.LineItem) Result {
	// Validating
	if user == nil {
		return failed(ErrNotAuthenticated, "Please sign in to proceed with checkout.")
	}
	for _, item := range items {
		if !item.Complete() {
			return failed(ErrIncompleteFields, "Please fill in all required fields for every item before proceeding to checkout.")
		}
	}

	// PersistingOrders: strictly sequential, a later item is never submitted
	// before the previous call returned.
	for _, item := range items {
		draft := OrderDraft{
			CustomerID:      user.ID,
			CarName:         item.ProductName,
			PickupLocation:  item.PickupLocation,
			DropoffLocation: item.DropoffLocation,
			PickupTime:      item.PickupTime,
			DropoffTime:     item.DropoffTime,
			RentalDays:      item.RentalDays,
			TotalPrice:      item.TotalPrice,
			Status:          "pending",
		}
		if err := o.orders.CreateOrder(ctx, draft); err != nil {
			log.Printf("checkout: order creation failed for item %s: %v", item.ID, err)
			return failed(ErrOrderPersistFailed, "Error saving order. Please try again.")
		}
	}

	// RequestingPaymentSession
	sessionID, err := o.sessions.CreateSession(ctx, PriceLines(items))
	if err != nil {
		log.Printf("checkout: session creation failed: %v", err)
		return failed(ErrSessionCreationFailed, "Failed to create checkout session.")
	}
	if sessionID == "" {
		return failed(ErrSessionCreationFailed, "Failed to create checkout session.")
	}

	// Redirecting
	url, err := o.redirect.Redirect(sessionID)
	if err != nil {
		log.Printf("checkout: redirect failed for session %s: %v", sessionID, err)
		return failed(ErrRedirectFailed, "An error occurred during checkout.")
	}

	return Result{State: StateRedirecting, SessionID: sessionID, RedirectURL: url}
}

// PriceLines builds the hosted-checkout price entries for the cart. The unit
// amount is the per-day rate in minor units; the quantity is the rental-day
// count, falling back to 1 when no valid rental period is set.
func PriceLines(items []cart.LineItem) []PriceLine {
	lines := make([]PriceLine, 0, len(items))
	for _, item := range items {
		qty := int64(item.RentalDays)
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, PriceLine{
			Name:       item.ProductName,
			UnitAmount: int64(math.Round(item.PricePerDay * 100)),
			Quantity:   qty,
		})
	}
	return lines
}

func failed(err error, message string) Result {
	return Result{State: StateFailed, Err: err, Message: message}
}
