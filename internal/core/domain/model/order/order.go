package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNotDeletable is broken by deleting an order that left the pending state.
	ErrOrderNotDeletable = errors.New("only pending orders can be deleted")

	// ErrOrderNotPayable is broken by starting a gateway payment for a paid or cancelled order.
	ErrOrderNotPayable = errors.New("order cannot be paid")

	// ErrGatewayOrderAttached is broken by replacing the gateway reference of an
	// order that already has one. Webhooks find orders by that reference.
	ErrGatewayOrderAttached = errors.New("order already has a gateway order")
)

// StockDelta is a signed stock adjustment for one product.
type StockDelta struct {
	ProductID kernel.UUID
	Delta     int
}

// StatusChange describes an applied transition and the side effects the caller
// must persist atomically with it.
type StatusChange struct {
	From  Status
	To    Status
	By    kernel.Actor
	Stock []StockDelta
}

// Cancelled reports whether the change moved the order into Cancelled.
func (c StatusChange) Cancelled() bool {
	return c.To == Cancelled
}

// Order is the aggregate root created at checkout.
type Order struct {
	id           kernel.UUID
	number       string
	userID       kernel.UUID
	items        []Item
	shopOwnerIDs []kernel.UUID
	profile      ProfileSnapshot
	address      Address
	note         string
	pricing      Pricing

	paymentMethod  PaymentMethod
	paymentStatus  PaymentStatus
	paidAmount     decimal.Decimal
	gatewayOrderID string

	status         Status
	stockReducedBy *kernel.UUID
	createdAt      time.Time
	cancelledAt    *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order. Payment is always pending at creation;
// online orders record the total as paid amount up front and are corrected by
// payment reconciliation.
func NewOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	items []Item,
	profile ProfileSnapshot,
	address Address,
	note string,
	method PaymentMethod,
	pricing Pricing,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		profile:       profile,
		note:          note,
		pricing:       pricing,
		paymentStatus: PaymentPending,
		paidAmount:    decimal.Zero,
		status:        Pending,
		createdAt:     createdAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(method),
	); err != nil {
		return nil, err
	}

	if method == Online {
		o.paidAmount = pricing.Total()
	}
	return o, nil
}

// Snapshot carries the persisted state of an order back into the domain.
type Snapshot struct {
	ID             kernel.UUID
	Number         string
	UserID         kernel.UUID
	Items          []Item
	Profile        ProfileSnapshot
	Address        Address
	Note           string
	Pricing        Pricing
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	PaidAmount     decimal.Decimal
	GatewayOrderID string
	Status         Status
	StockReducedBy *kernel.UUID
	CreatedAt      time.Time
	CancelledAt    *time.Time
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		profile:        s.Profile,
		note:           s.Note,
		pricing:        s.Pricing,
		paidAmount:     s.PaidAmount,
		gatewayOrderID: s.GatewayOrderID,
		createdAt:      s.CreatedAt.UTC(),
		cancelledAt:    s.CancelledAt,
		guard:          guard.NewConstructorGuard(),
	}

	var reducedBy error
	if s.StockReducedBy != nil {
		reducedBy = s.StockReducedBy.Validate()
		by := *s.StockReducedBy
		o.stockReducedBy = &by
	}

	var paymentStatus error
	if _, ok := map[PaymentStatus]bool{PaymentPending: true, PaymentPaid: true, PaymentFailed: true}[s.PaymentStatus]; !ok {
		paymentStatus = errs.NewValueIsInvalidError("payment_status")
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setUserID(s.UserID),
		o.setItems(s.Items),
		o.setAddress(s.Address),
		o.setPaymentMethod(s.PaymentMethod),
		s.Status.Validate(),
		paymentStatus,
		reducedBy,
	); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.paymentStatus = s.PaymentStatus
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number is the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ShopOwnerIDs is the distinct set of shops selling the items, in item order.
func (o *Order) ShopOwnerIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), o.shopOwnerIDs...)
}

func (o *Order) Profile() ProfileSnapshot {
	return o.profile
}

func (o *Order) Address() Address {
	return o.address
}

func (o *Order) Note() string {
	return o.note
}

func (o *Order) Pricing() Pricing {
	return o.pricing
}

func (o *Order) Total() decimal.Decimal {
	return o.pricing.Total()
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaidAmount() decimal.Decimal {
	return o.paidAmount
}

// GatewayOrderID is the payment gateway's reference, empty until a payment is started.
func (o *Order) GatewayOrderID() string {
	return o.gatewayOrderID
}

func (o *Order) Status() Status {
	return o.status
}

// StockReduced reports whether stock is currently deducted for this order.
func (o *Order) StockReduced() bool {
	return o.stockReducedBy != nil
}

// StockReducedBy is the shop whose items were deducted, nil when no stock is held.
func (o *Order) StockReducedBy() *kernel.UUID {
	if o.stockReducedBy == nil {
		return nil
	}
	by := *o.stockReducedBy
	return &by
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// BelongsTo reports whether userID placed the order.
func (o *Order) BelongsTo(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// HasShopOwner reports whether ownerID sells at least one item of the order.
func (o *Order) HasShopOwner(ownerID kernel.UUID) bool {
	for _, id := range o.shopOwnerIDs {
		if id.IsEqual(ownerID) {
			return true
		}
	}
	return false
}

// ItemsOwnedBy returns the items sold by ownerID.
func (o *Order) ItemsOwnedBy(ownerID kernel.UUID) []Item {
	var owned []Item
	for _, item := range o.items {
		if item.OwnerID().IsEqual(ownerID) {
			owned = append(owned, item)
		}
	}
	return owned
}

// Transition moves the order to next on behalf of actor.
//
// Shop owners referenced by the order may apply any transition in the table.
// The customer who placed the order may only cancel. Accepting deducts the
// acting shop's items once; cancelling restores whatever was deducted. The
// returned StatusChange lists the stock deltas to persist with the new status.
func (o *Order) Transition(actor kernel.Actor, next Status, now time.Time) (StatusChange, error) {
	if err := o.authorize(actor, next); err != nil {
		return StatusChange{}, err
	}
	if err := o.status.ValidateTransition(next); err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{From: o.status, To: next, By: actor}

	switch {
	case next == Accepted && o.stockReducedBy == nil:
		for _, item := range o.ItemsOwnedBy(actor.ID) {
			change.Stock = append(change.Stock, StockDelta{ProductID: item.ProductID(), Delta: -item.Quantity()})
		}
		by := actor.ID
		o.stockReducedBy = &by
	case next == Cancelled && o.stockReducedBy != nil:
		for _, item := range o.ItemsOwnedBy(*o.stockReducedBy) {
			change.Stock = append(change.Stock, StockDelta{ProductID: item.ProductID(), Delta: item.Quantity()})
		}
		o.stockReducedBy = nil
	}

	if next == Cancelled {
		at := now.UTC()
		o.cancelledAt = &at
	}
	o.status = next
	return change, nil
}

func (o *Order) authorize(actor kernel.Actor, next Status) error {
	switch actor.Role {
	case kernel.ShopOwner:
		if o.HasShopOwner(actor.ID) {
			return nil
		}
	case kernel.Customer:
		if o.BelongsTo(actor.ID) && next == Cancelled {
			return nil
		}
	}
	return errs.NewAccessDeniedError(actor.String(), "order "+o.id.String())
}

// NextStatusesFor returns the statuses actor may move the order to.
func (o *Order) NextStatusesFor(actor kernel.Actor) []Status {
	var next []Status
	for _, candidate := range o.status.NextStatuses() {
		if o.authorize(actor, candidate) == nil {
			next = append(next, candidate)
		}
	}
	return next
}

// MarkPaid records a captured payment. Repeating it is a no-op; the return value
// reports whether anything changed.
func (o *Order) MarkPaid() bool {
	if o.paymentStatus == PaymentPaid {
		return false
	}
	o.paymentStatus = PaymentPaid
	o.paidAmount = o.pricing.Total()
	return true
}

// MarkPaymentFailed records a failed payment unless the order is already paid.
func (o *Order) MarkPaymentFailed() bool {
	if o.paymentStatus == PaymentPaid || o.paymentStatus == PaymentFailed {
		return false
	}
	o.paymentStatus = PaymentFailed
	return true
}

// AttachGatewayOrder stores the gateway reference of a newly started payment.
// Attaching the current reference again is a no-op.
func (o *Order) AttachGatewayOrder(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("gateway_order_id")
	}
	if err := o.EnsurePayable(); err != nil {
		return err
	}
	if o.gatewayOrderID != "" && o.gatewayOrderID != reference {
		return errs.NewBusinessRuleViolationError(ErrGatewayOrderAttached, o.gatewayOrderID)
	}
	o.gatewayOrderID = reference
	return nil
}

// EnsurePayable rejects paid and cancelled orders.
func (o *Order) EnsurePayable() error {
	if o.paymentStatus == PaymentPaid {
		return errs.NewBusinessRuleViolationError(ErrOrderNotPayable, "order is already paid")
	}
	if o.status == Cancelled {
		return errs.NewBusinessRuleViolationError(ErrOrderNotPayable, "order is cancelled")
	}
	return nil
}

// EnsureDeletableBy checks that userID placed the order and it is still pending.
func (o *Order) EnsureDeletableBy(userID kernel.UUID) error {
	if !o.BelongsTo(userID) {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	if o.status != Pending {
		return errs.NewBusinessRuleViolationError(ErrOrderNotDeletable, fmt.Sprintf("order is %s", o.status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	owners := make([]kernel.UUID, 0, 1)
	seen := make(map[kernel.UUID]struct{})
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.OwnerID()]; !ok {
			seen[item.OwnerID()] = struct{}{}
			owners = append(owners, item.OwnerID())
		}
	}

	o.items = append([]Item(nil), items...)
	o.shopOwnerIDs = owners
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery_address", err)
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
