package storefront

import (
	"context"
	"errors"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/api"
	"go.uber.org/zap"
)

const (
	msgEmptyCart   = "Please add items to your cart before placing an order."
	msgOrderPlaced = "Thank you for your order! Your order ID is: %s"
	msgOrderFailed = "There was an error processing your order. Please try again."
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrServerRejected = errors.New("server reported failure")
	ErrMissingOrderID = errors.New("order id is missing")
)

// OrderFields are the order form inputs. The address is typed into the form's message box.
type OrderFields = api.Contact

// OrderForm drives checkout: Idle → Validating → Submitting → Succeeded | Failed.
// There is no in-flight guard; concurrent Submit calls each send a request.
type OrderForm struct {
	cart     Cart
	api      CheckoutAPI
	notifier Notifier
	logger   *zap.Logger

	fields  OrderFields
	state   State
	orderID string
	lastErr error
}

func NewOrderForm(cart Cart, checkout CheckoutAPI, notifier Notifier, logger *zap.Logger) (*OrderForm, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	if checkout == nil {
		return nil, errors.New("checkout api is nil")
	}
	if notifier == nil {
		return nil, errors.New("notifier is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OrderForm{
		cart:     cart,
		api:      checkout,
		notifier: notifier,
		logger:   logger,
	}, nil
}

func (f *OrderForm) SetFields(fields OrderFields) {
	f.fields = fields
}

func (f *OrderForm) Fields() OrderFields {
	return f.fields
}

func (f *OrderForm) State() State {
	return f.state
}

// OrderID is the id of the last successful order.
func (f *OrderForm) OrderID() string {
	return f.orderID
}

// Err is the cause of the last failure, for diagnostics.
func (f *OrderForm) Err() error {
	return f.lastErr
}

func (f *OrderForm) Reset() {
	f.fields = OrderFields{}
}

// Submit runs one pass of the state machine and returns the state it settled in.
func (f *OrderForm) Submit(ctx context.Context) State {
	f.state = StateValidating
	f.lastErr = nil

	if f.cart.IsEmpty() {
		f.lastErr = ErrEmptyCart
		f.state = StateIdle
		f.notifier.Notify(msgEmptyCart)
		return f.state
	}

	f.state = StateSubmitting
	req := api.NewCheckoutRequest(f.fields, f.cart.Snapshot())

	orderID, err := f.submit(ctx, req)
	if err != nil {
		f.lastErr = err
		f.state = StateFailed
		f.logger.Warn("checkout failed",
			zap.Int("items", len(req.Items)),
			zap.Float64("total", req.Total),
			zap.Error(err))
		f.notifier.Notify(msgOrderFailed)
		return f.state
	}

	f.orderID = orderID
	f.state = StateSucceeded
	f.logger.Info("order placed", zap.String("order_id", orderID))
	f.notifier.Notify(fmt.Sprintf(msgOrderPlaced, orderID))
	f.cart.Clear()
	f.Reset()

	return f.state
}

func (f *OrderForm) submit(ctx context.Context, req api.CheckoutRequest) (string, error) {
	resp, err := f.api.Checkout(ctx, req)
	if err != nil {
		return "", fmt.Errorf("api.Checkout: %w", err)
	}

	if !resp.Success {
		if resp.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrServerRejected, resp.Error)
		}
		return "", ErrServerRejected
	}

	if resp.OrderID == "" {
		return "", ErrMissingOrderID
	}

	return resp.OrderID.String(), nil
}
