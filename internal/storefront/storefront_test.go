package storefront_test

import (
	"context"
	"errors"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/cart"
	"github.com/nikolayk812/bakery-web/internal/client"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/nikolayk812/bakery-web/internal/storefront"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/currency"
	"net/http"
	"net/http/httptest"
	"testing"
)

type notifications []string

func (n *notifications) Notify(msg string) {
	*n = append(*n, msg)
}

type fakeCheckout struct {
	resp  api.CheckoutResponse
	err   error
	calls []api.CheckoutRequest
}

func (f *fakeCheckout) Checkout(_ context.Context, req api.CheckoutRequest) (api.CheckoutResponse, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

type fakeNewsletter struct {
	resp  api.FeedbackResponse
	err   error
	calls []api.FeedbackRequest
}

func (f *fakeNewsletter) Subscribe(_ context.Context, req api.FeedbackRequest) (api.FeedbackResponse, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

func usd(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), currency.USD)
}

func randomFields() storefront.OrderFields {
	return storefront.OrderFields{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Address: gofakeit.Address().Address,
	}
}

func TestOrderForm_EmptyCart(t *testing.T) {
	var notes notifications
	checkout := &fakeCheckout{}
	store := cart.NewStore(currency.USD, nil)

	form, err := storefront.NewOrderForm(store, checkout, &notes, zaptest.NewLogger(t))
	require.NoError(t, err)
	fields := randomFields()
	form.SetFields(fields)

	state := form.Submit(t.Context())

	assert.Equal(t, storefront.StateIdle, state)
	assert.Empty(t, checkout.calls)
	assert.Equal(t, notifications{"Please add items to your cart before placing an order."}, notes)
	assert.Equal(t, fields, form.Fields())
	require.ErrorIs(t, form.Err(), storefront.ErrEmptyCart)
}

func TestOrderForm_Success(t *testing.T) {
	var notes notifications
	checkout := &fakeCheckout{resp: api.CheckoutResponse{Success: true, OrderID: "X123"}}
	store := cart.NewStore(currency.USD, nil)
	store.AddItem("b1", "Bread", usd("5.00"))

	form, err := storefront.NewOrderForm(store, checkout, &notes, zaptest.NewLogger(t))
	require.NoError(t, err)
	fields := randomFields()
	form.SetFields(fields)

	state := form.Submit(t.Context())

	assert.Equal(t, storefront.StateSucceeded, state)
	require.Len(t, checkout.calls, 1)

	sent := checkout.calls[0]
	assert.Equal(t, fields.Name, sent.Name)
	assert.Equal(t, fields.Email, sent.Email)
	assert.Equal(t, fields.Address, sent.Address)
	assert.InDelta(t, 5.0, sent.Total, 0.001)
	assert.Equal(t, []api.CheckoutItem{{ID: "b1", Name: "Bread", Price: 5, Quantity: 1, Total: 5}}, sent.Items)

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "X123")
	assert.Equal(t, "X123", form.OrderID())
	assert.True(t, store.IsEmpty())
	assert.Equal(t, storefront.OrderFields{}, form.Fields())
	assert.NoError(t, form.Err())
}

func TestOrderForm_Failures(t *testing.T) {
	tests := []struct {
		name    string
		resp    api.CheckoutResponse
		err     error
		wantErr error
	}{
		{
			name:    "request rejected",
			err:     errors.New("connection refused"),
			wantErr: nil,
		},
		{
			name:    "server reports failure",
			resp:    api.CheckoutResponse{Success: false, Error: "address is empty"},
			wantErr: storefront.ErrServerRejected,
		},
		{
			name:    "success without order id",
			resp:    api.CheckoutResponse{Success: true},
			wantErr: storefront.ErrMissingOrderID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notes notifications
			checkout := &fakeCheckout{resp: tt.resp, err: tt.err}
			store := cart.NewStore(currency.USD, nil)
			store.AddItem("b1", "Bread", usd("5.00"))

			form, err := storefront.NewOrderForm(store, checkout, &notes, zaptest.NewLogger(t))
			require.NoError(t, err)
			fields := randomFields()
			form.SetFields(fields)

			state := form.Submit(t.Context())

			assert.Equal(t, storefront.StateFailed, state)
			assert.Equal(t, notifications{"There was an error processing your order. Please try again."}, notes)
			assert.Equal(t, 1, store.Len())
			assert.Equal(t, fields, form.Fields())
			require.Error(t, form.Err())
			if tt.wantErr != nil {
				require.ErrorIs(t, form.Err(), tt.wantErr)
			}
			if tt.err != nil {
				require.ErrorIs(t, form.Err(), tt.err)
			}
		})
	}
}

func TestOrderForm_RetryAfterFailure(t *testing.T) {
	var notes notifications
	checkout := &fakeCheckout{err: errors.New("offline")}
	store := cart.NewStore(currency.USD, nil)
	store.AddItem("b1", "Bread", usd("5.00"))

	form, err := storefront.NewOrderForm(store, checkout, &notes, nil)
	require.NoError(t, err)
	form.SetFields(randomFields())

	require.Equal(t, storefront.StateFailed, form.Submit(t.Context()))

	checkout.err = nil
	checkout.resp = api.CheckoutResponse{Success: true, OrderID: "42"}

	require.Equal(t, storefront.StateSucceeded, form.Submit(t.Context()))
	assert.Len(t, checkout.calls, 2)
	assert.True(t, store.IsEmpty())
}

func TestOrderForm_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"order_id":9}`))
	}))
	defer srv.Close()

	var notes notifications
	store := cart.NewStore(currency.USD, nil)
	store.AddItem("1", "Chocolate Cake", usd("25.99"))

	form, err := storefront.NewOrderForm(store, client.New(srv.URL, srv.Client()), &notes, zaptest.NewLogger(t))
	require.NoError(t, err)
	form.SetFields(randomFields())

	require.Equal(t, storefront.StateSucceeded, form.Submit(t.Context()))
	assert.Equal(t, notifications{"Thank you for your order! Your order ID is: 9"}, notes)
}

func TestNewsletterForm(t *testing.T) {
	tests := []struct {
		name      string
		resp      api.FeedbackResponse
		err       error
		wantState storefront.State
		wantNote  string
		keepInput bool
	}{
		{
			name:      "subscribed",
			resp:      api.FeedbackResponse{Success: true},
			wantState: storefront.StateSucceeded,
			wantNote:  "Thank you for subscribing to our newsletter!",
		},
		{
			name:      "server reports failure",
			resp:      api.FeedbackResponse{Success: false},
			wantState: storefront.StateFailed,
			wantNote:  "There was an error processing your subscription. Please try again.",
			keepInput: true,
		},
		{
			name:      "network failure",
			err:       errors.New("dial tcp: refused"),
			wantState: storefront.StateFailed,
			wantNote:  "There was an error processing your subscription. Please try again.",
			keepInput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notes notifications
			newsletter := &fakeNewsletter{resp: tt.resp, err: tt.err}

			form, err := storefront.NewNewsletterForm(newsletter, &notes, zaptest.NewLogger(t))
			require.NoError(t, err)
			fields := storefront.NewsletterFields{Name: gofakeit.Name(), Email: gofakeit.Email()}
			form.SetFields(fields)

			state := form.Submit(t.Context())

			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, notifications{tt.wantNote}, notes)
			require.Len(t, newsletter.calls, 1)
			assert.Equal(t, api.FeedbackRequest{
				Name:    fields.Name,
				Email:   fields.Email,
				Message: "Newsletter subscription",
			}, newsletter.calls[0])

			if tt.keepInput {
				assert.Equal(t, fields, form.Fields())
				require.Error(t, form.Err())
			} else {
				assert.Equal(t, storefront.NewsletterFields{}, form.Fields())
				require.NoError(t, form.Err())
			}
		})
	}
}

func TestCartPopup_Checkout(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)
	popup, err := storefront.NewCartPopup(store, &notes)
	require.NoError(t, err)

	assert.True(t, popup.Hidden())
	popup.Open()

	assert.False(t, popup.Checkout())
	assert.False(t, popup.Hidden())

	store.AddItem("4", "Cupcakes (6)", usd("12.99"))
	store.AddItem("4", "Cupcakes (6)", usd("12.99"))

	assert.True(t, popup.Checkout())
	assert.True(t, popup.Hidden())
	assert.True(t, store.IsEmpty())
	assert.Equal(t, notifications{
		"Your cart is empty!",
		"Thank you for your order! Total: $25.98",
	}, notes)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "submitting", storefront.StateSubmitting.String())
	assert.Equal(t, "unknown", storefront.State(99).String())
}

func TestConstructors_NilDependencies(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)
	checkout := &fakeCheckout{}
	newsletter := &fakeNewsletter{}

	tests := []struct {
		name      string
		build     func() error
		wantError string
	}{
		{
			name: "order form without cart",
			build: func() error {
				_, err := storefront.NewOrderForm(nil, checkout, &notes, nil)
				return err
			},
			wantError: "cart is nil",
		},
		{
			name: "order form without checkout api",
			build: func() error {
				_, err := storefront.NewOrderForm(store, nil, &notes, nil)
				return err
			},
			wantError: "checkout api is nil",
		},
		{
			name: "order form without notifier",
			build: func() error {
				_, err := storefront.NewOrderForm(store, checkout, nil, nil)
				return err
			},
			wantError: "notifier is nil",
		},
		{
			name: "newsletter form without api",
			build: func() error {
				_, err := storefront.NewNewsletterForm(nil, &notes, nil)
				return err
			},
			wantError: "newsletter api is nil",
		},
		{
			name: "newsletter form without notifier",
			build: func() error {
				_, err := storefront.NewNewsletterForm(newsletter, nil, nil)
				return err
			},
			wantError: "notifier is nil",
		},
		{
			name: "popup without cart",
			build: func() error {
				_, err := storefront.NewCartPopup(nil, &notes)
				return err
			},
			wantError: "cart is nil",
		},
		{
			name: "popup without notifier",
			build: func() error {
				_, err := storefront.NewCartPopup(store, nil)
				return err
			},
			wantError: "notifier is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.build(), tt.wantError)
		})
	}
}
