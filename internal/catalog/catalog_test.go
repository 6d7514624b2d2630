package catalog_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/cart"
	"github.com/nikolayk812/bakery-web/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"testing"
)

type notifications []string

func (n *notifications) Notify(msg string) {
	*n = append(*n, msg)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantError string
	}{
		{name: "dollar prefix", text: "$5.99", want: "5.99"},
		{name: "surrounding space", text: "  $ 12.99 ", want: "12.99"},
		{name: "no prefix", text: "3.5", want: "3.5"},
		{name: "iso prefix", text: "USD 4", want: "4"},
		{name: "thousands separator", text: "$1,200.00", want: "1200"},
		{name: "empty: error", text: "$", wantError: "price[$] has no amount"},
		{name: "garbage: error", text: "$abc", wantError: "price[$abc] is not a USD amount"},
		{name: "other currency symbol: error", text: "€5,50", wantError: "price[€5,50] is not a USD amount"},
		{name: "leading text: error", text: "Only 5.00", wantError: "price[Only 5.00] is not a USD amount"},
		{name: "exponent: error", text: "1e3", wantError: "price[1e3] is not a USD amount"},
		{name: "misplaced comma: error", text: "$12,00", wantError: "price[$12,00] is not a USD amount"},
		{name: "grouped millions", text: "$1,234,567.5", want: "1234567.5"},
		{name: "negative: error", text: "-1", wantError: "price[-1] is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParsePrice(tt.text, currency.USD)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.Amount.String())
			assert.Equal(t, currency.USD, got.Currency)
		})
	}
}

func TestHandler_Add(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)

	h, err := catalog.NewHandler(store, &notes, currency.USD)
	require.NoError(t, err)

	require.NoError(t, h.Add(catalog.Entry{ID: "3", Name: "Sourdough Bread", PriceText: "$5.99"}))
	require.NoError(t, h.Add(catalog.Entry{ID: "3", Name: "Sourdough Bread", PriceText: "$5.99"}))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "3", snapshot.Items[0].ID)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, "$11.98", snapshot.Total.String())

	require.Len(t, notes, 2)
	assert.Equal(t, "Added Sourdough Bread to your order. You can complete your order in the Visit Us section.", notes[0])
}

func TestHandler_Add_SynthesizesID(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)

	h, err := catalog.NewHandler(store, &notes, currency.USD)
	require.NoError(t, err)

	name := gofakeit.Dessert()
	require.NoError(t, h.Add(catalog.Entry{Name: name, PriceText: "$2.00"}))
	require.NoError(t, h.Add(catalog.Entry{Name: name, PriceText: "$2.00"}))

	// without an id every click is a separate row
	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 2)
	for _, item := range snapshot.Items {
		_, err := uuid.Parse(item.ID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, snapshot.Items[0].ID, snapshot.Items[1].ID)
}

func TestHandler_Add_FixedIDGenerator(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)

	h, err := catalog.NewHandler(store, &notes, currency.USD)
	require.NoError(t, err)
	h.SetIDGenerator(func() string { return "fixed" })

	require.NoError(t, h.Add(catalog.Entry{Name: "Croissant", PriceText: "$3.99"}))

	assert.Equal(t, "fixed", store.Snapshot().Items[0].ID)
}

func TestHandler_Add_Invalid(t *testing.T) {
	var notes notifications
	store := cart.NewStore(currency.USD, nil)

	h, err := catalog.NewHandler(store, &notes, currency.USD)
	require.NoError(t, err)

	require.EqualError(t, h.Add(catalog.Entry{Name: " ", PriceText: "$1"}), "entry name is empty")
	require.ErrorContains(t, h.Add(catalog.Entry{Name: "Cake", PriceText: "free"}), "ParsePrice")

	assert.True(t, store.IsEmpty())
	assert.Empty(t, notes)
}

func TestNewHandler_Nil(t *testing.T) {
	_, err := catalog.NewHandler(nil, &notifications{}, currency.USD)
	require.EqualError(t, err, "cart is nil")

	_, err = catalog.NewHandler(cart.NewStore(currency.USD, nil), nil, currency.USD)
	require.EqualError(t, err, "notifier is nil")
}

func TestEntriesFromProducts(t *testing.T) {
	entries := catalog.EntriesFromProducts([]api.Product{
		{ID: 1, Name: "Chocolate Cake", Price: 25.99},
		{ID: 4, Name: "Cupcakes (6)", Price: 12.99},
	}, currency.USD)

	assert.Equal(t, []catalog.Entry{
		{ID: "1", Name: "Chocolate Cake", PriceText: "$25.99"},
		{ID: "4", Name: "Cupcakes (6)", PriceText: "$12.99"},
	}, entries)
}
