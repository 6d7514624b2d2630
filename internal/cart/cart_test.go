package cart_test

import (
	"bytes"
	"errors"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/bakery-web/internal/cart"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"strings"
	"testing"
)

type recordingSink struct {
	views []cart.View
}

func (s *recordingSink) Show(v cart.View) error {
	s.views = append(s.views, v)
	return nil
}

func (s *recordingSink) last() cart.View {
	return s.views[len(s.views)-1]
}

func usd(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), currency.USD)
}

func TestStore_RendersAfterEveryMutation(t *testing.T) {
	sink := &recordingSink{}
	store := cart.NewStore(currency.USD, sink)

	store.AddItem("b1", "Bread", usd("5.00"))
	store.AddItem("b1", "Bread", usd("5.00"))
	store.AddItem("c1", "Croissant", usd("3.99"))
	store.RemoveItem("Croissant")
	store.RemoveItem("Nothing")
	store.Clear()

	// the no-op removal does not render
	require.Len(t, sink.views, 5)

	want := cart.View{
		Rows: []cart.Row{
			{Name: "Bread", Quantity: 2, LineTotal: "$10.00", RemoveKey: "Bread"},
			{Name: "Croissant", Quantity: 1, LineTotal: "$3.99", RemoveKey: "Croissant"},
		},
		Total: "$13.99",
	}
	assert.Empty(t, cmp.Diff(want, sink.views[2]))

	assert.Empty(t, sink.last().Rows)
	assert.Equal(t, "$0.00", sink.last().Total)
}

func TestStore_Scenario_AddSameIDTwice(t *testing.T) {
	store := cart.NewStore(currency.USD, nil)

	store.AddItem("b1", "Bread", usd("5.00"))
	store.AddItem("b1", "Bread", usd("5.00"))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, "$10.00", snapshot.Items[0].LineTotal.String())
	assert.Equal(t, "$10.00", store.Total().String())
}

func TestStore_Scenario_RemoveLastUnit(t *testing.T) {
	store := cart.NewStore(currency.USD, nil)
	store.AddItem("b1", "Bread", usd("5.00"))

	store.RemoveItem("Bread")

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, store.Len())
	assert.True(t, store.Total().Amount.IsZero())
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	store := cart.NewStore(currency.USD, nil)
	store.AddItem("b1", "Bread", usd("5.00"))

	snapshot := store.Snapshot()
	store.Clear()

	assert.Len(t, snapshot.Items, 1)
	assert.Equal(t, 0, store.Len())
}

func TestStore_SinkError(t *testing.T) {
	sinkErr := errors.New("detached")
	store := cart.NewStore(currency.USD, cart.SinkFunc(func(cart.View) error {
		return sinkErr
	}))

	store.AddItem("b1", "Bread", usd("5.00"))

	assert.Equal(t, 1, store.Len())
	require.ErrorIs(t, store.RenderErr(), sinkErr)
	require.ErrorIs(t, store.Refresh(), sinkErr)
}

func TestRender_Idempotent(t *testing.T) {
	c := domain.NewCart(currency.USD)
	c.AddItem("1", "Chocolate Cake", usd("25.99"))
	c.AddItem("2", "Croissant", usd("3.99"))
	c.AddItem("2", "Croissant", usd("3.99"))

	first := cart.Render(c)
	second := cart.Render(c)

	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, "$33.97", first.Total)
	assert.Equal(t, "Croissant x 2", first.Rows[1].Label())
}

func TestHTMLSink_ReplacesOutput(t *testing.T) {
	sink := cart.NewHTMLSink(nil)
	store := cart.NewStore(currency.USD, sink)

	store.AddItem("1", "Cupcakes (6)", usd("12.99"))
	store.AddItem("2", "<b>Tart</b>", usd("4.50"))
	store.RemoveItem("Cupcakes (6)")

	out := sink.String()
	assert.NotContains(t, out, "Cupcakes")
	assert.Contains(t, out, `&lt;b&gt;Tart&lt;/b&gt; x 1 <span>$4.50</span>`)
	assert.Contains(t, out, `data-name="&lt;b&gt;Tart&lt;/b&gt;"`)
	assert.Contains(t, out, `<span id="cart-total">$4.50</span>`)
	assert.Equal(t, 1, strings.Count(out, `class="cart-item"`))
}

// appendOnly has no Reset, so it only sees what the replace callback hands it.
type appendOnly struct {
	writes [][]byte
}

func (a *appendOnly) replace(p []byte) error {
	a.writes = append(a.writes, bytes.Clone(p))
	return nil
}

func TestHTMLSink_ReplaceCallbackGetsWholeFragment(t *testing.T) {
	target := &appendOnly{}
	sink := cart.NewHTMLSink(target.replace)
	store := cart.NewStore(currency.USD, sink)

	store.AddItem("1", "Bread", usd("5.00"))
	store.RemoveItem("Bread")

	require.Len(t, target.writes, 2)
	latest := string(target.writes[1])
	assert.Equal(t, sink.String(), latest)
	assert.NotContains(t, latest, "Bread")
	assert.Equal(t, 1, strings.Count(latest, `id="cart-total"`))
	assert.Contains(t, latest, `<span id="cart-total">$0.00</span>`)
}

func TestHTMLSink_ReplaceError(t *testing.T) {
	replaceErr := errors.New("detached")
	sink := cart.NewHTMLSink(func([]byte) error { return replaceErr })

	err := sink.Show(cart.Render(domain.NewCart(currency.USD)))
	require.ErrorIs(t, err, replaceErr)
	assert.Contains(t, sink.String(), `<span id="cart-total">$0.00</span>`)
}
