package catalog

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"regexp"
	"strconv"
	"strings"
)

// Entry is a product card as displayed: ID may be empty when the card carries none.
type Entry struct {
	ID        string
	Name      string
	PriceText string
}

type Adder interface {
	AddItem(id, name string, price domain.Money)
}

type Notifier interface {
	Notify(msg string)
}

type Handler struct {
	cart     Adder
	notifier Notifier
	cur      currency.Unit
	newID    func() string
}

func NewHandler(cart Adder, notifier Notifier, cur currency.Unit) (*Handler, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	if notifier == nil {
		return nil, errors.New("notifier is nil")
	}

	return &Handler{
		cart:     cart,
		notifier: notifier,
		cur:      cur,
		newID:    uuid.NewString,
	}, nil
}

// Add puts one unit of the entry into the cart and confirms it to the user.
func (h *Handler) Add(entry Entry) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return errors.New("entry name is empty")
	}

	price, err := ParsePrice(entry.PriceText, h.cur)
	if err != nil {
		return fmt.Errorf("ParsePrice: %w", err)
	}

	id := strings.TrimSpace(entry.ID)
	if id == "" {
		id = h.newID()
	}

	h.cart.AddItem(id, name, price)
	h.notifier.Notify(fmt.Sprintf("Added %s to your order. You can complete your order in the Visit Us section.", name))

	return nil
}

// amountPattern accepts plain decimals and comma-grouped thousands, e.g. "1,200.00".
var amountPattern = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)

// ParsePrice reads a displayed price such as "$5.99", "USD 4" or "1,200.00".
// Only the symbol or ISO code of cur may precede the amount.
func ParsePrice(text string, cur currency.Unit) (domain.Money, error) {
	s := strings.TrimSpace(text)
	if symbol, ok := domain.Symbol(cur); ok && strings.HasPrefix(s, symbol) {
		s = strings.TrimPrefix(s, symbol)
	} else {
		s = strings.TrimPrefix(s, cur.String())
	}
	s = strings.TrimSpace(s)

	if s == "" {
		return domain.Money{}, fmt.Errorf("price[%s] has no amount", text)
	}
	if !amountPattern.MatchString(s) {
		return domain.Money{}, fmt.Errorf("price[%s] is not a %s amount", text, cur)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return domain.Money{}, fmt.Errorf("price[%s] is not valid: %w", text, err)
	}
	if amount.IsNegative() {
		return domain.Money{}, fmt.Errorf("price[%s] is negative", text)
	}

	return domain.NewMoney(amount, cur), nil
}

// EntriesFromProducts builds catalog entries from the shop API product list.
func EntriesFromProducts(products []api.Product, cur currency.Unit) []Entry {
	entries := make([]Entry, 0, len(products))

	for _, p := range products {
		entries = append(entries, Entry{
			ID:        strconv.FormatInt(p.ID, 10),
			Name:      p.Name,
			PriceText: domain.NewMoney(decimal.NewFromFloat(p.Price), cur).String(),
		})
	}

	return entries
}
