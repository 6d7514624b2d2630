package cart

import (
	"github.com/nikolayk812/bakery-web/internal/domain"
	"strconv"
)

// View is the complete visible state of the cart: every render replaces the previous one.
type View struct {
	Rows  []Row
	Total string
}

type Row struct {
	Name      string
	Quantity  int
	LineTotal string

	// RemoveKey identifies the row for the remove control. Removal is by name.
	RemoveKey string
}

// Label is the row text shown next to the line total, e.g. "Bread x 2".
func (r Row) Label() string {
	return r.Name + " x " + strconv.Itoa(r.Quantity)
}

// Render projects the cart into a View. It has no side effects.
func Render(c domain.Cart) View {
	rows := make([]Row, 0, len(c.Items))

	for _, item := range c.Items {
		rows = append(rows, Row{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.String(),
			RemoveKey: item.Name,
		})
	}

	return View{
		Rows:  rows,
		Total: c.Total.String(),
	}
}
