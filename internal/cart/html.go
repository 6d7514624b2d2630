package cart

import (
	"bytes"
	"fmt"
	"html/template"
)

var fragment = template.Must(template.New("cart").Parse(
	`{{range .Rows}}<div class="cart-item"><p>{{.Label}} <span>{{.LineTotal}}</span></p><button class="remove-item" data-name="{{.RemoveKey}}">Remove</button></div>
{{end}}<span id="cart-total">{{.Total}}</span>
`))

// HTMLSink renders the cart as an HTML fragment and keeps only the latest one.
// When a replace callback is set it receives every fragment in full and must
// swap out whatever it showed before.
type HTMLSink struct {
	last    []byte
	replace func([]byte) error
}

// NewHTMLSink returns a sink; replace may be nil.
func NewHTMLSink(replace func([]byte) error) *HTMLSink {
	return &HTMLSink{replace: replace}
}

func (s *HTMLSink) Show(v View) error {
	var buf bytes.Buffer
	if err := fragment.Execute(&buf, v); err != nil {
		return fmt.Errorf("fragment.Execute: %w", err)
	}

	s.last = buf.Bytes()

	if s.replace != nil {
		if err := s.replace(s.last); err != nil {
			return fmt.Errorf("replace: %w", err)
		}
	}

	return nil
}

// String returns the most recent fragment.
func (s *HTMLSink) String() string {
	return string(s.last)
}
