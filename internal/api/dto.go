package api

type CheckoutRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Address string         `json:"address"`
	Total   float64        `json:"total"`
	Items   []CheckoutItem `json:"items"`
}

type CheckoutItem struct {
	ID       FlexString `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Quantity int        `json:"quantity"`
	Total    float64    `json:"total"`
}

type CheckoutResponse struct {
	Success bool       `json:"success"`
	OrderID FlexString `json:"order_id,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type FeedbackResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Order struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Address   string         `json:"address"`
	Total     float64        `json:"total"`
	Status    string         `json:"status"`
	Items     []CheckoutItem `json:"items"`
	CreatedAt string         `json:"created_at"`
}
