package domain

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// OrderItem is a point-in-time snapshot of a purchased line. It is
// decoupled from the live Product so later catalog changes do not
// retroactively alter historical orders.
type OrderItem struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the immutable record created at checkout completion.
type Order struct {
	ID      string      `json:"id"`
	BuyerID string      `json:"-"`
	Date    time.Time   `json:"date"`
	Status  OrderStatus `json:"status"`
	Total   float64     `json:"total"`
	Items   []OrderItem `json:"items"`
}

// OrderSummary is the seller-facing view of an order.
type OrderSummary struct {
	ID            string      `json:"id"`
	Date          time.Time   `json:"date"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	ItemCount     int         `json:"item_count"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
}
