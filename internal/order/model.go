package order

import (
	"time"

	"edumart/internal/address"
)

type Status int

const (
	StatusPending    Status = 1
	StatusProcessing Status = 2
	StatusShipped    Status = 3
	StatusDelivered  Status = 4
	StatusCancelled  Status = 5
	StatusRefunded   Status = 6
)

var statusNames = map[Status]string{
	StatusPending:    "pending",
	StatusProcessing: "processing",
	StatusShipped:    "shipped",
	StatusDelivered:  "delivered",
	StatusCancelled:  "cancelled",
	StatusRefunded:   "refunded",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatus maps a lower-case status name back to its value.
func ParseStatus(name string) (Status, bool) {
	for s, n := range statusNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Final reports whether the order can no longer change status.
func (s Status) Final() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

type Item struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ProductSKU  *string `json:"productSku,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCost    float64         `json:"shippingCost"`
	Tax             float64         `json:"tax"`
	Discount        float64         `json:"discount"`
	Total           float64         `json:"total"`
	TrackingNumber  *string         `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	OrderItems      []Item          `json:"orderItems"`
	ShippingAddress address.Address `json:"shippingAddress"`
	BillingAddress  address.Address `json:"billingAddress"`
}

func (o Order) Clone() Order {
	o.OrderItems = append([]Item(nil), o.OrderItems...)
	return o
}

type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	PaymentMethod     PaymentMethod            `json:"paymentMethod"`
	ShippingAddressID string                   `json:"shippingAddressId"`
	BillingAddressID  string                   `json:"billingAddressId"`
	CustomerNotes     *string                  `json:"customerNotes,omitempty"`
	OrderItems        []CreateOrderItemRequest `json:"orderItems,omitempty"`
}
