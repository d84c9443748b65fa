package domain

import "time"

type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusProcessing OrderStatus = "processing"
	StatusCollected  OrderStatus = "collected"
	StatusDone       OrderStatus = "done"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCollected, StatusDone:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	CategoryID   *int      `json:"category_id,omitempty"`
	CategoryName string    `json:"category,omitempty"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	Featured     bool      `json:"special_status"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name,omitempty"`
	Availability bool   `json:"availability"`
}

type Order struct {
	ID            int           `json:"id"`
	Address       string        `json:"address"`
	FirstName     string        `json:"firstname"`
	LastName      string        `json:"lastname"`
	PhoneNumber   string        `json:"phonenumber"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Comment       string        `json:"comment"`
	RegisteredAt  time.Time     `json:"registered_at"`
	CalledAt      *time.Time    `json:"called_at,omitempty"`
	DeliveredAt   *time.Time    `json:"delivered_at,omitempty"`
	RestaurantID  *int          `json:"restaurant_id,omitempty"`
	TotalCost     float64       `json:"total_cost"`
	Items         []OrderItem   `json:"products"`
}

// OrderItem.Cost is the product price at the moment the order was placed.
type OrderItem struct {
	ProductID   int     `json:"product"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
}

// OrderUpdate carries the manager-editable fields; nil means unchanged.
type OrderUpdate struct {
	Status        *OrderStatus   `json:"status"`
	PaymentMethod *PaymentMethod `json:"payment_method"`
	Comment       *string        `json:"comment"`
	CalledAt      *time.Time     `json:"called_at"`
	DeliveredAt   *time.Time     `json:"delivered_at"`
	RestaurantID  *int           `json:"restaurant_id"`
}

type Event struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id,omitempty"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	Address      string    `json:"address"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderCreated    = "order_created"
	EventRestaurantSaved = "restaurant_saved"
)

type ProductFilter struct {
	FeaturedOnly  bool
	AvailableOnly bool
}
