package domain

import "time"

type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type Restaurant struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

// MenuItem is one restaurant/product pair together with the restaurant it
// belongs to.
type MenuItem struct {
	Restaurant   Restaurant
	ProductID    int
	Availability bool
}

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type Order struct {
	ID            int         `json:"id"`
	Address       string      `json:"address"`
	FirstName     string      `json:"firstname"`
	LastName      string      `json:"lastname"`
	PhoneNumber   string      `json:"phonenumber"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Comment       string      `json:"comment"`
	RegisteredAt  time.Time   `json:"registered_at"`
	TotalCost     float64     `json:"total_cost"`
	Items         []OrderItem `json:"products"`
}

type OrderItem struct {
	ProductID   int     `json:"product"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
}

type Candidate struct {
	Restaurant Restaurant `json:"restaurant"`
	DistanceKm float64    `json:"distance_km"`
}

// OrderCandidates is one row of the manager view. Error is set when the
// candidates could not be computed; Candidates is then empty.
type OrderCandidates struct {
	Order      Order       `json:"order"`
	Candidates []Candidate `json:"candidates"`
	Error      string      `json:"error,omitempty"`
}

// ProductAvailability lists, for one product, a flag per restaurant in the
// order of ProductMatrix.Restaurants.
type ProductAvailability struct {
	Product      Product `json:"product"`
	Availability []bool  `json:"availability"`
}

type ProductMatrix struct {
	Restaurants []Restaurant          `json:"restaurants"`
	Products    []ProductAvailability `json:"products"`
}

type StaffUser struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsStaff      bool   `json:"is_staff"`
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
