package storage

import (
	"database/sql"
	"errors"

	"foodcart/manager-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// NewOrders returns orders with status new, oldest first, with their items.
func (r *PostgresRepository) NewOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, address, firstname, lastname, phonenumber, status, payment_method, comment, registered_at
		FROM orders
		WHERE status = 'new'
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := map[int]int{}
	ids := []int64{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Address, &o.FirstName, &o.LastName, &o.PhoneNumber,
			&o.Status, &o.PaymentMethod, &o.Comment, &o.RegisteredAt); err != nil {
			return nil, err
		}
		o.Items = []domain.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
		ids = append(ids, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.DB.Query(`
		SELECT oi.order_id, oi.product_id, p.name, oi.quantity, oi.cost
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Cost); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

// MenuItems returns every menu item, available or not, grouped by restaurant
// in ascending restaurant id.
func (r *PostgresRepository) MenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.name, r.address, r.contact_phone, m.product_id, m.availability
		FROM restaurant_menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		ORDER BY r.id, m.product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.Restaurant.ID, &item.Restaurant.Name, &item.Restaurant.Address,
			&item.Restaurant.ContactPhone, &item.ProductID, &item.Availability); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Restaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT id, name, address, contact_phone FROM restaurants ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) Products() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT p.id, p.name, COALESCE(c.name, ''), p.price, p.image_url
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) StaffUserByUsername(username string) (*domain.StaffUser, error) {
	var user domain.StaffUser
	err := r.DB.QueryRow(
		"SELECT id, username, password_hash, is_staff FROM staff_users WHERE username = $1", username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsStaff)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateStaffUser(user *domain.StaffUser) error {
	return r.DB.QueryRow(
		"INSERT INTO staff_users (username, password_hash, is_staff) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.PasswordHash, user.IsStaff).
		Scan(&user.ID)
}
