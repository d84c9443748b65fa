package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"foodcart/order-svc/internal/domain"

	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.Name, rest.Address, rest.ContactPhone,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, address, contact_phone, created_at
		FROM restaurants
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, address, contact_phone, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	err := r.DB.QueryRow(
		"UPDATE restaurants SET name=$1, address=$2, contact_phone=$3 WHERE id=$4 RETURNING created_at",
		rest.Name, rest.Address, rest.ContactPhone, rest.ID).
		Scan(&rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRestaurantNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateCategory(category *domain.ProductCategory) error {
	return r.DB.QueryRow("INSERT INTO product_categories (name) VALUES ($1) RETURNING id", category.Name).
		Scan(&category.ID)
}

func (r *PostgresRepository) ListCategories() ([]domain.ProductCategory, error) {
	rows, err := r.DB.Query("SELECT id, name FROM product_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.ProductCategory{}
	for rows.Next() {
		var c domain.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateProduct(product *domain.Product) error {
	err := r.DB.QueryRow(`
		INSERT INTO products (name, category_id, price, image_url, special_status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		product.Name, nullableInt(product.CategoryID), product.Price, product.ImageURL, product.Featured, product.Description).
		Scan(&product.ID, &product.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrCategoryNotFound
	}
	return err
}

const productColumns = `
	SELECT p.id, p.name, p.category_id, COALESCE(c.name, ''), p.price, p.image_url,
	       p.special_status, p.description, p.created_at
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p          domain.Product
		categoryID sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Name, &categoryID, &p.CategoryName, &p.Price, &p.ImageURL,
		&p.Featured, &p.Description, &p.CreatedAt)
	if categoryID.Valid {
		id := int(categoryID.Int64)
		p.CategoryID = &id
	}
	return p, err
}

// ListProducts with AvailableOnly keeps products offered by at least one
// restaurant right now.
func (r *PostgresRepository) ListProducts(filter domain.ProductFilter) ([]domain.Product, error) {
	rows, err := r.DB.Query(productColumns+`
		WHERE ($1 = FALSE OR p.special_status)
		  AND ($2 = FALSE OR EXISTS (
		      SELECT 1 FROM restaurant_menu_items m
		      WHERE m.product_id = p.id AND m.availability))
		ORDER BY p.id`, filter.FeaturedOnly, filter.AvailableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	p, err := scanProduct(r.DB.QueryRow(productColumns+" WHERE p.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProduct(product *domain.Product) error {
	result, err := r.DB.Exec(`
		UPDATE products
		SET name=$1, category_id=$2, price=$3, image_url=$4, special_status=$5, description=$6
		WHERE id=$7`,
		product.Name, nullableInt(product.CategoryID), product.Price, product.ImageURL,
		product.Featured, product.Description, product.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrCategoryNotFound
	}
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// ProductPrices returns current prices keyed by product id; unknown ids are
// absent from the map.
func (r *PostgresRepository) ProductPrices(ids []int) (map[int]float64, error) {
	rows, err := r.DB.Query("SELECT id, price FROM products WHERE id = ANY($1)", pq.Array(toInt64(ids)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int]float64, len(ids))
	for rows.Next() {
		var (
			id    int
			price float64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

func (r *PostgresRepository) UpsertMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id) DO UPDATE SET availability = EXCLUDED.availability
		RETURNING id`,
		item.RestaurantID, item.ProductID, item.Availability).
		Scan(&item.ID)
}

func (r *PostgresRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.restaurant_id, m.product_id, p.name, m.availability
		FROM restaurant_menu_items m
		JOIN products p ON p.id = m.product_id
		WHERE m.restaurant_id = $1
		ORDER BY m.product_id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.ProductID, &item.ProductName, &item.Availability); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (address, firstname, lastname, phonenumber, status, payment_method, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, registered_at
	`, order.Address, order.FirstName, order.LastName, order.PhoneNumber,
		order.Status, order.PaymentMethod, order.Comment).Scan(&order.ID, &order.RegisteredAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, quantity, cost)
			VALUES ($1, $2, $3, $4)
		`, order.ID, item.ProductID, item.Quantity, item.Cost); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("order item %d: %w", item.ProductID, domain.ErrProductNotFound)
			}
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	SELECT id, address, firstname, lastname, phonenumber, status, payment_method, comment,
	       registered_at, called_at, delivered_at, restaurant_id
	FROM orders`

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o            domain.Order
		calledAt     sql.NullTime
		deliveredAt  sql.NullTime
		restaurantID sql.NullInt64
	)
	err := row.Scan(&o.ID, &o.Address, &o.FirstName, &o.LastName, &o.PhoneNumber, &o.Status,
		&o.PaymentMethod, &o.Comment, &o.RegisteredAt, &calledAt, &deliveredAt, &restaurantID)
	if calledAt.Valid {
		o.CalledAt = &calledAt.Time
	}
	if deliveredAt.Valid {
		o.DeliveredAt = &deliveredAt.Time
	}
	if restaurantID.Valid {
		id := int(restaurantID.Int64)
		o.RestaurantID = &id
	}
	return o, err
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(orderColumns+" WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems([]int{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

func (r *PostgresRepository) ListOrders(status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.DB.Query(orderColumns+`
		WHERE ($1 = '' OR status = $1)
		ORDER BY id`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []int{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(orderIDs []int) (map[int][]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.order_id, oi.product_id, p.name, oi.quantity, oi.cost
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`, pq.Array(toInt64(orderIDs)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Cost); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateOrder(order *domain.Order) error {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status=$1, payment_method=$2, comment=$3, called_at=$4, delivered_at=$5, restaurant_id=$6
		WHERE id=$7`,
		order.Status, order.PaymentMethod, order.Comment,
		nullableTime(order.CalledAt), nullableTime(order.DeliveredAt), nullableInt(order.RestaurantID),
		order.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrRestaurantNotFound
	}
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
