package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	repo, mock := setupRepo(t)
	registered := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Moscow", "Ivan", "Petrov", "+79123456789", "new", "cash", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "registered_at"}).AddRow(15, registered))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(15, 1, 2, 450.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(15, 2, 1, 120.5).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	order := &domain.Order{
		Address:       "Moscow",
		FirstName:     "Ivan",
		LastName:      "Petrov",
		PhoneNumber:   "+79123456789",
		Status:        domain.StatusNew,
		PaymentMethod: domain.PaymentCash,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Cost: 450},
			{ProductID: 2, Quantity: 1, Cost: 120.5},
		},
	}
	require.NoError(t, repo.CreateOrder(order))
	assert.Equal(t, 15, order.ID)
	assert.Equal(t, registered, order.RegisteredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrder_RollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "registered_at"}).AddRow(16, time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.CreateOrder(&domain.Order{
		Status:        domain.StatusNew,
		PaymentMethod: domain.PaymentCash,
		Items:         []domain.OrderItem{{ProductID: 404, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ProductPrices(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT id, price FROM products WHERE id = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price"}).AddRow(1, 450.0).AddRow(2, 99.9))

	prices, err := repo.ProductPrices([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 450, 2: 99.9}, prices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	orderCols := []string{"id", "address", "firstname", "lastname", "phonenumber", "status", "payment_method",
		"comment", "registered_at", "called_at", "delivered_at", "restaurant_id"}

	t.Run("found with items", func(t *testing.T) {
		repo, mock := setupRepo(t)
		now := time.Now()

		mock.ExpectQuery("FROM orders").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow(3, "Moscow", "Ivan", "", "+79123456789", "processing", "card", "", now, now, nil, 2))
		mock.ExpectQuery("FROM order_items").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "name", "quantity", "cost"}).
				AddRow(3, 1, "Pizza", 2, 450.0))

		order, err := repo.GetOrder(3)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, order.Status)
		assert.Equal(t, domain.PaymentCard, order.PaymentMethod)
		require.NotNil(t, order.CalledAt)
		assert.Nil(t, order.DeliveredAt)
		require.NotNil(t, order.RestaurantID)
		assert.Equal(t, 2, *order.RestaurantID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Pizza", order.Items[0].ProductName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery("FROM orders").WithArgs(9).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetOrder(9)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestPostgresRepository_UpdateOrder(t *testing.T) {
	restID := 4
	order := &domain.Order{ID: 1, Status: domain.StatusCollected, PaymentMethod: domain.PaymentCash, RestaurantID: &restID}

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing order",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name: "missing restaurant",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders").WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrRestaurantNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			testCase.setup(mock)

			err := repo.UpdateOrder(order)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_UpsertMenuItem(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery("ON CONFLICT \\(restaurant_id, product_id\\)").
		WithArgs(1, 2, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	item := &domain.MenuItem{RestaurantID: 1, ProductID: 2, Availability: true}
	require.NoError(t, repo.UpsertMenuItem(item))
	assert.Equal(t, 10, item.ID)
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestKafkaPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.Event
		wantKey string
	}{
		{
			name:    "order created",
			event:   domain.Event{Type: domain.EventOrderCreated, OrderID: 12, Address: "Moscow"},
			wantKey: "order:12",
		},
		{
			name:    "restaurant saved",
			event:   domain.Event{Type: domain.EventRestaurantSaved, RestaurantID: 3, Address: "Tula"},
			wantKey: "restaurant:3",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			writer := &recordingWriter{}
			publisher := storage.NewKafkaPublisher(writer)

			require.NoError(t, publisher.Publish(context.Background(), testCase.event))
			require.Len(t, writer.messages, 1)
			assert.Equal(t, testCase.wantKey, string(writer.messages[0].Key))

			var decoded domain.Event
			require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
			assert.Equal(t, testCase.event.Type, decoded.Type)
			assert.Equal(t, testCase.event.Address, decoded.Address)
		})
	}

	t.Run("writer error", func(t *testing.T) {
		publisher := storage.NewKafkaPublisher(&recordingWriter{err: assert.AnError})
		assert.ErrorIs(t, publisher.Publish(context.Background(), domain.Event{Type: domain.EventOrderCreated}), assert.AnError)
	})
}
