package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
	platformpostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and the order_product association in
// PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderProductRecord{})
	}
	return repo
}

type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	OrderDate time.Time `gorm:"column:order_date;not null"`
	BuyerID   int64     `gorm:"column:buyer_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// orderProductRecord is the junction row. The composite primary key keeps
// an (order_id, product_id) pair from ever being duplicated.
type orderProductRecord struct {
	OrderID   int64 `gorm:"primaryKey;column:order_id"`
	ProductID int64 `gorm:"primaryKey;column:product_id"`
}

func (orderProductRecord) TableName() string { return "order_product" }

// Create inserts a new order bound to its buyer.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if platformpostgres.IsForeignKeyViolation(err) {
			return nil, ports.ErrBuyerNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by primary key, including its product set.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	productIDs, err := r.productIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.toDomain(productIDs), nil
}

// ListByBuyer returns all orders placed by a buyer.
func (r *Repository) ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Where("buyer_id = ?", buyerID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		productIDs, err := r.productIDs(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, records[i].toDomain(productIDs))
	}
	return orders, nil
}

// CountByBuyer reports how many orders reference a buyer.
func (r *Repository) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where("buyer_id = ?", buyerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddProduct appends an association row. A duplicate pair maps to
// ports.ErrProductLinked without mutating state.
func (r *Repository) AddProduct(ctx context.Context, orderID, productID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := orderProductRecord{OrderID: orderID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if platformpostgres.IsUniqueViolation(err) {
			return ports.ErrProductLinked
		}
		if platformpostgres.IsForeignKeyViolation(err) {
			return ports.ErrProductNotFound
		}
		return err
	}
	return nil
}

// RemoveProduct deletes an association row.
func (r *Repository) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&orderProductRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrProductNotLinked
	}
	return nil
}

// DetachProduct deletes every association row for the product. The store's
// ON DELETE CASCADE usually beats this to it; removing zero rows is fine.
func (r *Repository) DetachProduct(ctx context.Context, productID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&orderProductRecord{}).Error
}

func (r *Repository) productIDs(ctx context.Context, orderID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&orderProductRecord{}).
		Where("order_id = ?", orderID).
		Order("product_id").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:        order.ID,
		OrderDate: order.OrderDate,
		BuyerID:   order.BuyerID,
	}
}

func (r orderRecord) toDomain(productIDs []int64) *domain.Order {
	return &domain.Order{
		ID:         r.ID,
		OrderDate:  r.OrderDate,
		BuyerID:    r.BuyerID,
		ProductIDs: productIDs,
	}
}
