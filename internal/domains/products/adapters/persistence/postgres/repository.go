package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

type productRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	ProductName string    `gorm:"column:product_name;type:varchar(100)"`
	Price       float64   `gorm:"column:price;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Update replaces both mutable fields of an existing product.
func (r *Repository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", clone.ID).
		Updates(map[string]any{
			"product_name": clone.ProductName,
			"price":        clone.Price,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, clone.ID)
}

// GetByID fetches a product by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a product by primary key. Association rows referencing it
// are removed by the order_product cascade constraint.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all products.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// ListByIDs returns the products matching the given ids.
func (r *Repository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:          product.ID,
		ProductName: product.ProductName,
		Price:       product.Price,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:          r.ID,
		ProductName: r.ProductName,
		Price:       r.Price,
	}
}

func toDomainList(records []productRecord) []*domain.Product {
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products
}
