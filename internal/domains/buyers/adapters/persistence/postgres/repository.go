package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
	platformpostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists buyers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&buyerRecord{})
	}
	return repo
}

type buyerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Address   string    `gorm:"column:address;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(100);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (buyerRecord) TableName() string { return "buyers" }

// Create inserts a new buyer. A duplicate email maps to ports.ErrEmailTaken
// and leaves no row behind.
func (r *Repository) Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	clone := *buyer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if platformpostgres.IsUniqueViolation(err) {
			return nil, ports.ErrEmailTaken
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Update replaces all mutable fields of an existing buyer.
func (r *Repository) Update(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	clone := *buyer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&buyerRecord{}).
		Where("id = ?", clone.ID).
		Updates(map[string]any{
			"name":       clone.Name,
			"address":    clone.Address,
			"email":      clone.Email,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if platformpostgres.IsUniqueViolation(result.Error) {
			return nil, ports.ErrEmailTaken
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, clone.ID)
}

// GetByID fetches a buyer by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record buyerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a buyer by primary key.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&buyerRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all buyers.
func (r *Repository) List(ctx context.Context) ([]*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []buyerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	buyers := make([]*domain.Buyer, 0, len(records))
	for i := range records {
		buyers = append(buyers, records[i].toDomain())
	}
	return buyers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres buyer repository not configured")
	}
	return nil
}

func toRecord(buyer *domain.Buyer) buyerRecord {
	return buyerRecord{
		ID:      buyer.ID,
		Name:    buyer.Name,
		Address: buyer.Address,
		Email:   buyer.Email,
	}
}

func (r buyerRecord) toDomain() *domain.Buyer {
	return &domain.Buyer{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Email:   r.Email,
	}
}
