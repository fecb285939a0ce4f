package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts at process start.
// Tables are created if absent; there is no migrations system beyond this.
// The records here mirror the adapter-level schemas and add the cross-table
// constraints the adapters cannot declare on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&buyerRecord{},
		&productRecord{},
		&orderRecord{},
		&orderProductRecord{},
	)
}

// Buyer schema mirrors the buyers Postgres adapter.
type buyerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Address   string    `gorm:"column:address;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(100);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (buyerRecord) TableName() string { return "buyers" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:product_name;type:varchar(100)"`
	Price     float64   `gorm:"column:price;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter and pins the buyer
// foreign key.
type orderRecord struct {
	ID        int64       `gorm:"primaryKey;column:id"`
	OrderDate time.Time   `gorm:"column:order_date;not null"`
	BuyerID   int64       `gorm:"column:buyer_id;not null;index"`
	Buyer     buyerRecord `gorm:"foreignKey:BuyerID"`
	CreatedAt time.Time   `gorm:"column:created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Junction schema: composite primary key keeps a product from appearing
// twice in the same order. Rows disappear with either side of the pair.
type orderProductRecord struct {
	OrderID   int64         `gorm:"primaryKey;column:order_id"`
	ProductID int64         `gorm:"primaryKey;column:product_id"`
	Order     orderRecord   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product   productRecord `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (orderProductRecord) TableName() string { return "order_product" }
