package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&saleRecord{},
		&saleProductRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255)"`
}

func (productRecord) TableName() string { return "products" }

// Sale header schema mirrors the sales Postgres adapter.
type saleRecord struct {
	ID   int64     `gorm:"primaryKey;column:id"`
	Date time.Time `gorm:"column:date;autoCreateTime"`
}

func (saleRecord) TableName() string { return "sales" }

// Line-item schema; (sale_id, product_id) is the natural key.
type saleProductRecord struct {
	SaleID    int64 `gorm:"primaryKey;column:sale_id"`
	ProductID int64 `gorm:"primaryKey;column:product_id"`
	Quantity  int32 `gorm:"column:quantity"`
}

func (saleProductRecord) TableName() string { return "sales_products" }
