package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists sales and their line items in PostgreSQL using GORM.
// Every method is a single statement; sequencing across statements belongs to
// the sales service.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&saleRecord{}, &saleProductRecord{})
	}
	return repo
}

// saleRecord maps the sale header to a relational table.
type saleRecord struct {
	ID   int64     `gorm:"primaryKey;column:id"`
	Date time.Time `gorm:"column:date;autoCreateTime"`
}

func (saleRecord) TableName() string { return "sales" }

// saleProductRecord maps one line item; (sale_id, product_id) is the key.
type saleProductRecord struct {
	SaleID    int64 `gorm:"primaryKey;column:sale_id"`
	ProductID int64 `gorm:"primaryKey;column:product_id"`
	Quantity  int32 `gorm:"column:quantity"`
}

func (saleProductRecord) TableName() string { return "sales_products" }

// saleRowScan receives the join columns for listing.
type saleRowScan struct {
	SaleID    int64     `gorm:"column:sale_id"`
	Date      time.Time `gorm:"column:date"`
	ProductID int64     `gorm:"column:product_id"`
	Quantity  int32     `gorm:"column:quantity"`
}

// CreateSale inserts an empty sale header and returns the generated id.
func (r *Repository) CreateSale(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	record := saleRecord{}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// AddLineItem inserts one line item for the sale.
func (r *Repository) AddLineItem(ctx context.Context, saleID int64, item domain.LineItem) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := saleProductRecord{SaleID: saleID, ProductID: item.ProductID, Quantity: item.Quantity}
	return r.db.WithContext(ctx).Create(&record).Error
}

// List returns the denormalized header join, one row per line item.
func (r *Repository) List(ctx context.Context) ([]domain.SaleRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var scans []saleRowScan
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("sales.id AS sale_id, sales.date AS date, sales_products.product_id AS product_id, sales_products.quantity AS quantity").
		Joins("INNER JOIN sales_products ON sales_products.sale_id = sales.id").
		Order("sales.id, sales_products.product_id").
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	rows := make([]domain.SaleRow, 0, len(scans))
	for _, scan := range scans {
		rows = append(rows, domain.SaleRow{
			SaleID:    scan.SaleID,
			Date:      scan.Date,
			ProductID: scan.ProductID,
			Quantity:  scan.Quantity,
		})
	}
	return rows, nil
}

// GetByID returns the line-item rows of one sale.
func (r *Repository) GetByID(ctx context.Context, saleID int64) ([]domain.SaleItemRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var scans []saleRowScan
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("sales.date AS date, sales_products.product_id AS product_id, sales_products.quantity AS quantity").
		Joins("INNER JOIN sales_products ON sales_products.sale_id = sales.id").
		Where("sales.id = ?", saleID).
		Order("sales_products.product_id").
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	if len(scans) == 0 {
		return nil, ports.ErrNotFound
	}
	rows := make([]domain.SaleItemRow, 0, len(scans))
	for _, scan := range scans {
		rows = append(rows, domain.SaleItemRow{Date: scan.Date, ProductID: scan.ProductID, Quantity: scan.Quantity})
	}
	return rows, nil
}

// DeleteSale removes the sale header by id.
func (r *Repository) DeleteSale(ctx context.Context, saleID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&saleRecord{}, saleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// DeleteLineItems removes every line item of the sale.
func (r *Repository) DeleteLineItems(ctx context.Context, saleID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&saleProductRecord{}).Error
}

// UpdateLineItemQuantity sets the quantity at (saleID, productID).
func (r *Repository) UpdateLineItemQuantity(ctx context.Context, saleID, productID int64, quantity int32) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&saleProductRecord{}).
		Where("sale_id = ? AND product_id = ?", saleID, productID).
		Update("quantity", quantity).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres sale repository not configured")
	}
	return nil
}
