package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
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

// productRecord maps the product aggregate to a relational table.
type productRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255)"`
}

func (productRecord) TableName() string { return "products" }

// List returns all products ordered by id.
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

// GetByID fetches a product by identifier.
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

// Create inserts a new product and returns it with the generated id.
func (r *Repository) Create(ctx context.Context, name string) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := productRecord{Name: name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// Update renames the product by id.
func (r *Repository) Update(ctx context.Context, id int64, name string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes a product by id.
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

// SearchByName matches names by case-insensitive substring.
func (r *Repository) SearchByName(ctx context.Context, query string) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("id").
		Find(&records).Error; err != nil {
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

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{ID: r.ID, Name: r.Name}
}

func toDomainList(records []productRecord) []*domain.Product {
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products
}
