package repositories

import (
	"fmt"

	"seabasket/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// List retrieves available products matching the filter, paginated.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.ProductSummary, error) {
	query := r.db.Model(&models.Product{}).Where("is_available = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MinDiscount != nil {
		query = query.Where("discount >= ?", *filter.MinDiscount)
	}

	switch filter.SortBy {
	case "price_low":
		query = query.Order("price ASC")
	case "price_high":
		query = query.Order("price DESC")
	case "name":
		query = query.Order("name ASC")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var products []models.ProductSummary
	if err := query.Select("id", "name", "price", "discount", "category_id", "rating").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Trending returns the highest-rated available products.
func (r *GORMProductRepository) Trending(limit int) ([]models.ProductSummary, error) {
	var products []models.ProductSummary
	err := r.db.Model(&models.Product{}).
		Where("is_available = ? AND rating IS NOT NULL", true).
		Order("rating DESC").
		Limit(limit).
		Select("id", "name", "price", "discount", "category_id", "rating").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trending products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// UpdateRating persists the recomputed average rating of a product.
func (r *GORMProductRepository) UpdateRating(productID uint, rating float64) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("rating", rating)
	if res.Error != nil {
		return fmt.Errorf("failed to update product rating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", productID, gorm.ErrRecordNotFound)
	}
	return nil
}

// HasOrderDetails reports whether any order detail line references the product.
func (r *GORMProductRepository) HasOrderDetails(productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderDetail{}).Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count order details for product %d: %w", productID, err)
	}
	return count > 0, nil
}

// Images retrieves all images of a product.
func (r *GORMProductRepository) Images(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.db.Find(&images, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to get product images: %w", err)
	}
	return images, nil
}

// AddImage attaches a new image to a product.
func (r *GORMProductRepository) AddImage(image *models.ProductImage) error {
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to add product image: %w", err)
	}
	return nil
}

// DeleteImage removes a product image by its ID.
func (r *GORMProductRepository) DeleteImage(id uint) error {
	res := r.db.Delete(&models.ProductImage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product image %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
