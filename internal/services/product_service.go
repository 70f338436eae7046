package services

import (
	"errors"
	"fmt"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"gorm.io/gorm"
)

// trendingLimit caps the trending listing.
const trendingLimit = 10

// ProductService handles catalog business logic.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns available products matching the filter.
func (s *ProductService) List(filter repositories.ProductFilter) ([]models.ProductSummary, error) {
	return s.repo.List(filter)
}

// Trending returns the highest-rated available products.
func (s *ProductService) Trending() ([]models.ProductSummary, error) {
	return s.repo.Trending(trendingLimit)
}

// Get returns a single product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindNotFound, "product_not_found")
		}
		return nil, err
	}
	return product, nil
}

// Create adds a new product to the catalog.
func (s *ProductService) Create(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies non-nil fields of the request to an existing product.
func (s *ProductService) Update(id uint, req ProductUpdate) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.ProductURL != nil {
		product.ProductURL = *req.ProductURL
	}
	if req.Discount != nil {
		product.Discount = req.Discount
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// ProductUpdate carries the optional fields of a product update.
type ProductUpdate struct {
	Name          *string
	Description   *string
	StockQuantity *int
	Price         *float64
	CategoryID    *uint
	ProductURL    *string
	Discount      *int
	IsAvailable   *bool
}

// Delete removes a product. Products referenced by order details are kept:
// their detail lines freeze historical prices and must stay resolvable.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	hasOrders, err := s.repo.HasOrderDetails(id)
	if err != nil {
		return err
	}
	if hasOrders {
		return E(KindConflict, "product_has_orders")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Images returns all images of a product.
func (s *ProductService) Images(productID uint) ([]models.ProductImage, error) {
	if _, err := s.Get(productID); err != nil {
		return nil, err
	}
	return s.repo.Images(productID)
}

// AddImage attaches an image to an existing product.
func (s *ProductService) AddImage(productID uint, imageURL string) (*models.ProductImage, error) {
	if _, err := s.Get(productID); err != nil {
		return nil, err
	}
	image := &models.ProductImage{ProductID: productID, ImageURL: imageURL}
	if err := s.repo.AddImage(image); err != nil {
		return nil, fmt.Errorf("failed to add product image: %w", err)
	}
	return image, nil
}

// DeleteImage removes a product image.
func (s *ProductService) DeleteImage(imageID uint) error {
	if err := s.repo.DeleteImage(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return E(KindNotFound, "product_images_not_found")
		}
		return err
	}
	return nil
}
