package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateName    = errors.New("name already exists")
)

// --- DTOs ---

// CreateCategoryRequest is used for creating or renaming a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProductRequest is used for creating a product.
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"required,gte=0"`
	CategoryID    *int64  `json:"category_id"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateProductRequest is used for partial product updates. Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	CategoryID    *int64   `json:"category_id"`
	StockQuantity *int     `json:"stock_quantity"`
	ImageURL      *string  `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"`
}

// --- CatalogService Interface ---

type CatalogService interface {
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id int64) (*models.Category, error)
	UpdateCategory(id int64, req CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id int64) error

	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProducts(categoryID *int64, page, pageSize int) ([]models.Product, int, error)
	GetProductByID(id int64) (*models.Product, error)
	UpdateProduct(id int64, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id int64) error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	db          *sql.DB
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(catalogRepo repositories.CatalogRepository, db *sql.DB) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, db: db}
}

// --- Category Methods ---

func (s *catalogService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}

	category := models.Category{Name: name}
	if _, err := s.catalogRepo.CreateCategory(s.db, &category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: category '%s'", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return s.catalogRepo.GetCategoryByID(category.ID)
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	categories, err := s.catalogRepo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) GetCategoryByID(id int64) (*models.Category, error) {
	category, err := s.catalogRepo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id int64, req CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}

	category := models.Category{ID: id, Name: name}
	if err := s.catalogRepo.UpdateCategory(s.db, &category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: category '%s'", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return s.catalogRepo.GetCategoryByID(id)
}

func (s *catalogService) DeleteCategory(id int64) error {
	if err := s.catalogRepo.DeleteCategory(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// --- Product Methods ---

func (s *catalogService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("%w: stock quantity cannot be negative", ErrValidation)
	}

	product := models.Product{
		Name:          name,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		IsAvailable:   true,
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if req.ImageURL != "" {
		imageURL := req.ImageURL
		product.ImageURL = &imageURL
	}

	if _, err := s.catalogRepo.CreateProduct(s.db, &product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: product '%s'", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.catalogRepo.GetProductByID(product.ID)
}

func (s *catalogService) GetProducts(categoryID *int64, page, pageSize int) ([]models.Product, int, error) {
	products, totalCount, err := s.catalogRepo.GetProducts(categoryID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get products: %w", err)
	}
	return products, totalCount, nil
}

func (s *catalogService) GetProductByID(id int64) (*models.Product, error) {
	product, err := s.catalogRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(id int64, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.catalogRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: product name cannot be empty if provided", ErrValidation)
		}
		product.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, fmt.Errorf("%w: stock quantity cannot be negative", ErrValidation)
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := s.catalogRepo.UpdateProduct(s.db, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: product '%s'", ErrDuplicateName, product.Name)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return s.catalogRepo.GetProductByID(id)
}

func (s *catalogService) DeleteProduct(id int64) error {
	if err := s.catalogRepo.DeleteProduct(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
