package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resto_pos_backend/internal/models"

	"github.com/lib/pq"
)

// CatalogRepository defines the interface for category and product
// database operations.
type CatalogRepository interface {
	// Category methods
	CreateCategory(executor SQLExecutor, category *models.Category) (int64, error)
	GetCategoryByID(id int64) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(executor SQLExecutor, category *models.Category) error
	DeleteCategory(executor SQLExecutor, id int64) error

	// Product methods
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByID(id int64) (*models.Product, error)
	GetProducts(categoryID *int64, page, pageSize int) ([]models.Product, int, error) // products, total count, error
	UpdateProduct(executor SQLExecutor, product *models.Product) error
	DeleteProduct(executor SQLExecutor, id int64) error
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// --- Category Methods ---

func (r *catalogRepository) CreateCategory(executor SQLExecutor, category *models.Category) (int64, error) {
	query := `INSERT INTO categories (name, created_at, updated_at)
	          VALUES ($1, $2, $3)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query, category.Name, currentTime, currentTime).Scan(&category.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: category name '%s' already exists (constraint: %s)", ErrDuplicateKey, category.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating category: %v", ErrDatabaseError, err)
	}
	return category.ID, nil
}

func (r *catalogRepository) GetCategoryByID(id int64) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting category by ID %d: %v", ErrDatabaseError, id, err)
	}
	return category, nil
}

func (r *catalogRepository) GetCategories() ([]models.Category, error) {
	categories := []models.Category{}
	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating category rows: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func (r *catalogRepository) UpdateCategory(executor SQLExecutor, category *models.Category) error {
	query := `UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, category.Name, time.Now(), category.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: category name '%s' already exists (constraint: %s)", ErrDuplicateKey, category.Name, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating category ID %d: %v", ErrDatabaseError, category.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for category update ID %d: %v", ErrDatabaseError, category.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *catalogRepository) DeleteCategory(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting category ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting category ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Product Methods ---

func (r *catalogRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products (name, price, category_id, stock_quantity, image_url, is_available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query,
		product.Name, product.Price, product.CategoryID, product.StockQuantity,
		product.ImageURL, product.IsAvailable, currentTime, currentTime,
	).Scan(&product.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: product name '%s' already exists (constraint: %s)", ErrDuplicateKey, product.Name, pqErr.Constraint)
			}
			if pqErr.Code == "23503" {
				return 0, fmt.Errorf("%w: creating product (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
			}
		}
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

func (r *catalogRepository) GetProductByID(id int64) (*models.Product, error) {
	product := &models.Product{}
	var categoryName sql.NullString
	query := `SELECT p.id, p.name, p.price, p.category_id, c.name as category_name,
	                 p.stock_quantity, p.image_url, p.is_available, p.created_at, p.updated_at
	          FROM products p
	          LEFT JOIN categories c ON p.category_id = c.id
	          WHERE p.id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&product.ID, &product.Name, &product.Price, &product.CategoryID, &categoryName,
		&product.StockQuantity, &product.ImageURL, &product.IsAvailable, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, id, err)
	}
	if categoryName.Valid {
		name := categoryName.String
		product.CategoryName = &name
	}
	return product, nil
}

func (r *catalogRepository) GetProducts(categoryID *int64, page, pageSize int) ([]models.Product, int, error) {
	products := []models.Product{}
	totalCount := 0

	query := `SELECT p.id, p.name, p.price, p.category_id, c.name as category_name,
	                 p.stock_quantity, p.image_url, p.is_available, p.created_at, p.updated_at,
	                 COUNT(*) OVER() AS total_count
	          FROM products p
	          LEFT JOIN categories c ON p.category_id = c.id`
	args := []interface{}{}
	argCounter := 1

	if categoryID != nil {
		query += fmt.Sprintf(" WHERE p.category_id = $%d", argCounter)
		args = append(args, *categoryID)
		argCounter++
	}
	query += " ORDER BY p.name"

	if pageSize > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCounter)
		args = append(args, pageSize)
		argCounter++
		if page > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argCounter)
			args = append(args, (page-1)*pageSize)
		}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		var categoryName sql.NullString
		err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.CategoryID, &categoryName,
			&p.StockQuantity, &p.ImageURL, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		if categoryName.Valid {
			name := categoryName.String
			p.CategoryName = &name
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, totalCount, nil
}

func (r *catalogRepository) UpdateProduct(executor SQLExecutor, product *models.Product) error {
	query := `UPDATE products
	          SET name = $1, price = $2, category_id = $3, stock_quantity = $4,
	              image_url = $5, is_available = $6, updated_at = $7
	          WHERE id = $8`
	result, err := executor.Exec(query,
		product.Name, product.Price, product.CategoryID, product.StockQuantity,
		product.ImageURL, product.IsAvailable, time.Now(), product.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: product name '%s' already exists (constraint: %s)", ErrDuplicateKey, product.Name, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating product ID %d: %v", ErrDatabaseError, product.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for product update ID %d: %v", ErrDatabaseError, product.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *catalogRepository) DeleteProduct(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
