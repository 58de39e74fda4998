package database

import (
	"database/sql"
	"fmt"
	"os"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// InitDB opens the connection pool, verifies connectivity and applies the
// schema script when a path is provided.
func InitDB(host, port, user, password, dbname, sslmode, dbSchemaPath string) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	utils.LogInfo("Successfully connected to the database")

	if err = applySchema(DB, dbSchemaPath); err != nil {
		return err
	}

	return nil
}

// applySchema reads and executes the db_schema.sql file.
func applySchema(db *sql.DB, schemaPath string) error {
	if schemaPath == "" {
		utils.LogInfo("No schema path provided, skipping schema application")
		return nil
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("could not read schema file %s: %w", schemaPath, err)
	}

	if _, err = db.Exec(string(content)); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	utils.LogInfo("Database schema applied")
	return nil
}

// SeedCatalog inserts the default menu categories if they are missing.
// Existing rows are left untouched.
func SeedCatalog(db *sql.DB) error {
	defaults := []string{
		models.CategoryRice,
		models.CategorySizzling,
		models.CategoryParty,
		models.CategoryDrink,
		models.CategoryCafe,
		models.CategoryMilk,
		models.CategoryFrappe,
	}
	for _, name := range defaults {
		_, err := db.Exec(`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("could not seed category %s: %w", name, err)
		}
	}
	return nil
}

// GetDB returns the database connection pool.
func GetDB() *sql.DB {
	return DB
}
