package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/smesiteli/storefront/internal/catalog/domain"
	"github.com/smesiteli/storefront/internal/platform/logger"
)

type postgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) CatalogRepository {
	return &postgresCatalogRepository{db: db}
}

func (r *postgresCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, slug FROM categories ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			logger.Error("ListCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListCategories: rows iteration error", err)
		return nil, err
	}
	return categories, nil
}

func (r *postgresCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, slug, description, price, currency, images, category_slug,
		material, finish, availability, rating, review_count, features
		FROM products ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p           domain.Product
			rating      sql.NullFloat64
			reviewCount sql.NullInt64
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Currency,
			pq.Array(&p.Images), &p.Category, &p.Material, &p.Finish,
			&p.Availability, &rating, &reviewCount, pq.Array(&p.Features),
		); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		// Rating is paired with its review count; a row with only one of
		// the two is treated as unrated.
		if rating.Valid && reviewCount.Valid {
			p.Rating = &domain.Rating{Value: rating.Float64, ReviewCount: int(reviewCount.Int64)}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}
