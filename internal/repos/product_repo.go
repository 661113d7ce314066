package repos

import (
	"handmadehaven/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
  id, artisan_id, name, COALESCE(description,'') AS description, price,
  COALESCE(image_url,'') AS image_url, category, rating, reviews_cnt, in_stock, created_at`

// List returns the whole catalog in store order; the catalog page
// fetches once and narrows in memory.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT`+productColumns+` FROM products`)
	return out, err
}

// ListNewest serves the home page's "newest N" strip.
func (r *ProductRepo) ListNewest(limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT`+productColumns+`
	  FROM products
	  ORDER BY created_at DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *ProductRepo) ListByArtisan(artisanID string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT`+productColumns+`
	  FROM products
	  WHERE artisan_id = ?
	  ORDER BY created_at DESC
	`, artisanID)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productColumns+` FROM products WHERE id = ?`, id)
	return p, err
}
