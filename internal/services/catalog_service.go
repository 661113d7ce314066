package services

import (
	"database/sql"

	"handmadehaven/internal/catalog"
	"handmadehaven/internal/domain"
	"handmadehaven/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Browse fetches the full catalog once and narrows it in memory with
// the filter pipeline. Changing a filter re-runs the pipeline against
// the same fetch; it never re-queries the store.
func (s *CatalogService) Browse(f catalog.FilterState) ([]domain.Product, error) {
	all, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

func (s *CatalogService) Newest(limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.Prods.ListNewest(limit)
}

func (s *CatalogService) ByArtisan(artisanID string) ([]domain.Product, error) {
	return s.Prods.ListByArtisan(artisanID)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Availability maps the product stock flag to the probe statuses; an
// unknown product reads as out of stock rather than an error.
func (s *CatalogService) Availability(productID string) (domain.Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Availability{Status: "OUT_OF_STOCK"}, nil
		}
		return domain.Availability{}, err
	}
	if p.Available() {
		return domain.Availability{Status: "IN_STOCK"}, nil
	}
	return domain.Availability{Status: "OUT_OF_STOCK"}, nil
}
