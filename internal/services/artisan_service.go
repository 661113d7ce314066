package services

import (
	"handmadehaven/internal/domain"
	"handmadehaven/internal/repos"
)

type ArtisanService struct {
	Artisans *repos.ArtisanRepo
}

func NewArtisanService(artisans *repos.ArtisanRepo) *ArtisanService {
	return &ArtisanService{Artisans: artisans}
}

// Top returns the highest-rated artisans for the home page strip.
func (s *ArtisanService) Top(limit int) ([]domain.Artisan, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.Artisans.List("rating", limit)
}

func (s *ArtisanService) List() ([]domain.Artisan, error) {
	return s.Artisans.List("newest", 0)
}

// Get returns sql.ErrNoRows for unknown ids; callers render not-found.
func (s *ArtisanService) Get(id string) (domain.Artisan, error) {
	return s.Artisans.Get(id)
}
