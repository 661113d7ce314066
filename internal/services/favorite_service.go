package services

import "handmadehaven/internal/repos"

// FavoriteService lets a session follow artisans.
type FavoriteService struct {
	Repo *repos.FavoriteRepo
}

func NewFavoriteService(r *repos.FavoriteRepo) *FavoriteService { return &FavoriteService{Repo: r} }

func (s *FavoriteService) Follow(sessionID, artisanID string) error {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Add(id, artisanID)
}

func (s *FavoriteService) Unfollow(sessionID, artisanID string) error {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Remove(id, artisanID)
}

func (s *FavoriteService) List(sessionID string) ([]repos.FavoriteRow, error) {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(id)
}
