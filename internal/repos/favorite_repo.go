package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// FavoriteRepo tracks the artisans a browser session follows.
type FavoriteRepo struct{ db *sqlx.DB }

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

func (r *FavoriteRepo) Ensure(sessionID string) (string, error) {
	var id string
	if err := r.db.Get(&id, `SELECT id FROM favorites WHERE session_id=?`, sessionID); err == nil {
		return id, nil
	}
	_, err := r.db.Exec(`INSERT INTO favorites(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *FavoriteRepo) Add(favoriteID, artisanID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO favorite_items(favorite_id, artisan_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(favorite_id, artisan_id) DO NOTHING
	`, favoriteID, artisanID)
	return err
}

func (r *FavoriteRepo) Remove(favoriteID, artisanID string) error {
	_, err := r.db.Exec(`DELETE FROM favorite_items WHERE favorite_id=? AND artisan_id=?`, favoriteID, artisanID)
	return err
}

type FavoriteRow struct {
	ArtisanID       string   `db:"artisan_id"`
	Name            string   `db:"name"`
	City            string   `db:"city"`
	State           string   `db:"state"`
	Rating          *float64 `db:"rating"`
	IsPhoneVerified bool     `db:"is_phone_verified"`
}

func (r *FavoriteRepo) List(favoriteID string) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.db.Select(&out, `
	  SELECT a.id AS artisan_id, a.name, COALESCE(a.city,'') AS city,
	         COALESCE(a.state,'') AS state, a.rating, a.is_phone_verified
	  FROM favorite_items fi
	  JOIN artisans a ON a.id = fi.artisan_id
	  WHERE fi.favorite_id = ?
	  ORDER BY a.name
	`, favoriteID)
	return out, err
}
