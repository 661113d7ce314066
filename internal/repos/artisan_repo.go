package repos

import (
	"time"

	"handmadehaven/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ArtisanRepo struct{ db *sqlx.DB }

func NewArtisanRepo(db *sqlx.DB) *ArtisanRepo { return &ArtisanRepo{db: db} }

const artisanColumns = `
  id, user_id, name, COALESCE(city,'') AS city, COALESCE(state,'') AS state,
  COALESCE(bio,'') AS bio, COALESCE(avatar_url,'') AS avatar_url,
  COALESCE(phone,'') AS phone, is_phone_verified, rating, created_at`

// List orders by "rating" or "newest" (the only two orderings the
// pages use); limit <= 0 means no limit.
func (r *ArtisanRepo) List(orderBy string, limit int) ([]domain.Artisan, error) {
	order := `created_at DESC`
	if orderBy == "rating" {
		order = `rating DESC` // DESC puts NULL ratings last in sqlite
	}
	q := `SELECT` + artisanColumns + ` FROM artisans ORDER BY ` + order
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	out := []domain.Artisan{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

// Get returns sql.ErrNoRows for an unknown id.
func (r *ArtisanRepo) Get(id string) (domain.Artisan, error) {
	var a domain.Artisan
	err := r.db.Get(&a, `SELECT`+artisanColumns+` FROM artisans WHERE id = ?`, id)
	return a, err
}

// Insert writes a new artisan profile and returns the generated id.
func (r *ArtisanRepo) Insert(in domain.ArtisanInsert) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
	  INSERT INTO artisans(id,user_id,name,city,state,bio,avatar_url,phone,is_phone_verified,rating,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, id, in.UserID, in.Name, in.City, in.State, in.Bio, in.AvatarURL, in.Phone,
		in.IsPhoneVerified, in.Rating, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}
