package repos

import (
	"time"

	"handmadehaven/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VerificationRepo struct{ db *sqlx.DB }

func NewVerificationRepo(db *sqlx.DB) *VerificationRepo { return &VerificationRepo{db: db} }

func (r *VerificationRepo) Insert(in domain.VerificationInsert) error {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	_, err := r.db.Exec(`
	  INSERT INTO seller_verifications(id,user_id,artisan_id,document_url,status,notes,created_at)
	  VALUES(?,?,?,?,?,?,?)
	`, uuid.NewString(), in.UserID, in.ArtisanID, in.DocumentURL, status, in.Notes,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

// ListByStatus supports the manual review queue.
func (r *VerificationRepo) ListByStatus(status string) ([]domain.SellerVerification, error) {
	out := []domain.SellerVerification{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, artisan_id, document_url, status, notes, created_at, reviewed_at
	  FROM seller_verifications
	  WHERE status = ?
	  ORDER BY created_at
	`, status)
	return out, err
}
