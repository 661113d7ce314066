package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"handmadehaven/internal/domain"
	"handmadehaven/internal/onboarding"
	"handmadehaven/internal/validate"

	"github.com/google/uuid"
)

// ErrNotReady means submission was attempted before the final step
// validated; the wizard stays where it is.
var ErrNotReady = errors.New("application is not ready to submit")

// The store collaborators, kept narrow so tests can inject failures at
// each point of the submission sequence.
type DocumentStore interface {
	Save(path string, r io.Reader) (string, error)
}

type ArtisanCreator interface {
	Insert(domain.ArtisanInsert) (string, error)
}

type VerificationCreator interface {
	Insert(domain.VerificationInsert) error
}

type OnboardingService struct {
	Docs          DocumentStore
	Artisans      ArtisanCreator
	Verifications VerificationCreator
}

func NewOnboardingService(docs DocumentStore, artisans ArtisanCreator, verifications VerificationCreator) *OnboardingService {
	return &OnboardingService{Docs: docs, Artisans: artisans, Verifications: verifications}
}

// Self-registered sellers start with the seeded rating and an
// unverified phone; review happens manually against the document.
const seedRating = 5.0

// Submit runs the three-step submission sequence strictly in order:
// document upload, artisan insert, verification insert. Any failure
// aborts and returns with the application unchanged so the user can
// retry; nothing already written is rolled back (an orphaned document
// or artisan row is acceptable, the review queue catches it).
func (s *OnboardingService) Submit(app *onboarding.Application) (string, error) {
	if !app.ReadyToSubmit() {
		return "", ErrNotReady
	}

	// Correlation key standing in for an authenticated identity.
	userID := uuid.NewString()

	var docPath *string
	if doc := app.Document; doc != nil {
		path := documentPath(userID, doc.Name, time.Now())
		stored, err := s.Docs.Save(path, bytes.NewReader(doc.Data))
		if err != nil {
			return "", fmt.Errorf("upload document: %w", err)
		}
		docPath = &stored
	}

	phone, _ := validate.Phone(app.Phone)
	artisanID, err := s.Artisans.Insert(domain.ArtisanInsert{
		UserID:          &userID,
		Name:            strings.TrimSpace(app.Name),
		City:            ptr(strings.TrimSpace(app.City)),
		State:           ptr(strings.TrimSpace(app.State)),
		Bio:             ptr(strings.TrimSpace(app.Bio)),
		Phone:           &phone,
		IsPhoneVerified: false,
		Rating:          ptr(seedRating),
	})
	if err != nil {
		return "", fmt.Errorf("create artisan profile: %w", err)
	}

	if err := s.Verifications.Insert(domain.VerificationInsert{
		UserID:      userID,
		ArtisanID:   &artisanID,
		DocumentURL: docPath,
		Status:      "pending",
	}); err != nil {
		return "", fmt.Errorf("create verification record: %w", err)
	}

	app.MarkComplete()
	return artisanID, nil
}

// documentPath keys the stored object by {userID}/{unix-millis}.{ext},
// the extension taken from the picked file's name.
func documentPath(userID, filename string, now time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return fmt.Sprintf("%s/%d", userID, now.UnixMilli())
	}
	return fmt.Sprintf("%s/%d.%s", userID, now.UnixMilli(), ext)
}

func ptr[T any](v T) *T { return &v }
