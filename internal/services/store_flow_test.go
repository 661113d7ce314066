package services_test

import (
	"testing"

	"handmadehaven/internal/repos"
	"handmadehaven/internal/services"
	"handmadehaven/internal/storage"
)

func TestCartFlow_AddAndView(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	cartSvc := services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))

	sid := "test-session"
	if err := cartSvc.Add(sid, "prd-clay-pot", 2); err != nil {
		t.Fatal(err)
	}
	if err := cartSvc.Add(sid, "prd-clay-pot", 1); err != nil {
		t.Fatal(err)
	}
	if err := cartSvc.Add(sid, "prd-teak-bowl", 0); err != nil { // clamps to 1
		t.Fatal(err)
	}

	cv, err := cartSvc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Items) != 2 {
		t.Fatalf("want 2 lines, got %+v", cv.Items)
	}
	want := 3*500.0 + 900.0
	if cv.Total != want {
		t.Fatalf("total %v, want %v", cv.Total, want)
	}

	// Unknown products never enter the cart.
	if err := cartSvc.Add(sid, "prd-ghost", 1); err == nil {
		t.Fatal("unknown product should fail")
	}
}

func TestFavoriteFlow_FollowUnfollow(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	favSvc := services.NewFavoriteService(repos.NewFavoriteRepo(db))

	sid := "test-session"
	if err := favSvc.Follow(sid, "art-meera"); err != nil {
		t.Fatal(err)
	}
	// Following twice is a no-op, not an error.
	if err := favSvc.Follow(sid, "art-meera"); err != nil {
		t.Fatal(err)
	}
	if err := favSvc.Follow(sid, "art-raghu"); err != nil {
		t.Fatal(err)
	}

	rows, err := favSvc.List(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 follows, got %+v", rows)
	}

	if err := favSvc.Unfollow(sid, "art-meera"); err != nil {
		t.Fatal(err)
	}
	rows, err = favSvc.List(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ArtisanID != "art-raghu" {
		t.Fatalf("unfollow failed: %+v", rows)
	}

	// Other sessions see their own empty list.
	other, err := favSvc.List("another-session")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("sessions must not share follows: %+v", other)
	}
}

// Full submission against the real repos and an on-disk document
// bucket: artisan and verification rows land, the document is stored.
func TestSubmitEndToEnd(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	artRepo := repos.NewArtisanRepo(db)
	verRepo := repos.NewVerificationRepo(db)
	docs := storage.NewDocumentStore(t.TempDir())
	svc := services.NewOnboardingService(docs, artRepo, verRepo)

	app := validApp(t)
	artisanID, err := svc.Submit(app)
	if err != nil {
		t.Fatal(err)
	}

	a, err := artRepo.Get(artisanID)
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "Meera Devi" || a.Phone != "9876543210" || a.IsPhoneVerified {
		t.Fatalf("artisan row wrong: %+v", a)
	}
	if a.Rating == nil || *a.Rating != 5 {
		t.Fatalf("seed rating missing: %+v", a.Rating)
	}

	pending, err := verRepo.ListByStatus("pending")
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("want 1 pending verification, got %d", len(pending))
	}
	v := pending[0]
	if v.ArtisanID == nil || *v.ArtisanID != artisanID {
		t.Fatalf("verification not linked: %+v", v)
	}
	if v.DocumentURL == nil || *v.DocumentURL == "" {
		t.Fatalf("document path missing: %+v", v)
	}
}
