package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"handmadehaven/internal/http/handlers"
	"handmadehaven/internal/onboarding"
	"handmadehaven/internal/repos"
	"handmadehaven/internal/services"
	"handmadehaven/internal/storage"
)

type sellerEnv struct {
	app  *fiber.App
	apps *onboarding.Store
	db   *sqlx.DB
}

func newSellerApp(t *testing.T) *sellerEnv {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	docsDir := t.TempDir()
	apps := onboarding.NewStore()
	h := &handlers.SellerHandler{
		Apps: apps,
		Onboard: services.NewOnboardingService(
			storage.NewDocumentStore(docsDir),
			repos.NewArtisanRepo(db),
			repos.NewVerificationRepo(db),
		),
	}

	app := fiber.New()
	app.Server().MaxRequestBodySize = 8 << 20
	app.Use(requestid.New())
	app.Post("/become-seller/next", h.Next)
	app.Post("/become-seller/back", h.Back)
	app.Post("/become-seller/document", h.Document)
	app.Post("/become-seller/submit", h.Submit)
	return &sellerEnv{app: app, apps: apps, db: db}
}

func postForm(t *testing.T, app *fiber.App, path, sid string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func postDocument(t *testing.T, app *fiber.App, sid, filename string, size int) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("document", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.CopyN(part, bytes.NewReader(bytes.Repeat([]byte{0xaa}, size)), int64(size)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/become-seller/document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req, 30000)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestWizardAdvanceAndValidation(t *testing.T) {
	env := newSellerApp(t)
	sid := "wiz-1"

	// Invalid phone keeps the wizard on step 1 with a phone error.
	resp := postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"name": {"Meera Devi"}, "city": {"Jaipur"}, "state": {"Rajasthan"}, "phone": {"12345"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	app := env.apps.Get(sid)
	if app.Step != onboarding.Step1 || app.Errors["phone"] == "" {
		t.Fatalf("want step1 + phone error, got step %d errors %v", app.Step, app.Errors)
	}

	// Fixing only the phone advances; the other fields were kept.
	postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"name": {"Meera Devi"}, "city": {"Jaipur"}, "state": {"Rajasthan"}, "phone": {"98-765 43210"},
	})
	if app.Step != onboarding.Step2 {
		t.Fatalf("want step2, got %d (errors %v)", app.Step, app.Errors)
	}

	// Back never validates.
	postForm(t, env.app, "/become-seller/back", sid, url.Values{})
	if app.Step != onboarding.Step1 {
		t.Fatalf("back should land on step1, got %d", app.Step)
	}
}

func TestWizardOversizedDocumentRejected(t *testing.T) {
	env := newSellerApp(t)
	sid := "wiz-2"

	resp := postDocument(t, env.app, sid, "huge.pdf", onboarding.MaxDocumentSize+1)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.Contains(loc, "notice=file-too-large") {
		t.Fatalf("want too-large notice, got %q", loc)
	}
	app := env.apps.Get(sid)
	if app.Document != nil {
		t.Fatal("oversized file must not enter form state")
	}
	if _, ok := app.Errors["document"]; ok {
		t.Fatal("size rejection must not record a field error")
	}
}

func TestWizardFullSubmission(t *testing.T) {
	env := newSellerApp(t)
	sid := "wiz-3"

	postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"name": {"Raghu Nair Jr"}, "city": {"Kochi"}, "state": {"Kerala"}, "phone": {"9812345678"},
	})
	postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"bio": {"Coconut-wood carving"}, "category": {"Woodwork"},
	})
	app := env.apps.Get(sid)
	if app.Step != onboarding.Step3 {
		t.Fatalf("want step3, got %d (errors %v)", app.Step, app.Errors)
	}

	resp := postDocument(t, env.app, sid, "voterid.png", 4096)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("document status %d", resp.StatusCode)
	}
	if app.Document == nil {
		t.Fatal("document should be attached")
	}

	resp = postForm(t, env.app, "/become-seller/submit", sid, url.Values{})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("submit status %d", resp.StatusCode)
	}
	if !app.Complete {
		t.Fatalf("application should be complete, errors %v", app.Errors)
	}

	var artisans int
	if err := env.db.Get(&artisans, `SELECT COUNT(*) FROM artisans WHERE name='Raghu Nair Jr'`); err != nil {
		t.Fatal(err)
	}
	if artisans != 1 {
		t.Fatalf("want artisan row, got %d", artisans)
	}
	var pending int
	if err := env.db.Get(&pending, `SELECT COUNT(*) FROM seller_verifications WHERE status='pending'`); err != nil {
		t.Fatal(err)
	}
	if pending != 1 {
		t.Fatalf("want pending verification, got %d", pending)
	}
}

func TestWizardSubmitWithoutDocumentStaysPut(t *testing.T) {
	env := newSellerApp(t)
	sid := "wiz-4"

	postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"name": {"Sita"}, "city": {"Bhuj"}, "state": {"Gujarat"}, "phone": {"9898989898"},
	})
	postForm(t, env.app, "/become-seller/next", sid, url.Values{
		"bio": {"Clay work"}, "category": {"Pottery"},
	})

	resp := postForm(t, env.app, "/become-seller/submit", sid, url.Values{})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	app := env.apps.Get(sid)
	if app.Complete {
		t.Fatal("must not complete without a document")
	}
	if app.Errors["document"] == "" {
		t.Fatalf("want document error, got %v", app.Errors)
	}

	var artisans int
	if err := env.db.Get(&artisans, `SELECT COUNT(*) FROM artisans WHERE name='Sita' AND user_id IS NOT NULL`); err != nil {
		t.Fatal(err)
	}
	if artisans != 0 {
		t.Fatal("nothing may be written for a blocked submission")
	}
}
