package handlers

import (
	"io"

	applog "handmadehaven/internal/log"
	"handmadehaven/internal/onboarding"
	"handmadehaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	Apps    *onboarding.Store
	Onboard *services.OnboardingService
}

// notice codes carried through the post/redirect/get loop; the page
// maps them to translated toasts.
const (
	noticeFileTooLarge = "file-too-large"
	noticeSubmitFailed = "submit-failed"
)

// formFields in posting order; a POST only overwrites the fields it
// actually carried, so step pages never clobber each other.
var formFields = []string{"name", "city", "state", "phone", "bio", "category"}

func (h *SellerHandler) absorbForm(c *fiber.Ctx, app *onboarding.Application) {
	for _, field := range formFields {
		if c.Request().PostArgs().Has(field) {
			app.Set(field, c.FormValue(field))
		}
	}
}

func (h *SellerHandler) Show(c *fiber.Ctx) error {
	app := h.Apps.Get(ensureSID(c))
	return render(c, "seller", fiber.Map{
		"Step":     app.Step,
		"Form":     app,
		"Errors":   app.Errors,
		"Complete": app.Complete,
		"Notice":   c.Query("notice"),
	})
}

func (h *SellerHandler) Next(c *fiber.Ctx) error {
	app := h.Apps.Get(ensureSID(c))
	h.absorbForm(c, app)
	if !app.Next() {
		applog.Info(c, "seller.step.invalid", map[string]any{"step": app.Step, "fields": len(app.Errors)})
	}
	return c.Redirect("/become-seller")
}

func (h *SellerHandler) Back(c *fiber.Ctx) error {
	app := h.Apps.Get(ensureSID(c))
	h.absorbForm(c, app)
	app.Back()
	return c.Redirect("/become-seller")
}

// Document takes the multipart upload at selection time; oversized
// files bounce with a notice and never enter the application.
func (h *SellerHandler) Document(c *fiber.Ctx) error {
	app := h.Apps.Get(ensureSID(c))

	fh, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing document")
	}
	if fh.Size > onboarding.MaxDocumentSize {
		applog.Security(c, "seller.document.too_large", map[string]any{"size": fh.Size})
		return c.Redirect("/become-seller?notice=" + noticeFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		applog.Error(c, "seller.document.open.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("unreadable document")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, onboarding.MaxDocumentSize+1))
	if err != nil {
		applog.Error(c, "seller.document.read.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("unreadable document")
	}
	if err := app.Attach(fh.Filename, int64(len(data)), data); err != nil {
		applog.Security(c, "seller.document.too_large", map[string]any{"size": len(data)})
		return c.Redirect("/become-seller?notice=" + noticeFileTooLarge)
	}

	applog.Audit(c, "seller.document.attached", map[string]any{"name": fh.Filename, "size": len(data)})
	return c.Redirect("/become-seller")
}

// Submit runs the upload/insert/insert sequence. On failure the wizard
// stays on the verification step with everything entered intact; the
// user retries manually.
func (h *SellerHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	app := h.Apps.Get(sid)

	artisanID, err := h.Onboard.Submit(app)
	if err != nil {
		if err == services.ErrNotReady {
			return c.Redirect("/become-seller")
		}
		applog.Error(c, "seller.submit.fail", err, nil)
		return c.Redirect("/become-seller?notice=" + noticeSubmitFailed)
	}

	applog.Audit(c, "seller.submit.ok", map[string]any{"artisan": artisanID})
	return c.Redirect("/become-seller")
}
