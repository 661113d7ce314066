package handlers

import (
	"handmadehaven/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// render injects the cross-page locals (language strings, CSRF token)
// before handing off to the template engine.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	lang := i18n.Parse(c.Cookies("lang"))
	data["Lang"] = string(lang)
	data["T"] = i18n.Strings(lang)
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// ensureSID returns the browser session id, minting one on first
// contact. Carts, follows and wizard state all key off it.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}
