package handlers

import (
	applog "handmadehaven/internal/log"
	"handmadehaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type LangHandler struct{}

// Switch persists the language choice in a long-lived cookie so it
// survives reloads; every render resolves it fresh.
func (h *LangHandler) Switch(c *fiber.Ctx) error {
	lang, ok := validate.Lang(c.FormValue("lang"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "lang"})
		return c.Status(400).SendString("unsupported language")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
