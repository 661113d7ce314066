package handlers

import (
	applog "handmadehaven/internal/log"
	"handmadehaven/internal/services"
	"handmadehaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Favs *services.FavoriteService
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	rows, err := h.Favs.List(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load followed artisans"})
	}
	return render(c, "favorites", fiber.Map{"Artisans": rows})
}

func (h *FavoriteHandler) Follow(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("artisanId"))
	if !ok {
		return c.Status(400).SendString("missing artisanId")
	}
	if err := h.Favs.Follow(sid, id); err != nil {
		applog.Error(c, "favorites.follow.fail", err, map[string]any{"artisan": id})
		return c.Status(500).SendString("Could not follow artisan")
	}
	applog.Audit(c, "favorites.follow", map[string]any{"artisan": id})
	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	return c.Redirect(back)
}

func (h *FavoriteHandler) Unfollow(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("artisanId"))
	if !ok {
		return c.Status(400).SendString("missing artisanId")
	}
	if err := h.Favs.Unfollow(sid, id); err != nil {
		applog.Error(c, "favorites.unfollow.fail", err, map[string]any{"artisan": id})
		return c.Status(500).SendString("Could not unfollow artisan")
	}
	applog.Audit(c, "favorites.unfollow", map[string]any{"artisan": id})
	return c.Redirect("/favorites")
}
