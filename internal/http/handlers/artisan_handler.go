package handlers

import (
	"database/sql"

	applog "handmadehaven/internal/log"
	"handmadehaven/internal/services"
	"handmadehaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ArtisanHandler struct {
	Artisans *services.ArtisanService
	Catalog  *services.CatalogService
}

func (h *ArtisanHandler) List(c *fiber.Ctx) error {
	artisans, err := h.Artisans.List()
	if err != nil {
		applog.Error(c, "artisans.list.fail", err, nil)
		return render(c, "artisans", fiber.Map{
			"Err": "Could not load artisans. Please try again.",
		})
	}
	return render(c, "artisans", fiber.Map{"Artisans": artisans})
}

// Profile loads the artisan and their products as two independent
// fetches; a missing artisan is a 404, a failed product fetch is an
// inline section error.
func (h *ArtisanHandler) Profile(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "artisan"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Artisan not found"})
	}

	artisan, err := h.Artisans.Get(id)
	if err != nil {
		if err != sql.ErrNoRows {
			applog.Error(c, "artisan.get.fail", err, map[string]any{"artisan": id})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Artisan not found"})
	}

	data := fiber.Map{"Artisan": artisan}
	products, err := h.Catalog.ByArtisan(id)
	if err != nil {
		applog.Error(c, "artisan.products.fail", err, map[string]any{"artisan": id})
		data["ProductsErr"] = "Could not load products. Please try again."
	} else {
		data["Products"] = products
	}
	return render(c, "artisan", data)
}
