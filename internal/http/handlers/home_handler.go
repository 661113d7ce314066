package handlers

import (
	applog "handmadehaven/internal/log"
	"handmadehaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Catalog  *services.CatalogService
	Artisans *services.ArtisanService
}

// Home loads the newest-products strip and the top-artisans strip as
// two independent fetches; each carries its own inline error so one
// failing section never blanks the other.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{}

	products, err := h.Catalog.Newest(8)
	if err != nil {
		applog.Error(c, "home.products.fail", err, nil)
		data["ProductsErr"] = "Could not load products. Please try again."
	} else {
		data["Products"] = products
	}

	artisans, err := h.Artisans.Top(6)
	if err != nil {
		applog.Error(c, "home.artisans.fail", err, nil)
		data["ArtisansErr"] = "Could not load artisans. Please try again."
	} else {
		data["Artisans"] = artisans
	}

	return render(c, "home", data)
}
