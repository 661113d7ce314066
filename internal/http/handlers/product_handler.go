package handlers

import (
	"handmadehaven/internal/catalog"
	"handmadehaven/internal/domain"
	applog "handmadehaven/internal/log"
	"handmadehaven/internal/services"
	"handmadehaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func filterFromQuery(c *fiber.Ctx) catalog.FilterState {
	return catalog.Parse(
		c.Query("q"),
		c.Query("category"),
		c.Query("min"),
		c.Query("max"),
		c.Query("sort"),
	)
}

// Browse renders the catalog page: one unfiltered fetch, then the
// in-memory pipeline. The category selection is mirrored into the
// shareable URL; everything else stays page-local.
func (h *ProductHandler) Browse(c *fiber.Ctx) error {
	f := filterFromQuery(c)
	products, err := h.Catalog.Browse(f)
	if err != nil {
		applog.Error(c, "products.browse.fail", err, nil)
		return render(c, "products", fiber.Map{
			"Err": "Could not load products. Please try again.",
		})
	}
	return render(c, "products", fiber.Map{
		"Products":   products,
		"Count":      len(products),
		"Filter":     f,
		"HasFilters": f.IsActive(),
		"ShareQuery": f.ShareQuery(),
		"Categories": domain.Categories,
		"SortKeys": []catalog.SortKey{
			catalog.SortNewest, catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating,
		},
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}

// APIList is the JSON catalog feed; it runs the same filter pipeline
// as the rendered page.
func (h *ProductHandler) APIList(c *fiber.Ctx) error {
	f := filterFromQuery(c)
	products, err := h.Catalog.Browse(f)
	if err != nil {
		applog.Error(c, "products.api.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

// Availability probes a product's stock flag.
func (h *ProductHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	avail, err := h.Catalog.Availability(id)
	if err != nil {
		applog.Error(c, "products.availability.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "availability check failed"})
	}
	return c.JSON(avail)
}
