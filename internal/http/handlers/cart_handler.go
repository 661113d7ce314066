package handlers

import (
	applog "handmadehaven/internal/log"
	"handmadehaven/internal/services"
	"handmadehaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.Add(sid, productID, qty); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": productID})
		return c.Status(500).SendString("Could not add to cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load cart"})
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}
