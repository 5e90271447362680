package controller

import (
	"github.com/LionGx2004/cannatracker/internal/pkg/serverutils"
	"github.com/LionGx2004/cannatracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStrainController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	ListStrains(ctx *fiber.Ctx) error
	ListTerpenes(ctx *fiber.Ctx) error
	ListEffects(ctx *fiber.Ctx) error
}

type strainController struct {
	strainService service.IStrainService
}

func NewStrainController(strainService service.IStrainService) IStrainController {
	return &strainController{
		strainService: strainService,
	}
}

func (c *strainController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/strain/v1")
	h.Use(auth)
	h.Get("", c.ListStrains)
	h.Get("terpenes", c.ListTerpenes)
	h.Get("effects", c.ListEffects)
}

func (c *strainController) ListStrains(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)

	res, err := c.strainService.ListStrains(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sorten geladen", res))
}

func (c *strainController) ListTerpenes(ctx *fiber.Ctx) error {
	res, err := c.strainService.ListTerpenes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Terpene geladen", res))
}

func (c *strainController) ListEffects(ctx *fiber.Ctx) error {
	res, err := c.strainService.ListEffects(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Effekte geladen", res))
}
