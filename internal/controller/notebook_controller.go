package controller

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetAllForCurrentUser(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type notebookController struct {
	service  service.INotebookService
	verifier security.TokenVerifier
}

func NewNotebookController(service service.INotebookService, verifier security.TokenVerifier) INotebookController {
	return &notebookController{service: service, verifier: verifier}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	public := serverutils.RequireRoles(c.verifier, security.Public)
	anyUser := serverutils.RequireRoles(c.verifier, security.AnyUser)

	h := r.Group("/notebooks")
	h.Get("", public, c.GetAll)
	h.Get("/current-user", anyUser, c.GetAllForCurrentUser)
	h.Get("/:id", public, c.Show)
	h.Post("", anyUser, c.Create)
	h.Patch("/:id", anyUser, c.Update)
	h.Delete("/:id", anyUser, c.Delete)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	page, err := serverutils.PageQuery(ctx)
	if err != nil {
		return err
	}
	res, total, err := c.service.FindAll(ctx.UserContext(), page)
	if err != nil {
		return err
	}
	serverutils.SetTotalCount(ctx, total)
	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

func (c *notebookController) GetAllForCurrentUser(ctx *fiber.Ctx) error {
	res, err := c.service.FindAllForCurrentUser(ctx.UserContext(), serverutils.CurrentUsername(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notebooks of current user", res))
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", res))
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUsername(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create notebook", res))
}

func (c *notebookController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNotebookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update notebook", res))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
