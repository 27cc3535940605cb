package controller

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	service  service.IUserService
	verifier security.TokenVerifier
}

func NewUserController(service service.IUserService, verifier security.TokenVerifier) IUserController {
	return &userController{service: service, verifier: verifier}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	anyUser := serverutils.RequireRoles(c.verifier, security.AnyUser)
	adminOnly := serverutils.RequireRoles(c.verifier, security.AdminOnly)

	h := r.Group("/users")
	h.Get("", adminOnly, c.GetAll)
	h.Get("/:id", anyUser, c.Show)
	h.Patch("/:id", anyUser, c.Update)
	h.Delete("/:id", adminOnly, c.Delete)
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	page, err := serverutils.PageQuery(ctx)
	if err != nil {
		return err
	}
	res, total, err := c.service.FindAll(ctx.UserContext(), page)
	if err != nil {
		return err
	}
	serverutils.SetTotalCount(ctx, total)
	return ctx.JSON(serverutils.SuccessResponse("Success get all users", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show user", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update user", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
