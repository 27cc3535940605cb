package controller

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddToNote(ctx *fiber.Ctx) error
	RemoveFromNote(ctx *fiber.Ctx) error
}

type tagController struct {
	service  service.ITagService
	verifier security.TokenVerifier
}

func NewTagController(service service.ITagService, verifier security.TokenVerifier) ITagController {
	return &tagController{service: service, verifier: verifier}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	anyUser := serverutils.RequireRoles(c.verifier, security.AnyUser)

	h := r.Group("/tags", anyUser)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	r.Post("/notes/:noteId/tags/:tagId", anyUser, c.AddToNote)
	r.Delete("/notes/:noteId/tags/:tagId", anyUser, c.RemoveFromNote)
}

func (c *tagController) GetAll(ctx *fiber.Ctx) error {
	page, err := serverutils.PageQuery(ctx)
	if err != nil {
		return err
	}
	res, total, err := c.service.FindAll(ctx.UserContext(), page)
	if err != nil {
		return err
	}
	serverutils.SetTotalCount(ctx, total)
	return ctx.JSON(serverutils.SuccessResponse("Success get all tags", res))
}

func (c *tagController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show tag", res))
}

func (c *tagController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create tag", res))
}

func (c *tagController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTagRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update tag", res))
}

func (c *tagController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *tagController) AddToNote(ctx *fiber.Ctx) error {
	noteId, tagId, err := serverutils.NoteTagParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AddTagToNote(ctx.UserContext(), noteId, tagId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tag added to note", res))
}

func (c *tagController) RemoveFromNote(ctx *fiber.Ctx) error {
	noteId, tagId, err := serverutils.NoteTagParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RemoveTagFromNote(ctx.UserContext(), noteId, tagId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tag removed from note", res))
}
