package controller

import "github.com/gofiber/fiber/v2"

type IHelloController interface {
	RegisterRoutes(r fiber.Router)
	Hello(ctx *fiber.Ctx) error
}

type helloController struct{}

func NewHelloController() IHelloController {
	return &helloController{}
}

func (c *helloController) RegisterRoutes(r fiber.Router) {
	r.Get("/hello", c.Hello)
}

func (c *helloController) Hello(ctx *fiber.Ctx) error {
	return ctx.SendString("Hello from Noteboard REST")
}
