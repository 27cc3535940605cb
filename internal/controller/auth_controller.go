package controller

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	userService service.IUserService
	limiter     fiber.Handler
}

// NewAuthController serves registration and login. limiter guards both routes.
func NewAuthController(authService service.IAuthService, userService service.IUserService, limiter fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		userService: userService,
		limiter:     limiter,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/register", c.limiter, c.Register)
	h.Post("/login", c.limiter, c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.userService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	token, err := c.authService.Authenticate(ctx.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
	}))
}
