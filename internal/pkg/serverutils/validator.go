package serverutils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderTotalCount = "X-Total-Count"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks the validate tags of req and reports the first
// violation as a validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation(err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperror.Validation(fmt.Sprintf("%s is required", fe.Field()))
	case "uuid":
		return apperror.Validation(fmt.Sprintf("%s must be a valid UUID", fe.Field()))
	case "max":
		return apperror.Validation(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "gte":
		return apperror.Validation(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
	case "lte":
		return apperror.Validation(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
	case "oneof":
		return apperror.Validation(fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	default:
		return apperror.Validation(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// ParseBody decodes the JSON body into out. A malformed body is a validation error.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("Malformed request body.").WithCause(err)
	}
	return nil
}

// ParamID reads and validates the ":id" path parameter.
func ParamID(ctx *fiber.Ctx) (uuid.UUID, error) {
	p := dto.IdParam{Id: strings.TrimSpace(ctx.Params("id"))}
	if err := ValidateRequest(p); err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(p.Id), nil
}

// NoteTagParams reads the ":noteId" and ":tagId" path parameters.
func NoteTagParams(ctx *fiber.Ctx) (noteId, tagId uuid.UUID, err error) {
	p := dto.NoteTagParams{
		NoteId: strings.TrimSpace(ctx.Params("noteId")),
		TagId:  strings.TrimSpace(ctx.Params("tagId")),
	}
	if err := ValidateRequest(p); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uuid.MustParse(p.NoteId), uuid.MustParse(p.TagId), nil
}

// PageQuery reads the optional pagination query of list endpoints.
func PageQuery(ctx *fiber.Ctx) (dto.PageQuery, error) {
	var q dto.PageQuery
	if err := ctx.QueryParser(&q); err != nil {
		return q, apperror.Validation("Malformed pagination query.").WithCause(err)
	}
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if err := ValidateRequest(q); err != nil {
		return q, err
	}
	return q, nil
}

// SetTotalCount exposes the unpaginated row count of a list response.
func SetTotalCount(ctx *fiber.Ctx, total int64) {
	ctx.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
}
