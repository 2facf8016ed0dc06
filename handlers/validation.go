package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/tasks"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError là body của response 422
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// Message là body lỗi đơn giản
type Message struct {
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Dùng tên trong tag json làm tên field khi báo lỗi
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("flag", func(fl validator.FieldLevel) bool {
		_, ok := tasks.FlagFromValue(fl.Field().Interface())
		return ok
	})
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := models.ParseStamp(fl.Field().String())
		return err == nil
	})

	return v
}

// validateRequest trả về lỗi theo từng field, nil nếu hợp lệ
func validateRequest(req any) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error(), Errors: map[string][]string{}}
	}

	out := &ValidationError{Errors: make(map[string][]string, len(fieldErrs))}
	var first string
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		if first == "" {
			first = msg
		}
		out.Errors[fe.Field()] = append(out.Errors[fe.Field()], msg)
	}

	out.Message = first
	if rest := len(fieldErrs) - 1; rest > 0 {
		plural := "error"
		if rest > 1 {
			plural = "errors"
		}
		out.Message = fmt.Sprintf("%s (and %d more %s)", first, rest, plural)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "datetime":
		return fmt.Sprintf("The %s field must match the format %s.", name, fe.Param())
	case "flag":
		return fmt.Sprintf("The %s field must be true or false.", name)
	case "timestamp":
		return fmt.Sprintf("The %s field must be a valid date.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

func respondValidation(c *fiber.Ctx, verr *ValidationError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(verr)
}

// parseBody đọc JSON body; body rỗng được coi như {}
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(Message{Message: err.Error()})
}
