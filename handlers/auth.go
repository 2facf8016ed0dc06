package handlers

import (
	"github.com/biosecret/go-tasks/metrics"
	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const tokenType = "Bearer"

// LoginHandler godoc
// @Summary      Mocked login
// @Description  Validates the credentials shape and returns a random 60-character token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "Credentials"
// @Success      200          {object}  models.LoginResponse
// @Failure      422          {object}  ValidationError
// @Router       /login [post]
func LoginHandler(c *fiber.Ctx) error {
	input := new(models.LoginRequest)
	if err := parseBody(c, input); err != nil {
		return respondBadBody(c, err)
	}
	if verr := validateRequest(input); verr != nil {
		return respondValidation(c, verr)
	}

	// Không kiểm tra mật khẩu, chỉ cấp token ngẫu nhiên
	accessToken, err := utils.GenerateAccessToken()
	if err != nil {
		zap.L().Error("failed to generate access token", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "could not generate access token")
	}
	metrics.Get().TokensIssuedTotal.Inc()

	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Message:     "Mocked login successful",
		AccessToken: accessToken,
		TokenType:   tokenType,
	})
}
