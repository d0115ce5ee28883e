// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleInternalError answers a failed webhook processing with 500 so callers
// know the notification did not go out.
func HandleInternalError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}

// HandleInvalidEmailError rejects an invalid test recipient address with 400.
func HandleInvalidEmailError(c *fiber.Ctx, addr string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Status:  "error",
		Message: fmt.Sprintf("Email inválido: %s", addr),
	})
}
