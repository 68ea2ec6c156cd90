package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContext(t *testing.T) {
	var captured context.Context

	app := fiber.New()
	app.Use(RequestContext())
	app.Get("/", func(c *fiber.Ctx) error {
		captured = c.UserContext()
		assert.NotEqual(t, context.Background(), captured)
		assert.NoError(t, captured.Err())
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, captured)
	assert.ErrorIs(t, captured.Err(), context.Canceled)
}
