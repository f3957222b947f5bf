package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-05T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 8, d.UTC().Hour())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateUnmarshal(t *testing.T) {
	var body struct {
		When  Date  `json:"when"`
		Maybe *Date `json:"maybe"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2024-12-31","maybe":null}`), &body))
	assert.Equal(t, 2024, body.When.Year())
	assert.Nil(t, body.Maybe)

	assert.Error(t, json.Unmarshal([]byte(`{"when":"yesterday"}`), &body))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("orders@sunshine.cafe"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("Cafe <orders@sunshine.cafe>"))
}

func TestParseID(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperr.Status(err)).SendString(err.Error())
		},
	})
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := ParseID(c, "id")
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id, "limit": QueryInt(c, "limit", 10)})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/things/42?limit=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, path := range []string{"/things/0", "/things/abc", "/things/-1"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestRawJSON(t *testing.T) {
	assert.Equal(t, "null", string(RawJSON("")))
	assert.Equal(t, `{"a":1}`, string(RawJSON(`{"a":1}`)))
}
