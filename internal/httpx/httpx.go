// Package httpx holds the request parsing and response helpers shared by the
// HTTP handlers.
package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/reports"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

// ParseID reads a positive integer route parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Invalid(name, "invalid id %q", raw)
	}
	return uint(id), nil
}

// ParseBody decodes a JSON body into v.
func ParseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return apperr.Invalid("", "invalid request body: %v", err)
	}
	return nil
}

// QueryUint returns a positive integer query value. Missing or malformed
// values report false.
func QueryUint(c *fiber.Ctx, key string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// QueryInt returns an integer query value or def.
func QueryInt(c *fiber.Ctx, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// QueryDate returns a date query value. Malformed values report false.
func QueryDate(c *fiber.Ctx, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// QueryDateRange reads start_date and end_date (or startDate and endDate).
// Both are required. A date-only end covers that whole day, so the returned
// end is exclusive.
func QueryDateRange(c *fiber.Ctx) (start, end time.Time, ok bool) {
	startRaw := firstQuery(c, "start_date", "startDate")
	endRaw := firstQuery(c, "end_date", "endDate")
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := ParseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = ParseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(endRaw)); err == nil {
		end = end.AddDate(0, 0, 1)
	} else {
		end = end.Add(time.Nanosecond)
	}
	return start, end, true
}

func firstQuery(c *fiber.Ctx, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

// ParseDate accepts YYYY-MM-DD or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Date is a JSON date accepting YYYY-MM-DD or RFC 3339 strings.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	d.Time = t
	return nil
}

// ValidEmail reports whether s is a single bare address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// RawJSON returns stored JSON text as-is for embedding in a response.
func RawJSON(s string) json.RawMessage {
	if strings.TrimSpace(s) == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}

func Created(c *fiber.Ctx, v any) error {
	return c.Status(fiber.StatusCreated).JSON(v)
}

func Message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"message": msg})
}

// WantsXLSX reports whether the client asked for a spreadsheet.
func WantsXLSX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Query("format"), "xlsx")
}

// SendXLSX writes s as an Excel download named after base and today's date.
func SendXLSX(c *fiber.Ctx, base string, s reports.Sheet) error {
	var buf bytes.Buffer
	if err := reports.WriteXLSX(&buf, s); err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s.xlsx", base, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}
