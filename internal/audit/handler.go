package audit

import (
	"inventory-backend/internal/database"
	"inventory-backend/internal/httpx"
	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	Before      any                `json:"before"`
	After       any                `json:"after"`
}

// GET /api/audit-logs?entity_type=product&entity_id=1&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.WithContext(c.UserContext()).Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if eid, ok := httpx.QueryUint(c, "entity_id"); ok {
			dbq = dbq.Where("entity_id = ?", eid)
		}
		if action := models.AuditAction(c.Query("action")); action != "" {
			dbq = dbq.Where("action = ?", action)
		}

		limit := httpx.QueryInt(c, "limit", defaultListLimit)
		if limit <= 0 || limit > maxListLimit {
			limit = defaultListLimit
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error; err != nil {
			return err
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
				Before:      httpx.RawJSON(l.BeforeData),
				After:       httpx.RawJSON(l.AfterData),
			})
		}
		return c.JSON(resp)
	}
}
