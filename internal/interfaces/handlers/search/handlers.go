package search

import (
	"errors"

	"matchmaker-backend/internal/application/matching"
	"matchmaker-backend/internal/domain"
	"matchmaker-backend/internal/pkg/response"
	"matchmaker-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *matching.Service
}

// POST /search: bare JSON array of up to 6 scored projects.
func (h *Handlers) Search(c *fiber.Ctx) error {
	var criteria domain.SearchCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusUnprocessableEntity, fiber.Map{"body": err.Error()})
	}
	if fields := validation.SearchCriteria(criteria); len(fields) > 0 {
		return response.Unprocessable(c, fields)
	}

	results, err := h.Service.Search(c.UserContext(), criteria)
	if err != nil {
		if errors.Is(err, matching.ErrStoreUnavailable) || errors.Is(err, matching.ErrStoreQuery) {
			log.Error().Err(err).Str("region", criteria.Region).Msg("search failed")
			return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
		}
		return err
	}
	return c.JSON(results)
}

// GET /districts?region=&city=: sorted district names, [] on any failure.
func (h *Handlers) Districts(c *fiber.Ctx) error {
	return c.JSON(h.Service.Districts(c.UserContext(), c.Query("region"), c.Query("city")))
}

// GET /
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Real Estate Matchmaker API is running"})
}
