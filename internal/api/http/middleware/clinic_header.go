package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entclinic "github.com/nivaran/nivaran_backend/internal/repo/clinic"
	pasetotoken "github.com/nivaran/nivaran_backend/pkg/paseto"
)

const LocalsClinicID = "clinic_id"

// ClinicHeader resolves the acting clinic from the X-Clinic header (a clinic
// ID or slug) and verifies it exists. Staff tokens scoped to another clinic
// are rejected. The clinic ID lands in c.Locals(LocalsClinicID).
func ClinicHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		val := c.Get("X-Clinic")
		if val == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic header is required")
		}

		q := db.Clinic.Query()
		if id, err := uuid.Parse(val); err == nil {
			q = q.Where(entclinic.ID(id))
		} else {
			q = q.Where(entclinic.Slug(val))
		}

		clinic, err := q.Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrNotFound
			}
			return err
		}

		if claims, ok := pasetotoken.ClaimsFromFiber(c); ok {
			if claims.ClinicID != nil && *claims.ClinicID != clinic.ID {
				return fiber.ErrForbidden
			}
		}

		c.Locals(LocalsClinicID, clinic.ID.String())
		return c.Next()
	}
}

// ClinicIDFromFiber retrieves the resolved clinic ID from Fiber locals.
func ClinicIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(LocalsClinicID)
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}
