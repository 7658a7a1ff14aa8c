package middleware

import (
	"quiz-brief/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LocalStudySetID is the fiber.Ctx local holding a validated study set ID.
const LocalStudySetID = "validated_study_set_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: v,
	}
}

// ValidateStudySetID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateStudySetID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if errors := vm.validator.ValidateStudySetID(id); len(errors) > 0 {
			return errors // handled by ErrorHandler
		}

		c.Locals(LocalStudySetID, id)
		return c.Next()
	}
}
