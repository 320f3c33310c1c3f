package middleware

import (
	"strconv"

	"art-atlas/internal/domain"
	"art-atlas/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Keys under which validated values are stored in fiber locals.
const (
	LocalItemID        = "validated_item_id"
	LocalFeaturedCount = "validated_count"
	LocalSessionID     = "validated_session_id"

	// SessionHeader carries the quiz session id.
	SessionHeader = "X-Quiz-Session"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateItemID validates the item id path parameter named param.
func (vm *ValidationMiddleware) ValidateItemID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params(param)
		if errors := vm.validator.ValidateItemID(itemID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(LocalItemID, itemID)
		return c.Next()
	}
}

// ValidateFeaturedCount validates the optional count query parameter.
func (vm *ValidationMiddleware) ValidateFeaturedCount(def, max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count := def
		if countStr := c.Query("count"); countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil {
				return domain.ValidationErrors{
					domain.NewInvalidFormatError("count", countStr),
				}
			}
			count = parsed
		}
		if errors := vm.validator.ValidateFeaturedCount(count, max); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalFeaturedCount, count)
		return c.Next()
	}
}

// ValidateQuizSession validates the optional session header.
func (vm *ValidationMiddleware) ValidateQuizSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionHeader)
		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// ValidateSearch bounds the free-text q query parameter.
func (vm *ValidationMiddleware) ValidateSearch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateSearchQuery(c.Query("q")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}
