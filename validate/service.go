package validate

import (
	"fmt"
	"strconv"

	"laundry_os/model"

	"github.com/gofiber/fiber/v2"
)

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if *input.UnitPrice < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unit price must not be negative",
				"field": "unitPrice",
			})
		}
		if input.ExpressMultiplier != nil && *input.ExpressMultiplier < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Express multiplier must be at least 1",
				"field": "expressMultiplier",
			})
		}

		c.Locals("createServiceInput", input)
		return c.Next()
	}
}

func EditService(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid service id",
			})
		}
		c.Locals("inputId", id)

		var input model.EditServiceInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if input.UnitPrice != nil && *input.UnitPrice < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unit price must not be negative",
				"field": "unitPrice",
			})
		}

		c.Locals("editServiceInput", input)
		return c.Next()
	}
}
