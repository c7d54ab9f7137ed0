package handler

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
)

// Swagger serves the Swagger UI and the generated document with host and
// scheme taken from the incoming request. The spec is shared process state,
// so rendering is serialized.
func Swagger(spec *swag.Spec) fiber.Handler {
	var mu sync.Mutex
	ui := swagger.New(swagger.Config{InstanceName: spec.InstanceName()})

	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		mu.Lock()
		defer mu.Unlock()
		spec.Host = c.Get(fiber.HeaderHost)
		spec.Schemes = []string{scheme}
		return ui(c)
	}
}
