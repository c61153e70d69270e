package youtubeValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
)

// ValidateURLRequest is the payload for the URL validation endpoint.
type ValidateURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// ValidateURL validator middleware. The URL only has to be present; the
// handler reports whether it is a recognised YouTube link.
func ValidateURL() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ValidateURLRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedYoutubeValidate", reqData)
		return c.Next()
	}
}

// FetchData validator middleware. Requires a url query parameter pointing at
// a YouTube video or playlist.
func FetchData() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawURL := c.Query("url")

		errors := make(map[string]string)
		if rawURL == "" {
			errors["url"] = "url is required!"
		} else if !services.IsValidYoutubeURL(rawURL) {
			errors["url"] = "url must be a valid YouTube link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedYoutubeURL", rawURL)
		return c.Next()
	}
}
