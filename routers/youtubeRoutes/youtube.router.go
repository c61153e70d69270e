package youtubeRoutes

import (
	"github.com/gofiber/fiber/v2"

	youtubeController "lms/controllers/youtube"
	youtubeValidator "lms/validators/youtube"
)

func SetupYoutubeRoutes(app *fiber.App, ctrl *youtubeController.YoutubeController, protected fiber.Handler) {
	youtubeGroup := app.Group("/youtube")

	youtubeGroup.Get("/data", youtubeValidator.FetchData(), protected, ctrl.FetchData)
	youtubeGroup.Post("/validate", youtubeValidator.ValidateURL(), protected, ctrl.ValidateURL)
	youtubeGroup.Delete("/cache/video/:videoId", protected, ctrl.InvalidateVideoCache)
	youtubeGroup.Delete("/cache/playlist/:playlistId", protected, ctrl.InvalidatePlaylistCache)
}
