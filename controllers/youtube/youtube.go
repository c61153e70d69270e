package youtubeController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	youtubeValidator "lms/validators/youtube"
)

// YoutubeController resolves lesson video URLs to metadata.
type YoutubeController struct {
	youtube *services.YoutubeService
}

func NewYoutubeController(youtube *services.YoutubeService) *YoutubeController {
	return &YoutubeController{youtube: youtube}
}

func (ctrl *YoutubeController) FetchData(c *fiber.Ctx) error {
	rawURL, ok := c.Locals("validatedYoutubeURL").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	data, err := ctrl.youtube.FetchYoutubeData(c.Context(), rawURL)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "YouTube data fetched successfully!", data)
}

func (ctrl *YoutubeController) ValidateURL(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedYoutubeValidate").(*youtubeValidator.ValidateURLRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "URL validated.", fiber.Map{
		"isValid": services.IsValidYoutubeURL(reqData.URL),
	})
}

func (ctrl *YoutubeController) InvalidateVideoCache(c *fiber.Ctx) error {
	videoID := c.Params("videoId")
	if videoID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	if err := ctrl.youtube.InvalidateVideo(c.Context(), videoID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to invalidate cache!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video cache invalidated successfully!", nil)
}

func (ctrl *YoutubeController) InvalidatePlaylistCache(c *fiber.Ctx) error {
	playlistID := c.Params("playlistId")
	if playlistID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist id!", nil)
	}

	if err := ctrl.youtube.InvalidatePlaylist(c.Context(), playlistID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to invalidate cache!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlist cache invalidated successfully!", nil)
}
