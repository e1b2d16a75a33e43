package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/azerguest/azerguest-api/internal/media"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

// multipartOverhead is allowed on top of the image cap for form boundaries and headers.
const multipartOverhead = 64 << 10

type AdminHandler struct {
	places *service.PlaceService
}

// RegisterAdmin mounts catalog management for administrators. maxImageBytes
// caps the request body of image uploads.
func RegisterAdmin(e *echo.Echo, auth *service.AuthService, places *service.PlaceService, maxImageBytes int64) {
	handler := &AdminHandler{places: places}

	group := e.Group("/api/admin", RequireAuth(auth), RequireAdmin(auth))
	group.POST("/places", handler.createPlace)
	group.POST("/places/:id/image", handler.uploadImage,
		middleware.BodyLimit(strconv.FormatInt(maxImageBytes+multipartOverhead, 10)+"B"))
}

func (h *AdminHandler) createPlace(c echo.Context) error {
	var req PlaceCreateRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid place")
	}

	place, err := h.places.Create(c.Request().Context(), service.PlaceCreateInput{
		Name:        req.Name,
		Category:    req.Category,
		Region:      req.Region,
		Price:       req.Price,
		Rating:      req.Rating,
		Image:       req.Image,
		Description: req.Description,
		Features:    req.Features,
	})
	if err != nil {
		return respondError(c, err, "could not create place")
	}
	return c.JSON(http.StatusCreated, util.OK("Place created", util.Envelope{"place": place}))
}

func (h *AdminHandler) uploadImage(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid place id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "unable to read upload")
	}
	defer src.Close()

	place, err := h.places.UploadImage(c.Request().Context(), id, media.Upload{
		Reader:   src,
		Size:     fileHeader.Size,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		return respondError(c, err, "could not store image")
	}
	return c.JSON(http.StatusOK, util.OK("Image uploaded", util.Envelope{"place": place}))
}
