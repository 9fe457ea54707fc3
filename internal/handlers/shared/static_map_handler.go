package handlers

import (
	"errors"
	"strconv"
	"strings"

	"staticmaps/internal/models"
	"staticmaps/internal/repositories/interfaces"
	"staticmaps/internal/services"
	"staticmaps/internal/utils"
	"staticmaps/internal/validators"
	"staticmaps/pkg/maps"

	"github.com/gin-gonic/gin"
)

type StaticMapHandler struct {
	staticMapService services.StaticMapService
}

func NewStaticMapHandler(staticMapService services.StaticMapService) *StaticMapHandler {
	return &StaticMapHandler{
		staticMapService: staticMapService,
	}
}

// RenderMap renders a map from a JSON body
func (h *StaticMapHandler) RenderMap(c *gin.Context) {
	var request models.MapRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	rendered, err := h.staticMapService.Render(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Map rendered successfully", rendered)
}

// RenderMapFromQuery renders a map described by query parameters. Image mode
// answers with the bare <img> element.
func (h *StaticMapHandler) RenderMapFromQuery(c *gin.Context) {
	request, err := mapRequestFromQuery(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	rendered, err := h.staticMapService.Render(c.Request.Context(), request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if rendered.Mode == maps.RenderImage.String() {
		utils.HTMLResponse(c, rendered.Output)
		return
	}
	utils.SuccessResponse(c, "Map URL built successfully", gin.H{"url": rendered.URL})
}

// GetPreset renders a stored preset
func (h *StaticMapHandler) GetPreset(c *gin.Context) {
	rendered, err := h.staticMapService.RenderPreset(c.Request.Context(), c.Param("name"), c.Query("render"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Preset rendered successfully", rendered)
}

// ListPresets lists stored presets
func (h *StaticMapHandler) ListPresets(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	presets, total, err := h.staticMapService.ListPresets(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
		Total:      total,
		Count:      len(presets),
	}
	utils.SuccessResponseWithMeta(c, "Presets retrieved successfully", presets, meta)
}

// SavePreset creates or replaces a preset
func (h *StaticMapHandler) SavePreset(c *gin.Context) {
	var request validators.PresetCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	preset, err := h.staticMapService.SavePreset(c.Request.Context(), &request, c.GetString(utils.ContextKeySubject))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Preset saved successfully", preset)
}

// DeletePreset removes a preset
func (h *StaticMapHandler) DeletePreset(c *gin.Context) {
	if err := h.staticMapService.DeletePreset(c.Request.Context(), c.Param("name"), c.GetString(utils.ContextKeySubject)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func handleServiceError(c *gin.Context, err error) {
	var validationErrors validators.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		utils.ValidationErrorResponse(c, validationErrors.Map())
	case errors.Is(err, services.ErrInvalidMapRequest):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, interfaces.ErrPresetNotFound):
		utils.NotFoundResponse(c, "Preset")
	default:
		_ = c.Error(err)
		utils.InternalServerErrorResponse(c)
	}
}

// mapRequestFromQuery reads width, height, maptype, zoom, scale, sensor,
// https, center, render and the repeatable marker and path parameters. A path
// value lists its locations separated by "|".
func mapRequestFromQuery(c *gin.Context) (*models.MapRequest, error) {
	width, err := requiredInt(c, "width")
	if err != nil {
		return nil, err
	}
	height, err := requiredInt(c, "height")
	if err != nil {
		return nil, err
	}

	request := &models.MapRequest{
		Width:   width,
		Height:  height,
		MapType: c.Query("maptype"),
		Render:  c.Query("render"),
	}

	if request.Zoom, err = optionalInt(c, "zoom"); err != nil {
		return nil, err
	}
	if request.Scale, err = optionalInt(c, "scale"); err != nil {
		return nil, err
	}
	if request.Sensor, err = optionalBool(c, "sensor"); err != nil {
		return nil, err
	}
	if request.HTTPS, err = optionalBool(c, "https"); err != nil {
		return nil, err
	}

	if center := c.Query("center"); center != "" {
		loc := locationRequest(maps.ParseLocation(center))
		request.Center = &loc
	}

	for _, marker := range c.QueryArray("marker") {
		request.Markers = append(request.Markers, models.MarkerRequest{
			Locations: []models.LocationRequest{locationRequest(maps.ParseLocation(marker))},
		})
	}

	for _, path := range c.QueryArray("path") {
		var locations []models.LocationRequest
		for _, part := range strings.Split(path, "|") {
			locations = append(locations, locationRequest(maps.ParseLocation(part)))
		}
		request.Paths = append(request.Paths, models.PathRequest{Locations: locations})
	}

	return request, nil
}

func locationRequest(loc maps.Location) models.LocationRequest {
	if coords, ok := loc.(maps.Coordinates); ok {
		lat, lng := coords.Latitude, coords.Longitude
		return models.LocationRequest{Latitude: &lat, Longitude: &lng}
	}
	return models.LocationRequest{Address: loc.String()}
}

func requiredInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func optionalInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

func optionalBool(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New(name + " must be true or false")
	}
	return &v, nil
}
