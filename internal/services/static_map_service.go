package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staticmaps/internal/config"
	"staticmaps/internal/models"
	"staticmaps/internal/repositories/interfaces"
	"staticmaps/internal/utils"
	"staticmaps/internal/validators"
	"staticmaps/pkg/cache"
	"staticmaps/pkg/logger"
)

var ErrInvalidMapRequest = errors.New("invalid map request")

type StaticMapService interface {
	// Rendering
	BuildURL(ctx context.Context, req *models.MapRequest) (string, error)
	Render(ctx context.Context, req *models.MapRequest) (*models.RenderedMap, error)

	// Presets
	SavePreset(ctx context.Context, req *validators.PresetCreateRequest, actor string) (*models.MapPreset, error)
	GetPreset(ctx context.Context, name string) (*models.MapPreset, error)
	RenderPreset(ctx context.Context, name, render string) (*models.RenderedMap, error)
	DeletePreset(ctx context.Context, name, actor string) error
	ListPresets(ctx context.Context, params *utils.PaginationParams) ([]*models.MapPreset, int64, error)
}

type staticMapService struct {
	config     *config.MapsConfig
	cache      CacheService
	presetTTL  time.Duration
	presetRepo interfaces.MapPresetRepository
	logger     *logger.Logger
	audit      *logger.AuditLogger
}

func NewStaticMapService(
	mapsConfig *config.MapsConfig,
	cache CacheService,
	presetTTL time.Duration,
	presetRepo interfaces.MapPresetRepository,
	log *logger.Logger,
) StaticMapService {
	return &staticMapService{
		config:     mapsConfig,
		cache:      cache,
		presetTTL:  presetTTL,
		presetRepo: presetRepo,
		logger:     log,
		audit:      logger.NewAuditLoggerFrom(log),
	}
}

func (s *staticMapService) limits() validators.MapLimits {
	return validators.MapLimits{
		MaxWidth:     s.config.MaxWidth,
		MaxHeight:    s.config.MaxHeight,
		MaxMarkers:   s.config.MaxMarkers,
		MaxPaths:     s.config.MaxPaths,
		MaxLocations: s.config.MaxLocations,
	}
}

func (s *staticMapService) defaults() models.RenderDefaults {
	return models.RenderDefaults{
		APIKey:      s.config.APIKey,
		UseHTTPS:    s.config.UseHTTPS,
		UsingSensor: s.config.UsingSensor,
	}
}

func (s *staticMapService) BuildURL(ctx context.Context, req *models.MapRequest) (string, error) {
	rendered, err := s.render(ctx, req)
	if err != nil {
		return "", err
	}
	return rendered.URL, nil
}

func (s *staticMapService) Render(ctx context.Context, req *models.MapRequest) (*models.RenderedMap, error) {
	return s.render(ctx, req)
}

func (s *staticMapService) render(ctx context.Context, req *models.MapRequest) (*models.RenderedMap, error) {
	start := time.Now()

	if errs := validators.ValidateMapRequest(req, s.limits()); len(errs) > 0 {
		return nil, errs
	}

	control, err := req.ToControl(s.defaults())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapRequest, err)
	}

	url := control.URL()
	rendered := &models.RenderedMap{
		URL:    url,
		Output: control.Output(),
		Mode:   control.Mode().String(),
	}

	s.logger.WithContext(ctx).LogMapRender(rendered.Mode, len(url), len(req.Markers), len(req.Paths), time.Since(start))

	return rendered, nil
}

func (s *staticMapService) SavePreset(ctx context.Context, req *validators.PresetCreateRequest, actor string) (*models.MapPreset, error) {
	if errs := validators.ValidatePresetCreate(req, s.limits()); len(errs) > 0 {
		return nil, errs
	}

	preset := &models.MapPreset{
		Name:        req.Name,
		Description: req.Description,
		Request:     req.Request,
		CreatedBy:   actor,
	}

	if err := s.presetRepo.Upsert(ctx, preset); err != nil {
		return nil, err
	}

	s.invalidatePreset(ctx, preset.Name)
	s.audit.LogAction(ctx, logger.AuditPresetSaved, "map_preset", actor, map[string]interface{}{
		"name": preset.Name,
	})

	return preset, nil
}

func (s *staticMapService) GetPreset(ctx context.Context, name string) (*models.MapPreset, error) {
	key := utils.CachePresetPrefix + name

	if s.cache != nil {
		var cached models.MapPreset
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithContext(ctx).WithError(err).Warn("Preset cache read failed")
		}
	}

	preset, err := s.presetRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, preset, s.presetTTL); err != nil {
			s.logger.WithContext(ctx).WithError(err).Warn("Preset cache write failed")
		}
	}

	return preset, nil
}

// RenderPreset renders a stored preset. A non-empty render overrides the
// stored render mode.
func (s *staticMapService) RenderPreset(ctx context.Context, name, render string) (*models.RenderedMap, error) {
	preset, err := s.GetPreset(ctx, name)
	if err != nil {
		return nil, err
	}

	req := preset.Request
	if render != "" {
		req.Render = render
	}

	return s.render(ctx, &req)
}

func (s *staticMapService) DeletePreset(ctx context.Context, name, actor string) error {
	if err := s.presetRepo.Delete(ctx, name); err != nil {
		return err
	}

	s.invalidatePreset(ctx, name)
	s.audit.LogAction(ctx, logger.AuditPresetDeleted, "map_preset", actor, map[string]interface{}{
		"name": name,
	})

	return nil
}

func (s *staticMapService) ListPresets(ctx context.Context, params *utils.PaginationParams) ([]*models.MapPreset, int64, error) {
	return s.presetRepo.List(ctx, params)
}

func (s *staticMapService) invalidatePreset(ctx context.Context, name string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, utils.CachePresetPrefix+name); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Preset cache invalidation failed")
	}
}
