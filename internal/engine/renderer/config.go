package renderer

import (
	"fmt"

	"github.com/Faultbox/hellocone/internal/config"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/engine/shader/sources"
)

// FromConfig creates the engine selected by the application config.
func FromConfig(ctx gles.Context, cfg *config.Config) (Engine, error) {
	shaders, ok := sources.ForProfile(cfg.Renderer.ShaderProfile)
	if !ok {
		return nil, fmt.Errorf("unknown shader profile %q", cfg.Renderer.ShaderProfile)
	}

	return New(Variant(cfg.Renderer.Variant), ctx, Config{
		Shaders:              shaders,
		AnimationDuration:    cfg.Animation.Duration,
		RevolutionsPerSecond: cfg.Animation.RevolutionsPerSecond,
		PressedScale:         cfg.Touch.PressedScale,
		ReleasedScale:        cfg.Touch.ReleasedScale,
	})
}
