package pipeline

import (
	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/hud"
	"github.com/Faultbox/hypercube/internal/engine/scene"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

// FromConfig builds pipeline options from the loaded viewer settings. The
// frame is always Width×Height; the window scales it.
func FromConfig(cfg *config.Config) Config {
	pc := Config{
		Width:          Width,
		Height:         Height,
		Trig:           math.TrigByName(cfg.Render.Trig),
		Degenerate:     camera.ParseDegenerate(cfg.Render.Degenerate),
		Focal:          cfg.Render.Focal,
		CameraDistance: cfg.Render.CameraDistance,
		Interpolation:  animation.ParseInterpolation(cfg.Render.Interpolation),
		Scene: scene.Config{
			Background:     raster.Color(cfg.Render.Background),
			Darken:         cfg.Shading.Darken,
			Floor:          cfg.Shading.Floor,
			SelectedBoost:  cfg.Shading.SelectedBoost,
			LightLongitude: cfg.Shading.LightLongitude,
			LightLatitude:  cfg.Shading.LightLatitude,
		},
	}
	if cfg.HUD.Enabled {
		pc.HUD = hud.New(cfg.HUD.Language, raster.Color(cfg.HUD.Color))
	}
	return pc
}
