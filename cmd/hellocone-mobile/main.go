// Package main is the x/mobile entry point for Android and iOS builds.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/config"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/engine/shader/sources"
	"github.com/Faultbox/hellocone/internal/logger"
	"github.com/Faultbox/hellocone/internal/mobile"
)

func main() {
	// Mobile builds have no flags or config file
	cfg := config.Default()
	cfg.Renderer.ShaderProfile = sources.ProfileES2

	if err := logger.Init(cfg.Logging.Level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hello Cone (mobile) ===", zap.String("variant", cfg.Renderer.Variant))

	host := mobile.NewHost(cfg)

	app.Main(func(a app.App) {
		var last time.Time

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					ctx, ok := gles.FromMobile(glctx)
					if !ok {
						logger.Fatal("OpenGL ES 3 context required")
					}
					if err := host.Attach(ctx); err != nil {
						logger.Fatal("failed to initialize engine", zap.Error(err))
					}
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					host.Detach()
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				if err := host.Resize(e); err != nil {
					logger.Fatal("failed to initialize engine", zap.Error(err))
				}

			case touch.Event:
				host.Touch(e)

			case paint.Event:
				if e.External {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now

				if host.Paint(float32(dt)) {
					a.Publish()
				}
				a.Send(paint.Event{})
			}
		}
	})
}
