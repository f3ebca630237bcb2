package main

import (
	"context"

	"essay-grader/biz/adaptor"
	"essay-grader/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	cfg := provider.Get().Config

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(cfg.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(cfg.Metrics.ListenOn, cfg.Metrics.Path)),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	customizedRegister(h)
	h.Spin()
}
