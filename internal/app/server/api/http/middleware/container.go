package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container collects the middlewares of the next handler to be built.
// Base middlewares lead every list it hands out, e.g. request logging.
type Container struct {
	base huma.Middlewares
	huma.Middlewares
}

func NewContainer(base ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{
		base:        base,
		Middlewares: make(huma.Middlewares, 0),
	}
}

func (mc *Container) Add(middlewares ...func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middlewares...)
}

// GetAllAndClear hands the base and collected middlewares over and starts a
// new list. The returned slice is never shared with the container.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.base)+len(mc.Middlewares))
	result = append(result, mc.base...)
	result = append(result, mc.Middlewares...)
	mc.Middlewares = nil
	return result
}
