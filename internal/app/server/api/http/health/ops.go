package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-health",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Service and storage health",
		Description: "Pings the QR code store. Answers 503 while the database is unreachable, so load balancers stop routing redirects here.",
		Tags:        []string{"operations"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
