package content

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) encodeOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-encode",
		Method:      http.MethodPost,
		Path:        "/api/v1/content/encode",
		Summary:     "Validate content and return its payload",
		Tags:        []string{"content"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) renderOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-render",
		Method:      http.MethodPost,
		Path:        "/api/v1/content/render",
		Summary:     "Render a preview symbol",
		Description: "Validates the content and draws it without storing anything.",
		Tags:        []string{"content"},
		Middlewares: h.middleware,
	}
}
