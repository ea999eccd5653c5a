package qrcode

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "qr-codes-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/qr-codes",
		Summary:     "List QR codes, newest first",
		Tags:        []string{"qr-codes"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "qr-codes-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/qr-codes",
		Summary:       "Create a QR code",
		Description:   "Dynamic codes count against the plan's dynamic code limit and get a short link.",
		Tags:          []string{"qr-codes"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"owner": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "qr-codes-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/qr-codes/{id}",
		Summary:     "Get a QR code",
		Tags:        []string{"qr-codes"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateDestinationOp() huma.Operation {
	return huma.Operation{
		OperationID: "qr-codes-update-destination",
		Method:      http.MethodPatch,
		Path:        "/api/v1/qr-codes/{id}/destination",
		Summary:     "Change where a dynamic code redirects",
		Tags:        []string{"qr-codes"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) assignFolderOp() huma.Operation {
	return huma.Operation{
		OperationID: "qr-codes-assign-folder",
		Method:      http.MethodPatch,
		Path:        "/api/v1/qr-codes/{id}/folder",
		Summary:     "Move a QR code into or out of a folder",
		Tags:        []string{"qr-codes"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "qr-codes-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/qr-codes/{id}",
		Summary:       "Delete a QR code",
		Description:   "Scan history of the code is kept.",
		Tags:          []string{"qr-codes"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"owner": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) imageOp() huma.Operation {
	return huma.Operation{
		OperationID: "qr-codes-image",
		Method:      http.MethodGet,
		Path:        "/api/v1/qr-codes/{id}/image",
		Summary:     "Render a stored QR code",
		Tags:        []string{"qr-codes"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Rendered symbol",
				Content: map[string]*huma.MediaType{
					"image/png":     {},
					"image/svg+xml": {},
				},
			},
		},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}
