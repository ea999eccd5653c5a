package folder

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders",
		Summary:     "List folders by name",
		Tags:        []string{"folders"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "folders-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/folders",
		Summary:       "Create a folder",
		Description:   "Folders are a paid feature and count against the plan's folder limit.",
		Tags:          []string{"folders"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"owner": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Get a folder",
		Tags:        []string{"folders"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Rename or recolor a folder",
		Tags:        []string{"folders"},
		Security:    []map[string][]string{{"owner": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "folders-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/folders/{id}",
		Summary:       "Delete a folder",
		Description:   "QR codes in the folder are kept and moved out of it.",
		Tags:          []string{"folders"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"owner": {}}},
		Middlewares:   h.middleware,
	}
}
