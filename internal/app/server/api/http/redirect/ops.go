package redirect

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) redirectOp() huma.Operation {
	return huma.Operation{
		OperationID:   "redirect",
		Method:        http.MethodGet,
		Path:          "/r/{code}",
		Summary:       "Follow a dynamic QR code",
		Description:   "Redirects to the current destination of the code. Unknown codes redirect to the home page.",
		Tags:          []string{"redirect"},
		DefaultStatus: http.StatusFound,
		Middlewares:   h.middleware,
	}
}
