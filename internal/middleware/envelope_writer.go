package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin/render"
	"github.com/yigit/registro-academico/internal/app/models/dto"
)

// writeEnvelope renders an envelope outside a gin context, from net/http
// middleware handlers.
func writeEnvelope(w http.ResponseWriter, status int, env dto.Envelope) {
	r := render.JSON{Data: env}
	r.WriteContentType(w)
	w.WriteHeader(status)
	_ = r.Render(w)
}
