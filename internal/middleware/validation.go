package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/validation"
)

// Validate runs rules against the request and answers 400 with every failing
// field before the handler runs. A JSON body is read once and cached under
// gin.BodyBytesKey so handlers can bind it again with ShouldBindBodyWith.
func Validate(rules ...*validation.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := requestInput(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		failures, err := validation.Validate(c.Request.Context(), in, rules...)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if len(failures) > 0 {
			HandleAPIError(c, apperrors.NewValidationError(failures...))
			return
		}

		c.Next()
	}
}

func requestInput(c *gin.Context) (validation.Input, error) {
	in := validation.Input{
		Query: c.Request.URL.Query(),
		Path:  make(map[string]string, len(c.Params)),
	}
	for _, p := range c.Params {
		in.Path[p.Key] = p.Value
	}

	if c.Request.Body == nil || c.ContentType() != gin.MIMEJSON {
		return in, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return in, apperrors.NewBadRequestError("No se pudo leer el cuerpo de la solicitud")
	}
	c.Set(gin.BodyBytesKey, raw)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return in, apperrors.NewBadRequestError("El cuerpo de la solicitud no es un JSON válido")
		}
		return in, apperrors.NewBadRequestError("El cuerpo de la solicitud debe ser un objeto JSON")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return in, apperrors.NewBadRequestError("El cuerpo de la solicitud no es un JSON válido")
	}
	in.Body = body
	return in, nil
}
