package middlewares

import (
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"errors"
	"net/http"
)

// BodyLimit caps request bodies at the configured size. Declared lengths over
// the limit are rejected up front, streamed bodies fail on read.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(errors.New("declared content length too large"), limit))
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
