package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

// DecodePayload decodes a JSON body of at most bodySize bytes into T and
// stores it in the request context for ValidateInput and the handler.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			decoder.DisallowUnknownFields()

			var decoded T
			if err := decoder.Decode(&decoded); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
					return
				}

				if strings.HasPrefix(err.Error(), "json: unknown field") {
					web.RespondUnprocessableEntity(w, err, message.InvalidInput, nil)
					return
				}

				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, errors.New("request body must contain a single JSON value"), message.InvalidInput, nil)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
