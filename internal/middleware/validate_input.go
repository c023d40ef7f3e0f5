package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/platform/validation"
)

// ValidateInput validates the payload stored by DecodePayload.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.RespondUnprocessableEntity(w, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
