package utils

import (
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseRequestBody decodes the JSON body into request and validates it.
func ParseRequestBody(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func GetURLParam(r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, paramName))
	if value == "" {
		return "", exceptions.ErrURLParamValidation(errors.New("parameter is missing from url path"), paramName)
	}
	return value, nil
}

func GetURLParamIndex(r *http.Request) (int, error) {
	value, err := GetURLParam(r, constvars.URLParamIndex)
	if err != nil {
		return 0, err
	}

	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		if err == nil {
			err = errors.New("index must not be negative")
		}
		return 0, exceptions.ErrURLParamValidation(err, constvars.URLParamIndex)
	}
	return index, nil
}
