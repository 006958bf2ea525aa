package bookinstance

import (
	"errors"
	"net/http"
)

var ErrInstanceNotFound = errors.New("book copy not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInstanceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
