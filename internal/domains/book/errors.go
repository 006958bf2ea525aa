package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookHasInstances = errors.New("cannot delete book with existing copies")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
