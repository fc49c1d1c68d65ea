package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKind_HTTPStatus(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		status int
	}{
		{ErrorKindValidation, http.StatusBadRequest},
		{ErrorKindNotFound, http.StatusNotFound},
		{ErrorKindProvider, http.StatusInternalServerError},
		{ErrorKindUnapproved, http.StatusBadRequest},
		{ErrorKindTimeout, http.StatusRequestTimeout},
		{ErrorKindInternal, http.StatusInternalServerError},
		{ErrorKind("unknown"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		require.Equal(t, c.status, c.kind.HTTPStatus(), "kind %s", c.kind)
	}
}

func TestNewError(t *testing.T) {
	body := NewError(ErrorKindValidation, "missing price")
	require.Equal(t, ErrorKindValidation, body.Code)
	require.Equal(t, "missing price", body.Error)
}
