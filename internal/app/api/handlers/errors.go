package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agrofono/checkout/internal/app/service/reconcile"
	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/platform/mercadopago"
	"github.com/agrofono/checkout/pkg/response"
)

// errorKind classifies service errors into the response taxonomy. Anything
// unrecognized is internal.
func errorKind(err error) response.ErrorKind {
	switch {
	case errors.Is(err, reconcile.ErrValidation), errors.Is(err, reconcile.ErrBadEvent):
		return response.ErrorKindValidation
	case errors.Is(err, reconcile.ErrUnapproved):
		return response.ErrorKindUnapproved
	case errors.Is(err, store.ErrNotFound):
		return response.ErrorKindNotFound
	case errors.Is(err, mercadopago.ErrResourceNotFound):
		return response.ErrorKindProvider
	}
	var apiErr *mercadopago.APIError
	if errors.As(err, &apiErr) {
		return response.ErrorKindProvider
	}
	return response.ErrorKindInternal
}

func writeError(c *gin.Context, err error) {
	kind := errorKind(err)
	c.JSON(kind.HTTPStatus(), response.NewError(kind, err.Error()))
}
