package httpapi

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	buyerdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	buyerports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
	orderdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
	orderports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
	productdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
	productports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
	apierrors "github.com/88-AL3Xtx/go-ecommerce-api/internal/shared/errors"
)

// respondBindingError converts gin binding failures into 400 problem
// responses, with field-level details for validator errors.
func respondBindingError(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.BindingProblem(err))
}

// respondServiceError maps domain and ports sentinels onto problem
// responses. Unknown errors become 500s; nothing crashes the request.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, buyerports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("buyer", c.Param("id")))
	case errors.Is(err, productports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("product", c.Param("id")))
	case errors.Is(err, orderports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("order", c.Param("order_id")))
	case errors.Is(err, buyerports.ErrEmailTaken):
		apierrors.Respond(c, apierrors.NewConflictProblem("a buyer with this email already exists"))
	case errors.Is(err, buyerports.ErrHasOrders):
		apierrors.Respond(c, apierrors.NewConflictProblem("buyer still has orders and cannot be deleted"))
	case errors.Is(err, orderports.ErrProductLinked):
		apierrors.Respond(c, apierrors.NewConflictProblem("product is already included in the order"))
	case errors.Is(err, orderports.ErrProductNotLinked):
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("the product is not in the order"))
	case errors.Is(err, orderports.ErrBuyerNotFound):
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("invalid buyer id"))
	case errors.Is(err, orderports.ErrProductNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("product", c.Param("product_id")))
	case isDomainValidationError(err):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}

// respondBuyerOrdersError treats an unknown buyer as not-found. On the
// my-orders read path the buyer id identifies the resource, unlike order
// creation where it is a payload reference.
func respondBuyerOrdersError(c *gin.Context, err error) {
	if errors.Is(err, orderports.ErrBuyerNotFound) {
		apierrors.Respond(c, apierrors.NewNotFoundProblem("buyer", c.Param("buyer_id")))
		return
	}
	respondServiceError(c, err)
}

func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		buyerdomain.ErrEmptyName, buyerdomain.ErrNameTooLong,
		buyerdomain.ErrEmptyAddress, buyerdomain.ErrAddressTooLong,
		buyerdomain.ErrEmptyEmail, buyerdomain.ErrEmailTooLong,
		buyerdomain.ErrInvalidEmail,
		productdomain.ErrNameTooLong, productdomain.ErrNegativePrice,
		orderdomain.ErrMissingBuyer,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// pathID parses an int64 path parameter, responding 400 on failure.
// The bool result reports whether the caller should continue.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
