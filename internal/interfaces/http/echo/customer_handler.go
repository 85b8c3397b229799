package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/customer-import/internal/application/customer"
)

type CustomerHandler struct {
	listCustomers  app.ListCustomers
	getCustomer    app.GetCustomer
	updateCustomer app.UpdateCustomer
	deleteCustomer app.DeleteCustomer
}

func NewCustomerHandler(
	listCustomers app.ListCustomers,
	getCustomer app.GetCustomer,
	updateCustomer app.UpdateCustomer,
	deleteCustomer app.DeleteCustomer,
) *CustomerHandler {
	return &CustomerHandler{
		listCustomers:  listCustomers,
		getCustomer:    getCustomer,
		updateCustomer: updateCustomer,
		deleteCustomer: deleteCustomer,
	}
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	out, err := h.listCustomers.Execute(c.Request().Context(), app.ListCustomersInput{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to fetch customers",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	out, err := h.getCustomer.Execute(c.Request().Context(), app.GetCustomerInput{
		ID: c.Param("id"),
	})
	if err != nil {
		return h.customerError(c, err, "failed to fetch customer")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type updateCustomerRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"date_of_birth"`
	Timezone    *string `json:"timezone"`
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.updateCustomer.Execute(c.Request().Context(), app.UpdateCustomerInput{
		ID:          c.Param("id"),
		FullName:    req.FullName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Timezone:    req.Timezone,
	})
	if err != nil {
		var validationErr *app.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "validation_failed",
				Message: "validation failed",
				Details: validationErr.Details,
			}})
		}
		return h.customerError(c, err, "failed to update customer")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	err := h.deleteCustomer.Execute(c.Request().Context(), app.DeleteCustomerInput{
		ID: c.Param("id"),
	})
	if err != nil {
		return h.customerError(c, err, "failed to delete customer")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "Deleted successfully"}})
}

func (h *CustomerHandler) customerError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, app.ErrInvalidCustomerID) {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_customer_id",
			Message: "id must be a valid UUID",
		}})
	}
	if errors.Is(err, app.ErrCustomerNotFound) {
		return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
			Code:    "not_found",
			Message: "customer not found",
		}})
	}
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "internal_error",
		Message: fallback,
	}})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
