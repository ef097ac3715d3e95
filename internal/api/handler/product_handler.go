package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ezelectronics/server/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type registerProductsRequest struct {
	Model        string  `json:"model"        validate:"required"`
	Category     string  `json:"category"     validate:"required,oneof=Smartphone Laptop Appliance"`
	Quantity     int     `json:"quantity"     validate:"required,gt=0"`
	Details      *string `json:"details"`
	SellingPrice float64 `json:"sellingPrice" validate:"required,gt=0"`
	ArrivalDate  *string `json:"arrivalDate"  validate:"omitempty,datetime=2006-01-02"`
}

type sellProductRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type sellProductResponse struct {
	Quantity int `json:"quantity"`
}

// Register handles POST /products.
func (h *ProductHandler) Register(c echo.Context) error {
	var req registerProductsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.RegisterProducts(c.Request().Context(), ports.RegisterProductsInput{
		Model:        req.Model,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Details:      req.Details,
		SellingPrice: req.SellingPrice,
		ArrivalDate:  req.ArrivalDate,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// List handles GET /products with an optional category query filter.
func (h *ProductHandler) List(c echo.Context) error {
	var category *string
	if v := c.QueryParam("category"); v != "" {
		category = &v
	}

	products, err := h.service.GetProducts(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:model.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProductByModel(c.Request().Context(), c.Param("model"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Sell handles PATCH /products/:model/sell.
func (h *ProductHandler) Sell(c echo.Context) error {
	var req sellProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	remaining, err := h.service.SellProduct(c.Request().Context(), c.Param("model"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sellProductResponse{Quantity: remaining})
}

// Delete handles DELETE /products/:model.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("model")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
