package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obidua/BIDUA-Hosting-sub003/middleware"
	"github.com/obidua/BIDUA-Hosting-sub003/models"
	"github.com/obidua/BIDUA-Hosting-sub003/portalapi"
)

func GetOrdersHandler(c *gin.Context) {
	orders, err := middleware.APIClient(c).Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func CreateOrderHandler(c *gin.Context) {
	var req portalapi.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := middleware.APIClient(c).CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func CreatePaymentHandler(c *gin.Context) {
	var req portalapi.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := middleware.APIClient(c).CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}

// VerifyPaymentHandler передаёт бэкенду подтверждение от платёжного шлюза
func VerifyPaymentHandler(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := middleware.APIClient(c).VerifyPayment(c.Request.Context(), paymentID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

func GetInvoicesHandler(c *gin.Context) {
	invoices, err := middleware.APIClient(c).Invoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

func GetBillingSettingsHandler(c *gin.Context) {
	settings, err := middleware.APIClient(c).BillingSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func UpdateBillingSettingsHandler(c *gin.Context) {
	var settings models.BillingSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := middleware.APIClient(c).UpdateBillingSettings(c.Request.Context(), settings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": updated})
}

func GetPaymentMethodsHandler(c *gin.Context) {
	methods, err := middleware.APIClient(c).PaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "methods": methods})
}
