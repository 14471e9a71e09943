package notifications

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/HectorSandate/Hilosaki/models"
)

func sampleNotification() OrderNotification {
	return OrderNotification{
		Order: models.Order{
			OrderNumber:   "ORD-20250901-0001",
			CustomerName:  "Ana López",
			CustomerPhone: "555-0001",
			DeliveryType:  models.DeliveryTypePickup,
			TotalAmount:   decimal.RequireFromString("40"),
		},
		Items: []models.OrderItem{
			{ProductName: "Gorro tejido", Quantity: 2, UnitPrice: decimal.RequireFromString("10"), TotalPrice: decimal.RequireFromString("20")},
			{ProductName: "Amigurumi", Quantity: 1, UnitPrice: decimal.RequireFromString("20"), TotalPrice: decimal.RequireFromString("20")},
		},
		DeliveryType: models.DeliveryTypePickup,
	}
}

func TestRenderOrderEmailBody(t *testing.T) {
	n := sampleNotification()
	html := RenderOrderEmail(n)

	assert.Contains(t, html, "ORD-20250901-0001")
	assert.Contains(t, html, "Ana López")
	assert.Contains(t, html, "Recoger en persona")
	assert.Contains(t, html, "Gorro tejido")
	assert.Contains(t, html, "Amigurumi")
	assert.Contains(t, html, "$40.00")
	assert.Contains(t, html, "Cantidad: 2")
}

func TestRenderOrderEmailConditionalSections(t *testing.T) {
	n := sampleNotification()
	html := RenderOrderEmail(n)
	assert.NotContains(t, html, "Dirección")
	assert.NotContains(t, html, "Notas Adicionales")

	n.Order.DeliveryType = models.DeliveryTypeDelivery
	n.DeliveryType = models.DeliveryTypeDelivery
	n.Order.CustomerAddress = "Av. Reforma 12"
	n.Order.Notes = "Entregar después de las 5"
	html = RenderOrderEmail(n)
	assert.Contains(t, html, "Entrega a domicilio")
	assert.Contains(t, html, "Av. Reforma 12")
	assert.Contains(t, html, "Notas Adicionales")
	assert.Contains(t, html, "Entregar después de las 5")
}
