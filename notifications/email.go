package notifications

import (
	"fmt"
	"strings"
)

// RenderOrderEmail builds the HTML body for the new-order email sent to the
// shop owner.
func RenderOrderEmail(n OrderNotification) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h1 style="color: #ec4899; text-align: center;">Nuevo Pedido - Hilosaki</h1>`)

	delivery := "Recoger en persona"
	if n.DeliveryType == "delivery" {
		delivery = "Entrega a domicilio"
	}

	b.WriteString(`<div style="background: #fdf2f8; padding: 20px; border-radius: 10px;">`)
	b.WriteString("<h2>Información del Pedido</h2>")
	fmt.Fprintf(&b, "<p><strong>Número de Pedido:</strong> %s</p>", n.Order.OrderNumber)
	fmt.Fprintf(&b, "<p><strong>Cliente:</strong> %s</p>", n.Order.CustomerName)
	fmt.Fprintf(&b, "<p><strong>Teléfono:</strong> %s</p>", n.Order.CustomerPhone)
	fmt.Fprintf(&b, "<p><strong>Método de Entrega:</strong> %s</p>", delivery)
	if n.Order.CustomerAddress != "" {
		fmt.Fprintf(&b, "<p><strong>Dirección:</strong> %s</p>", n.Order.CustomerAddress)
	}
	fmt.Fprintf(&b, "<p><strong>Total:</strong> $%s</p>", n.Order.TotalAmount.StringFixed(2))
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: #f9fafb; padding: 20px; border-radius: 10px;">`)
	b.WriteString("<h2>Productos</h2>")
	for _, item := range n.Items {
		b.WriteString(`<div style="border-bottom: 1px solid #e5e7eb; padding: 10px 0;">`)
		fmt.Fprintf(&b, "<p><strong>%s</strong></p>", item.ProductName)
		fmt.Fprintf(&b, "<p>Cantidad: %d</p>", item.Quantity)
		fmt.Fprintf(&b, "<p>Precio: $%s</p>", item.UnitPrice.StringFixed(2))
		fmt.Fprintf(&b, "<p>Subtotal: $%s</p>", item.TotalPrice.StringFixed(2))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	if n.Order.Notes != "" {
		b.WriteString(`<div style="background: #fef3c7; padding: 20px; border-radius: 10px;">`)
		b.WriteString("<h2>Notas Adicionales</h2>")
		fmt.Fprintf(&b, "<p>%s</p>", n.Order.Notes)
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}
