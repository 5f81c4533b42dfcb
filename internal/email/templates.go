package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
}

type checkoutReceivedEmailData struct {
	baseEmailData
	Items         []CheckoutItem
	TotalQuantity int
	RequestedAt   string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func renderCheckoutReceived(data CheckoutReceived) (string, error) {
	total := 0
	for _, item := range data.Items {
		total += item.Quantity
	}
	return renderEmailTemplate("checkout_received.html", checkoutReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:      subjectCheckoutReceived,
			Heading:    "Thanks for shopping with us",
			Subheading: "We received your request and will be in touch shortly.",
		},
		Items:         data.Items,
		TotalQuantity: total,
		RequestedAt:   data.RequestedAt,
	})
}
