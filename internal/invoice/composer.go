package invoice

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/invoice.html.tmpl
var templateFS embed.FS

// ErrInvalidOrder indicates the order is missing data the composer requires.
var ErrInvalidOrder = errors.New("invoice.errors.invalid_order")

// Email is a fully rendered order-confirmation message.
// OrderNumber and OrderDate echo the values actually used, including any
// defaults the composer generated.
type Email struct {
	Subject     string
	BodyHTML    string
	BodyText    string
	OrderNumber string
	OrderDate   string
}

// Composer renders order-confirmation emails.
// Composition is a pure transform: no network or persistence side effects.
type Composer struct {
	baseURL   string
	brandName string
	tmpl      *template.Template
	printer   *message.Printer
}

// NewComposer creates a composer. baseURL hosts the static assets the email
// references (logo); brandName appears in the subject and footer.
func NewComposer(baseURL, brandName string) (*Composer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/invoice.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}
	return &Composer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		brandName: brandName,
		tmpl:      tmpl,
		printer:   message.NewPrinter(language.AmericanEnglish),
	}, nil
}

// invoiceData is the template context for the HTML body.
type invoiceData struct {
	BrandName    string
	LogoURL      string
	CustomerName string
	OrderNumber  string
	OrderDate    string
	ServiceName  string
	Category     string
	Price        string
	Subtotal     string
	Total        string
	PaymentRef   string
}

// Compose renders subject, HTML body, and plain-text fallback for an order.
// A missing order number is generated, a zero date defaults to now, and the
// total falls back to 0 when the service carries no price.
func (c *Composer) Compose(order Order) (Email, error) {
	if order.Customer.Email == "" {
		return Email{}, fmt.Errorf("%w: customer email is required", ErrInvalidOrder)
	}

	number := order.Number
	if number == "" {
		number = NewOrderNumber()
	}
	date := order.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	customerName := order.Customer.Name
	if customerName == "" {
		customerName = "Valued Customer"
	}

	paymentRef := order.PaymentIntentID
	if paymentRef == "" {
		paymentRef = "N/A"
	}

	total := c.usd(order.Service.Price)

	data := invoiceData{
		BrandName:    c.brandName,
		LogoURL:      c.baseURL + "/images/logo.png",
		CustomerName: customerName,
		OrderNumber:  number,
		OrderDate:    date.Format("January 2, 2006"),
		ServiceName:  order.Service.Name,
		Category:     order.Service.CategoryLabel(),
		Price:        total,
		Subtotal:     total,
		Total:        total,
		PaymentRef:   paymentRef,
	}

	var html strings.Builder
	if err := c.tmpl.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("render invoice template: %w", err)
	}

	return Email{
		Subject:     fmt.Sprintf("Order Confirmation #%s - %s", number, c.brandName),
		BodyHTML:    html.String(),
		BodyText:    c.textBody(number, order.Service, total, paymentRef),
		OrderNumber: number,
		OrderDate:   date.Format(time.RFC3339),
	}, nil
}

// textBody builds the plain-text fallback for clients that don't render HTML.
func (c *Composer) textBody(number string, svc Service, total, paymentRef string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmation - %s\n\n", c.brandName)
	fmt.Fprintf(&b, "Order Number: %s\n", number)
	fmt.Fprintf(&b, "Service: %s\n", svc.Name)
	fmt.Fprintf(&b, "Category: %s\n", svc.CategoryLabel())
	fmt.Fprintf(&b, "Total: %s\n", total)
	fmt.Fprintf(&b, "Payment Reference: %s\n", paymentRef)
	b.WriteString("\nThank you for your order!\n")
	return b.String()
}

// usd formats a dollar amount like "$1,150.00". The locale-aware printer
// supplies the digit grouping.
func (c *Composer) usd(v float64) string {
	return c.printer.Sprintf("$%.2f", v)
}
