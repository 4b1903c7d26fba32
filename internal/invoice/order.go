package invoice

import (
	"fmt"
	"math/rand"
	"time"
)

// Service describes the purchased item as supplied by the storefront.
// Older frontend builds send the category under "categoryName".
type Service struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
}

// CategoryLabel returns whichever category field the caller populated.
func (s Service) CategoryLabel() string {
	if s.CategoryName != "" {
		return s.CategoryName
	}
	return s.Category
}

// Address is the buyer's billing address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer carries buyer contact and billing info.
// Email is mandatory for invoice delivery.
type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Order is the ephemeral order record assembled per request; nothing is persisted.
type Order struct {
	Number          string
	Date            time.Time
	Service         Service
	Customer        Customer
	PaymentIntentID string
}

// NewOrderNumber generates an order identifier of the form
// ORD-<epoch-millis>-<0..999>. Two calls within the same millisecond can
// collide; uniqueness beyond timestamp granularity is not guaranteed.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}
