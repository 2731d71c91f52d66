package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/go-playground/validator/v10"
)

// Schema field order is check order: the first failing field decides the reason.

type userSchema struct {
	ID             string `json:"id" validate:"notblank"`
	Name           string `json:"name" validate:"notblank"`
	Email          string `json:"email" validate:"notblank,storeemail"`
	ItemsPurchased int    `json:"itemsPurchased" validate:"min=0"`
}

type invoiceSchema struct {
	ID          string `json:"id" validate:"omitempty,notblank"`
	ProductName string `json:"productName" validate:"notblank"`
	ProductID   string `json:"productId" validate:"notblank"`
	UserEmail   string `json:"userEmail" validate:"notblank,storeemail"`
	Date        string `json:"date" validate:"notblank,timestamp"`
	Status      string `json:"status" validate:"invoicestatus"`
}

type productSchema struct {
	ID          string  `json:"id" validate:"notblank"`
	Name        string  `json:"name" validate:"notblank"`
	Price       float64 `json:"price" validate:"finite,min=0"`
	Image       string  `json:"image" validate:"notblank"`
	Description string  `json:"description"`
}

const (
	msgUserNotObject    = "User must be an object"
	msgInvoiceNotObject = "Invoice must be an object"
	msgProductNotObject = "Product must be an object"
	msgInvoiceStatus    = "Invoice status must be one of: Paid, Pending, Shipped, Refunded"
)

var userMessages = map[string]string{
	"id":                "User ID is required and must be a non-empty string",
	"name":              "User name is required and must be a non-empty string",
	"email":             "User email is required and must be a non-empty string",
	"email." + TagEmail: "User email must be a valid email address",
	"itemsPurchased":    "Items purchased must be a non-negative integer",
}

var invoiceMessages = map[string]string{
	"id":                    "Invoice ID must be a non-empty string if provided",
	"productName":           "Product name is required and must be a non-empty string",
	"productId":             "Product ID is required and must be a non-empty string",
	"userEmail":             "User email is required and must be a non-empty string",
	"userEmail." + TagEmail: "User email must be a valid email address",
	"date":                  "Invoice date is required and must be a non-empty string",
	"date." + TagTimestamp:  "Invoice date must be a valid ISO date string",
	"status":                msgInvoiceStatus,
}

var productMessages = map[string]string{
	"id":          "Product ID is required and must be a non-empty string",
	"name":        "Product name is required and must be a non-empty string",
	"price":       "Product price must be a non-negative number",
	"image":       "Product image is required and must be a non-empty string",
	"description": "Product description must be a string if provided",
}

// ValidateUser checks a single user record.
func ValidateUser(user types.User) Verdict {
	return run(userSchema{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		ItemsPurchased: user.ItemsPurchased,
	}, userMessages)
}

// ValidateInvoice checks a single invoice. An empty id counts as absent.
func ValidateInvoice(invoice types.Invoice) Verdict {
	return run(invoiceSchema{
		ID:          invoice.ID,
		ProductName: invoice.ProductName,
		ProductID:   invoice.ProductID,
		UserEmail:   invoice.UserEmail,
		Date:        invoice.Date,
		Status:      invoice.Status.String(),
	}, invoiceMessages)
}

// ValidateNewInvoice checks an invoice that has not been assigned an id yet.
func ValidateNewInvoice(invoice types.NewInvoice) Verdict {
	return ValidateInvoice(invoice.WithID(""))
}

// ValidateProduct checks a catalog product.
func ValidateProduct(product types.Product) Verdict {
	return run(productSchema{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
	}, productMessages)
}

func run(schema any, messages map[string]string) Verdict {
	err := validate.Struct(schema)
	if err == nil {
		return pass()
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fail(err.Error())
	}
	return fail(messageFor(fieldErrs[0], messages))
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", strings.TrimSpace(fe.Field()))
}
