package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/pagination"
)

type purchaseBody struct {
	ProductID     string `json:"product_id" validate:"notblank"`
	CustomerEmail string `json:"customer_email" validate:"notblank,storeemail"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"product_id":"1","customer_email":"sam@x.com"}`))
	var body purchaseBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ProductID != "1" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `{"product_id":"1","customer_email":"sam@x.com","extra":true}`,
		"malformed":     `{"product_id":`,
		"bad email":     `{"product_id":"1","customer_email":"sam"}`,
		"blank id":      `{"product_id":"  ","customer_email":"sam@x.com"}`,
	}
	for name, payload := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		var body purchaseBody
		err := DecodeJSONBody(req, &body)
		if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"product_id":"1","customer_email":"sam"}`))
	var body purchaseBody
	details, _ := pkgerrors.As(DecodeJSONBody(req, &body)).Details().(map[string]string)
	if details["customer_email"] != "must be a valid email" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestParsePage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	params, err := ParsePage(req)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if params.Page != 3 || params.PageSize != pagination.DefaultPageSize {
		t.Fatalf("unexpected params %+v", params)
	}

	for _, q := range []string{"page=0", "page=abc", "page_size=1000"} {
		req := httptest.NewRequest(http.MethodGet, "/?"+q, nil)
		if _, err := ParsePage(req); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", q, err)
		}
	}
}
