package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angelmondragon/applestore-backend/pkg/types"
)

// DecodeUsers parses a persisted users payload and validates it as a
// collection. Payloads that are not arrays of user-shaped objects fail
// with the same reasons as the validators.
func DecodeUsers(raw string) ([]types.User, Verdict) {
	users, v := decodeArray[types.User](raw, decodeShape{
		label:      "User",
		notArray:   msgUsersNotArray,
		notObject:  msgUserNotObject,
		messages:   userMessages,
		mustHave:   []string{"itemsPurchased"},
		fallbackOn: "id",
	})
	if !v.Valid {
		return nil, v
	}
	if v := ValidateUsers(users); !v.Valid {
		return nil, v
	}
	return users, pass()
}

// DecodeInvoices parses and validates a persisted invoices payload.
func DecodeInvoices(raw string) ([]types.Invoice, Verdict) {
	invoices, v := decodeArray[types.Invoice](raw, decodeShape{
		label:      "Invoice",
		notArray:   msgInvoicesNotArray,
		notObject:  msgInvoiceNotObject,
		messages:   invoiceMessages,
		fallbackOn: "status",
	})
	if !v.Valid {
		return nil, v
	}
	if v := ValidateInvoices(invoices); !v.Valid {
		return nil, v
	}
	return invoices, pass()
}

// DecodeProduct parses a single product object and validates it.
func DecodeProduct(raw []byte) (types.Product, Verdict) {
	product, reason := decodeObject[types.Product](raw, decodeShape{
		notObject:  msgProductNotObject,
		messages:   productMessages,
		mustHave:   []string{"price"},
		fallbackOn: "id",
	})
	if reason != "" {
		return types.Product{}, fail(reason)
	}
	return product, ValidateProduct(product)
}

type decodeShape struct {
	label     string
	notArray  string
	notObject string
	messages  map[string]string
	// mustHave lists numeric fields whose absence is an error rather than zero.
	mustHave   []string
	fallbackOn string
}

func decodeArray[T any](raw string, shape decodeShape) ([]T, Verdict) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fail(shape.notArray)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fail(shape.notArray)
	}
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		item, reason := decodeObject[T](elem, shape)
		if reason != "" {
			return nil, failAt(i, fmt.Sprintf("%s at index %d: %s", shape.label, i, reason))
		}
		out = append(out, item)
	}
	return out, pass()
}

func decodeObject[T any](raw []byte, shape decodeShape) (T, string) {
	var zero T
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return zero, shape.notObject
	}
	for _, name := range shape.mustHave {
		if val, ok := fields[name]; !ok || bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			return zero, shape.messages[name]
		}
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if msg, ok := shape.messages[typeErr.Field]; ok {
				return zero, msg
			}
		}
		return zero, shape.messages[shape.fallbackOn]
	}
	return item, ""
}
