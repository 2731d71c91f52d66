package validation

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/applestore-backend/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	msgUsersNotArray     = "Users must be an array"
	msgInvoicesNotArray  = "Invoices must be an array"
	msgDuplicateEmails   = "Users array contains duplicate email addresses"
	msgDuplicateInvoices = "Invoices array contains duplicate IDs"
)

// EmailKey normalizes an email for case-insensitive comparison. It lowercases
// without folding, so "straße" and "strasse" stay distinct. A Caser holds
// state, hence one per call.
func EmailKey(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// CollectionRules describes how ValidateCollection checks a list.
type CollectionRules[T any] struct {
	// Label prefixes per-item reasons, e.g. "User" -> "User at index 2: ...".
	Label string
	Item  func(T) Verdict
	// Key returns the uniqueness key; ok=false excludes the item from the check.
	Key             func(T) (key string, ok bool)
	DuplicateReason string
}

// ValidateCollection reports the first failing item, then checks uniqueness.
func ValidateCollection[T any](items []T, rules CollectionRules[T]) Verdict {
	for i, item := range items {
		if v := rules.Item(item); !v.Valid {
			return failAt(i, fmt.Sprintf("%s at index %d: %s", rules.Label, i, v.Reason))
		}
	}
	if rules.Key == nil {
		return pass()
	}
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		key, ok := rules.Key(item)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			return failAt(i, rules.DuplicateReason)
		}
		seen[key] = struct{}{}
	}
	return pass()
}

var userRules = CollectionRules[types.User]{
	Label: "User",
	Item:  ValidateUser,
	Key: func(u types.User) (string, bool) {
		return EmailKey(u.Email), true
	},
	DuplicateReason: msgDuplicateEmails,
}

var invoiceRules = CollectionRules[types.Invoice]{
	Label: "Invoice",
	Item:  ValidateInvoice,
	Key: func(inv types.Invoice) (string, bool) {
		return inv.ID, inv.ID != ""
	},
	DuplicateReason: msgDuplicateInvoices,
}

// ValidateUsers checks every user and case-insensitive email uniqueness.
func ValidateUsers(users []types.User) Verdict {
	return ValidateCollection(users, userRules)
}

// ValidateInvoices checks every invoice and id uniqueness among invoices with an id.
func ValidateInvoices(invoices []types.Invoice) Verdict {
	return ValidateCollection(invoices, invoiceRules)
}
