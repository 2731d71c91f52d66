package seed

import (
	"testing"

	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	ds := Default()
	if len(ds.Users) != 10 || len(ds.Invoices) != 12 {
		t.Fatalf("unexpected dataset sizes users=%d invoices=%d", len(ds.Users), len(ds.Invoices))
	}
	if v := validation.ValidateUsers(ds.Users); !v.Valid {
		t.Fatalf("seed users invalid: %s", v.Reason)
	}
	if v := validation.ValidateInvoices(ds.Invoices); !v.Valid {
		t.Fatalf("seed invoices invalid: %s", v.Reason)
	}
	for _, p := range Products() {
		if v := validation.ValidateProduct(p); !v.Valid {
			t.Fatalf("seed product %s invalid: %s", p.ID, v.Reason)
		}
	}
}

func TestInvoicesNewestFirst(t *testing.T) {
	invoices := Invoices()
	for i := 1; i < len(invoices); i++ {
		if invoices[i-1].Date <= invoices[i].Date {
			t.Fatalf("invoice %d is not older than %d", i, i-1)
		}
	}
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Users[0].Name = "Mutated"
	if Default().Users[0].Name != "Alice Johnson" {
		t.Fatal("expected Default to return an independent copy")
	}
}
