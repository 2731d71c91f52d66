package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeDuplicateEmail, status: http.StatusConflict, publicMsg: "email already registered", detailsOK: true},
		{code: CodeStorage, status: http.StatusServiceUnavailable, publicMsg: "storage unavailable", retryable: true, detailsOK: true},
		{code: CodeInvalidData, status: http.StatusUnprocessableEntity, publicMsg: "stored data invalid", detailsOK: true},
		{code: CodeIdempotency, status: http.StatusConflict, publicMsg: "idempotency key conflict"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestCodesExcludesInternal(t *testing.T) {
	for _, code := range Codes() {
		if code == CodeInternal {
			t.Fatalf("store taxonomy must not include %s", CodeInternal)
		}
	}
	if len(Codes()) != 5 {
		t.Fatalf("expected 5 store codes, got %d", len(Codes()))
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeStorage, cause, "persist users")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeStorage {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
	if wrapped.Error() != "STORAGE_ERROR: persist users" {
		t.Fatalf("unexpected error string %q", wrapped.Error())
	}
}

func TestCloneDetachesDetails(t *testing.T) {
	cause := stdErrors.New("disk full")
	orig := Wrap(CodeStorage, cause, "Failed to save users").WithDetails(map[string]any{"key": "users"})
	clone := orig.Clone()

	orig.Details().(map[string]any)["key"] = "changed"
	orig.WithDetails("replaced")
	if got := clone.Details().(map[string]any)["key"]; got != "users" {
		t.Fatalf("clone shares details, got %v", got)
	}
	if clone.Code() != CodeStorage || clone.Message() != "Failed to save users" || !stdErrors.Is(clone, cause) {
		t.Fatalf("clone lost fields: %v", clone)
	}

	fields := New(CodeValidation, "bad").WithDetails(map[string]string{"name": "required"})
	fc := fields.Clone()
	fields.Details().(map[string]string)["name"] = "changed"
	if fc.Details().(map[string]string)["name"] != "required" {
		t.Fatal("clone shares string details")
	}

	var nilErr *Error
	if nilErr.Clone() != nil {
		t.Fatal("nil clone should be nil")
	}
}

func TestAsAndHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "user not found"))
	if got := As(err); got == nil || got.Code() != CodeNotFound {
		t.Fatalf("As failed to return typed error")
	}
	if !HasCode(err, CodeNotFound) {
		t.Fatalf("expected HasCode to match NOT_FOUND")
	}
	if HasCode(err, CodeValidation) {
		t.Fatalf("HasCode matched the wrong code")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpIncludesPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "kv_entries_pkey", TableName: "kv_entries", Message: "duplicate key value"}
	err := Wrap(CodeStorage, pgErr, "persist users")

	dump := Dump(err)
	if dump.Code != CodeStorage {
		t.Fatalf("expected code in dump, got %q", dump.Code)
	}
	if dump.PGCode != "23505" || dump.PGTable != "kv_entries" {
		t.Fatalf("unexpected pg fields %+v", dump)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected chain of 2, got %v", dump.Chain)
	}
	if _, ok := dump.Fields()["pg_code"]; !ok {
		t.Fatalf("expected pg_code in fields")
	}
}

func TestDumpWithoutPostgresOmitsColumns(t *testing.T) {
	fields := Dump(stdErrors.New("plain")).Fields()
	if _, ok := fields["pg_code"]; ok {
		t.Fatalf("pg fields should be omitted for non-postgres errors")
	}
}
