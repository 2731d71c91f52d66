package validation

import pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"

// Verdict is the outcome of validating a record or a collection.
// Index is the offending position for collection checks, or -1.
type Verdict struct {
	Valid  bool
	Reason string
	Index  int
}

func pass() Verdict {
	return Verdict{Valid: true, Index: -1}
}

func fail(reason string) Verdict {
	return Verdict{Reason: reason, Index: -1}
}

func failAt(index int, reason string) Verdict {
	return Verdict{Reason: reason, Index: index}
}

// Err converts a failed verdict into a VALIDATION_ERROR. Passing verdicts yield nil.
func (v Verdict) Err() *pkgerrors.Error {
	return v.ErrWithCode(pkgerrors.CodeValidation)
}

// ErrWithCode converts a failed verdict into an error carrying code.
func (v Verdict) ErrWithCode(code pkgerrors.Code) *pkgerrors.Error {
	if v.Valid {
		return nil
	}
	err := pkgerrors.New(code, v.Reason)
	if v.Index >= 0 {
		err = err.WithDetails(map[string]any{"index": v.Index})
	}
	return err
}
