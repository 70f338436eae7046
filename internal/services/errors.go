package services

// Kind classifies a service failure so handlers can map it to an HTTP status.
type Kind int

// Service error kinds.
const (
	KindValidation    Kind = iota // malformed or out-of-range input
	KindUnprocessable             // semantically invalid input
	KindNotFound                  // referenced entity absent
	KindUnauthorized              // missing, invalid, or expired credentials
	KindForbidden                 // role mismatch
	KindConflict                  // duplicate unique field
	KindServer                    // unexpected failure, transaction rolled back
)

// Error is a classified service failure carrying a message catalog key.
// Handlers localize Key with Args before surfacing it to the caller.
type Error struct {
	Kind Kind
	Key  string
	Args []interface{}
}

func (e *Error) Error() string { return e.Key }

// E builds a classified service error.
func E(kind Kind, key string, args ...interface{}) *Error {
	return &Error{Kind: kind, Key: key, Args: args}
}
