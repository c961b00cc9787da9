package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rule messages. They are returned to API clients verbatim.
const (
	MsgNameRequired     = "name is required"
	MsgInvalidPrice     = "price must be a non-negative number"
	MsgInvalidMRP       = "mrp must be a non-negative number"
	MsgMRPBelowPrice    = "mrp must not be lower than price"
	MsgNoFieldsToUpdate = "no fields to update"
)

// Violations lists every rule a value breaks, in field order.
type Violations []string

func (v Violations) Error() string {
	return strings.Join(v, ", ")
}
