package errors

import (
	"fmt"
)

var (
	ErrNotFound              = fmt.Errorf("not found")
	ErrDuplicateOrganisation = fmt.Errorf("organisation already exists")
	ErrOwnershipMismatch     = fmt.Errorf("organisation id does not match")
	ErrInvalidSortField      = fmt.Errorf("invalid sort field")
	ErrInvalidInput          = fmt.Errorf("invalid input")
)
