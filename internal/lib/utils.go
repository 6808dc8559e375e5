package lib

import (
	"fmt"
	"strings"
)

// Err returns formatted error in "op: err" template.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// LocalPart returns the part of an email address before '@'.
func LocalPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
