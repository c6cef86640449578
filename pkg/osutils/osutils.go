// Package osutils holds utilities related with user's operating system.
package osutils

import (
	"fmt"
	"os"
)

// FileValidator has ability to validate whether path points at any file on user OS
type FileValidator struct{}

func NewFileValidator() FileValidator {
	return FileValidator{}
}

// Validate checks whether in is valid path to any file on local user OS
func (fv FileValidator) Validate(in any) error {
	p, ok := in.(string)
	if !ok {
		return fmt.Errorf("%+v is not string", in)
	}

	_, err := os.Stat(p)

	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not point at any file in your local OS", p)
	}

	return nil
}
