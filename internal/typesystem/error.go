package typesystem

import (
	"errors"
	"fmt"
)

// Schema errors carry machine-stable tags; the analyzer attaches source
// positions when surfacing them.

var ErrConstraintsNotCompatible = errors.New("ConstraintsNotCompatible")

var ErrTypesNotCompatible = errors.New("TypesAreNotCompatible")

var ErrNotAFunction = errors.New("NotAFunction")

func errIncompatibleMethod(methodName string) error {
	return fmt.Errorf("MethodTypesNotCompatible: %s", methodName)
}
