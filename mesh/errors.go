package mesh

import "errors"

var (
	// ErrInvalidArgument is returned for nil, negative or otherwise unusable inputs.
	ErrInvalidArgument = errors.New("mesh: invalid argument")

	// ErrInvalidReference is returned when an index does not refer to an
	// existing position, normal, vertex or face.
	ErrInvalidReference = errors.New("mesh: invalid reference")

	// ErrDegenerateFace is returned when a face repeats a vertex.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrMissingTextureCoordinate is used as the panic value when subdivision
	// creates a midpoint between vertices that have no texture coordinate.
	ErrMissingTextureCoordinate = errors.New("mesh: missing texture coordinate")
)
