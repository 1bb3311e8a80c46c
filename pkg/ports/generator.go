package ports

import "github.com/aretw0/samuel/pkg/domain"

// SequenceGenerator produces the displayed sequence for a new stage.
// The result must be 3 or 4 elements long.
type SequenceGenerator interface {
	Generate() domain.Sequence
}
