package identity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

var _ model.IDGenerator = Generator{}

// Generator mints time-ordered UUIDv7 product identifiers.
type Generator struct{}

func (Generator) NextID() (model.Identifier, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Identifier{}, errors.WithStack(err)
	}
	s, err := model.NewNonEmptyString(id.String())
	if err != nil {
		return model.Identifier{}, errors.WithStack(err)
	}
	return model.IdentifierFrom(s), nil
}
