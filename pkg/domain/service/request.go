package service

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

type AddProductRequest struct {
	Name        string
	Description string
	Category    string
}

func (r AddProductRequest) toProductMetaData(ids model.IDGenerator) (model.ProductMetaData, error) {
	name, err := nonEmptyField("name", r.Name)
	if err != nil {
		return model.ProductMetaData{}, err
	}
	description, err := nonEmptyField("description", r.Description)
	if err != nil {
		return model.ProductMetaData{}, err
	}
	category, err := nonEmptyField("category", r.Category)
	if err != nil {
		return model.ProductMetaData{}, err
	}

	productID, err := ids.NextID()
	if err != nil {
		return model.ProductMetaData{}, errors.Wrap(err, "generate product id")
	}

	return model.ProductMetaData{
		ProductID:   productID,
		Name:        name,
		Description: description,
		Category:    category,
	}, nil
}

func nonEmptyField(field, value string) (model.NonEmptyString, error) {
	s, err := model.NewNonEmptyString(value)
	if err != nil {
		return model.NonEmptyString{}, InvalidRequestError{
			Field:   field,
			Message: fmt.Sprintf("invalid product %s: %q", field, value),
		}
	}
	return s, nil
}
