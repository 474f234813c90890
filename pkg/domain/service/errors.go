package service

import (
	"fmt"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

// AddProductError separates malformed requests from business rule violations.
// InvalidRequestError and DomainError are the only implementations.
type AddProductError interface {
	error
	addProductError()
}

type InvalidRequestError struct {
	Field   string
	Message string
}

func (e InvalidRequestError) Error() string {
	return e.Message
}

func (InvalidRequestError) addProductError() {}

type DomainError struct {
	Err model.MerchandiseError
}

func (e DomainError) Error() string {
	return fmt.Sprintf("domain error: %s", e.Err.Error())
}

func (e DomainError) Unwrap() error {
	return e.Err
}

func (DomainError) addProductError() {}
