package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEmptyString         = errors.New("string must not be empty")
	ErrInvalidDisplayOrder = errors.New("display order must be a positive number")
)

// NonEmptyString can only be obtained through NewNonEmptyString,
// so holders never have to re-check emptiness.
type NonEmptyString struct {
	value string
}

func NewNonEmptyString(raw string) (NonEmptyString, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NonEmptyString{}, ErrEmptyString
	}
	return NonEmptyString{value: trimmed}, nil
}

func (s NonEmptyString) String() string {
	return s.value
}

type Identifier struct {
	value NonEmptyString
}

func IdentifierFrom(s NonEmptyString) Identifier {
	return Identifier{value: s}
}

func (id Identifier) String() string {
	return id.value.String()
}

type DisplayOrder int

func NewDisplayOrder(position int) (DisplayOrder, error) {
	if position < 1 {
		return 0, ErrInvalidDisplayOrder
	}
	return DisplayOrder(position), nil
}

func (o DisplayOrder) Int() int {
	return int(o)
}

// ProductNames is a read-only snapshot of registered product names.
// Names are compared exactly, case included.
type ProductNames struct {
	names map[string]struct{}
}

func NewProductNames(names ...string) ProductNames {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return ProductNames{names: set}
}

func (p ProductNames) Contains(name NonEmptyString) bool {
	_, ok := p.names[name.String()]
	return ok
}

func (p ProductNames) Len() int {
	return len(p.names)
}

func (p ProductNames) Names() []string {
	names := make([]string, 0, len(p.names))
	for name := range p.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type ProductMetaData struct {
	ProductID   Identifier
	Name        NonEmptyString
	Description NonEmptyString
	Category    NonEmptyString
}

type Product struct {
	ID          Identifier
	Name        NonEmptyString
	Description NonEmptyString
	Category    NonEmptyString
}

func NewProduct(metaData ProductMetaData) Product {
	return Product{
		ID:          metaData.ProductID,
		Name:        metaData.Name,
		Description: metaData.Description,
		Category:    metaData.Category,
	}
}

type IDGenerator interface {
	NextID() (Identifier, error)
}
