package model

import (
	"errors"
	"fmt"
)

var ErrUnknownMerchandiseState = errors.New("unknown merchandise state")

// Merchandise is the catalog aggregate. The set of states is closed:
// Empty, Open and Suspended are the only implementations.
type Merchandise interface {
	// Version is the number of state changes applied to the aggregate so far.
	Version() int

	merchandise()
}

type MerchandiseError interface {
	error
	merchandiseError()
}

type DuplicateProductNameError struct {
	Name string
}

func (e DuplicateProductNameError) Error() string {
	return fmt.Sprintf("product with name %q already exists", e.Name)
}

func (DuplicateProductNameError) merchandiseError() {}

type OperationNotAllowedError struct {
	Operation string
	Reason    string
}

func (e OperationNotAllowedError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Operation, e.Reason)
}

func (OperationNotAllowedError) merchandiseError() {}

// Empty has no registered products yet.
type Empty struct {
	version int
}

func NewEmpty(version int) Empty {
	return Empty{version: version}
}

func (m Empty) Version() int { return m.version }

func (Empty) merchandise() {}

func (m Empty) AddProduct(metaData ProductMetaData, displayOrder DisplayOrder, allProductNames ProductNames) (Added, error) {
	return addProduct(m.version, metaData, displayOrder, allProductNames)
}

func (m Empty) Suspend(reason NonEmptyString) Suspension {
	return suspend(m.version, reason)
}

type Open struct {
	version int
}

func NewOpen(version int) Open {
	return Open{version: version}
}

func (m Open) Version() int { return m.version }

func (Open) merchandise() {}

func (m Open) AddProduct(metaData ProductMetaData, displayOrder DisplayOrder, allProductNames ProductNames) (Added, error) {
	return addProduct(m.version, metaData, displayOrder, allProductNames)
}

func (m Open) Suspend(reason NonEmptyString) Suspension {
	return suspend(m.version, reason)
}

// Suspended forbids adding products until resumed.
type Suspended struct {
	version int
	reason  NonEmptyString
}

func NewSuspended(reason NonEmptyString, version int) Suspended {
	return Suspended{version: version, reason: reason}
}

func (m Suspended) Version() int { return m.version }

func (Suspended) merchandise() {}

func (m Suspended) Reason() NonEmptyString {
	return m.reason
}

// Resume returns Empty when no product has been registered yet, Open otherwise.
func (m Suspended) Resume(allProductNames ProductNames) Resumption {
	var next Merchandise = NewOpen(m.version + 1)
	if allProductNames.Len() == 0 {
		next = NewEmpty(m.version + 1)
	}
	return Resumption{
		Merchandise: next,
		Event:       MerchandiseResumed{PreviousReason: m.reason.String()},
	}
}

type Added struct {
	Merchandise Open
	Event       ProductAdded
}

type Suspension struct {
	Merchandise Suspended
	Event       MerchandiseSuspended
}

type Resumption struct {
	Merchandise Merchandise
	Event       MerchandiseResumed
}

func TryAddProduct(m Merchandise, metaData ProductMetaData, displayOrder DisplayOrder, allProductNames ProductNames) (Added, error) {
	switch m := m.(type) {
	case Empty:
		return m.AddProduct(metaData, displayOrder, allProductNames)
	case Open:
		return m.AddProduct(metaData, displayOrder, allProductNames)
	case Suspended:
		return Added{}, OperationNotAllowedError{
			Operation: "add product to suspended merchandise",
			Reason:    m.reason.String(),
		}
	default:
		return Added{}, ErrUnknownMerchandiseState
	}
}

func TrySuspend(m Merchandise, reason NonEmptyString) (Suspension, error) {
	switch m := m.(type) {
	case Empty:
		return m.Suspend(reason), nil
	case Open:
		return m.Suspend(reason), nil
	case Suspended:
		return Suspension{}, OperationNotAllowedError{
			Operation: "suspend merchandise",
			Reason:    "already suspended: " + m.reason.String(),
		}
	default:
		return Suspension{}, ErrUnknownMerchandiseState
	}
}

func TryResume(m Merchandise, allProductNames ProductNames) (Resumption, error) {
	switch m := m.(type) {
	case Empty, Open:
		return Resumption{}, OperationNotAllowedError{
			Operation: "resume merchandise",
			Reason:    "merchandise is not suspended",
		}
	case Suspended:
		return m.Resume(allProductNames), nil
	default:
		return Resumption{}, ErrUnknownMerchandiseState
	}
}

func addProduct(version int, metaData ProductMetaData, displayOrder DisplayOrder, allProductNames ProductNames) (Added, error) {
	if allProductNames.Contains(metaData.Name) {
		return Added{}, DuplicateProductNameError{Name: metaData.Name.String()}
	}

	return Added{
		Merchandise: NewOpen(version + 1),
		Event: ProductAdded{
			Product:      NewProduct(metaData),
			DisplayOrder: displayOrder,
		},
	}, nil
}

func suspend(version int, reason NonEmptyString) Suspension {
	return Suspension{
		Merchandise: NewSuspended(reason, version+1),
		Event:       MerchandiseSuspended{Reason: reason.String()},
	}
}

func StateName(m Merchandise) string {
	switch m.(type) {
	case Empty:
		return "empty"
	case Open:
		return "open"
	case Suspended:
		return "suspended"
	default:
		return "unknown"
	}
}
