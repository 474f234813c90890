package model

type ProductAdded struct {
	Product      Product
	DisplayOrder DisplayOrder
}

func (e ProductAdded) Type() string {
	return "ProductAdded"
}

type MerchandiseSuspended struct {
	Reason string
}

func (e MerchandiseSuspended) Type() string {
	return "MerchandiseSuspended"
}

type MerchandiseResumed struct {
	PreviousReason string
}

func (e MerchandiseResumed) Type() string {
	return "MerchandiseResumed"
}
