package event

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/service"
)

var _ service.EventDispatcher = &LogDispatcher{}

// LogDispatcher publishes domain events as structured log entries.
type LogDispatcher struct {
	logger logrus.FieldLogger
}

func NewLogDispatcher(logger logrus.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, event service.Event) error {
	d.logger.WithFields(eventFields(event)).Info("event dispatched")
	return nil
}

func eventFields(event service.Event) logrus.Fields {
	fields := logrus.Fields{"type": event.Type()}
	switch e := event.(type) {
	case model.ProductAdded:
		fields["productID"] = e.Product.ID.String()
		fields["name"] = e.Product.Name.String()
		fields["category"] = e.Product.Category.String()
		fields["displayOrder"] = e.DisplayOrder.Int()
	case model.MerchandiseSuspended:
		fields["reason"] = e.Reason
	case model.MerchandiseResumed:
		fields["previousReason"] = e.PreviousReason
	}
	return fields
}
