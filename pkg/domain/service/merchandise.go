package service

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

type MerchandiseService interface {
	AddProduct(ctx context.Context, request AddProductRequest) (model.Added, error)
	SuspendMerchandise(ctx context.Context, reason string) (model.Suspension, error)
	ResumeMerchandise(ctx context.Context) (model.Resumption, error)
}

type Dependencies struct {
	ProductNames  model.ProductNamesReader
	DisplayOrders model.DisplayOrderReader
	Repository    model.MerchandiseRepository
	IDs           model.IDGenerator
	Dispatcher    EventDispatcher
	Logger        logrus.FieldLogger
}

func NewMerchandiseService(deps Dependencies) MerchandiseService {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &merchandiseService{
		productNames:  deps.ProductNames,
		displayOrders: deps.DisplayOrders,
		repo:          deps.Repository,
		ids:           deps.IDs,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
	}
}

type merchandiseService struct {
	productNames  model.ProductNamesReader
	displayOrders model.DisplayOrderReader
	repo          model.MerchandiseRepository
	ids           model.IDGenerator
	dispatcher    EventDispatcher
	logger        logrus.FieldLogger
}

// AddProduct returns an AddProductError for rejected requests.
// Any other error comes from a collaborator.
func (s *merchandiseService) AddProduct(ctx context.Context, request AddProductRequest) (model.Added, error) {
	metaData, err := request.toProductMetaData(s.ids)
	if err != nil {
		return model.Added{}, err
	}

	productNames, err := s.productNames.ReadProductNames(ctx)
	if err != nil {
		return model.Added{}, pkgerrors.Wrap(err, "read product names")
	}
	displayOrder, err := s.displayOrders.ReadDisplayOrder(ctx)
	if err != nil {
		return model.Added{}, pkgerrors.Wrap(err, "read display order")
	}

	current, err := s.repo.Restore(ctx)
	if err != nil {
		return model.Added{}, pkgerrors.Wrap(err, "restore merchandise")
	}

	added, err := model.TryAddProduct(current, metaData, displayOrder, productNames)
	if err != nil {
		return model.Added{}, domainError(err)
	}

	if err := s.repo.SaveProduct(ctx, added.Event, current.Version()); err != nil {
		return model.Added{}, pkgerrors.Wrap(err, "save product")
	}

	s.publish(ctx, added.Event)

	return added, nil
}

func (s *merchandiseService) SuspendMerchandise(ctx context.Context, reason string) (model.Suspension, error) {
	suspensionReason, err := model.NewNonEmptyString(reason)
	if err != nil {
		return model.Suspension{}, InvalidRequestError{
			Field:   "reason",
			Message: "invalid suspension reason: reason must not be empty",
		}
	}

	current, err := s.repo.Restore(ctx)
	if err != nil {
		return model.Suspension{}, pkgerrors.Wrap(err, "restore merchandise")
	}

	suspension, err := model.TrySuspend(current, suspensionReason)
	if err != nil {
		return model.Suspension{}, domainError(err)
	}

	if err := s.repo.SaveState(ctx, suspension.Merchandise, current.Version()); err != nil {
		return model.Suspension{}, pkgerrors.Wrap(err, "save merchandise state")
	}

	s.publish(ctx, suspension.Event)

	return suspension, nil
}

func (s *merchandiseService) ResumeMerchandise(ctx context.Context) (model.Resumption, error) {
	productNames, err := s.productNames.ReadProductNames(ctx)
	if err != nil {
		return model.Resumption{}, pkgerrors.Wrap(err, "read product names")
	}

	current, err := s.repo.Restore(ctx)
	if err != nil {
		return model.Resumption{}, pkgerrors.Wrap(err, "restore merchandise")
	}

	resumption, err := model.TryResume(current, productNames)
	if err != nil {
		return model.Resumption{}, domainError(err)
	}

	if err := s.repo.SaveState(ctx, resumption.Merchandise, current.Version()); err != nil {
		return model.Resumption{}, pkgerrors.Wrap(err, "save merchandise state")
	}

	s.publish(ctx, resumption.Event)

	return resumption, nil
}

// publish runs after the projection is stored; a failed dispatch does not undo it.
func (s *merchandiseService) publish(ctx context.Context, event Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
	}
}

func domainError(err error) error {
	var merchandiseErr model.MerchandiseError
	if errors.As(err, &merchandiseErr) {
		return DomainError{Err: merchandiseErr}
	}
	return err
}
