package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/field"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrFieldNotFound = shared.ErrFieldNotFound

type CreateFieldRequest struct {
	Name         string
	Location     string
	SportType    string
	PricePerHour float64
}

type UpdateFieldRequest struct {
	Name         *string
	Location     *string
	SportType    *string
	PricePerHour *float64
	Active       *bool
}

type FieldCommands interface {
	Create(ctx context.Context, actor authz.Actor, req CreateFieldRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor authz.Actor, fieldID uuid.UUID, req UpdateFieldRequest) error
	// Delete deactivates the field; its bookings are kept.
	Delete(ctx context.Context, actor authz.Actor, fieldID uuid.UUID) error
}

type fieldCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.FieldCache
	logger *slog.Logger
}

func NewFieldCommands(uow shared.UnitOfWork, cache shared.FieldCache, logger *slog.Logger) FieldCommands {
	return &fieldCommandsImpl{uow: uow, cache: cache, logger: logger}
}

func (uc *fieldCommandsImpl) Create(ctx context.Context, actor authz.Actor, req CreateFieldRequest) (uuid.UUID, error) {
	if err := authz.Require(actor, authz.ManageFields, uuid.Nil); err != nil {
		return uuid.Nil, err
	}

	name, err := field.NewName(req.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	location, err := field.NewLocation(req.Location)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	sportType, err := field.NewSportType(req.SportType)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	price, err := field.NewPrice(req.PricePerHour)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	f := field.NewField(name, location, sportType, price)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Fields().Create(ctx, f); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return f.ID(), nil
}

func (uc *fieldCommandsImpl) Update(ctx context.Context, actor authz.Actor, fieldID uuid.UUID, req UpdateFieldRequest) error {
	if err := authz.Require(actor, authz.ManageFields, uuid.Nil); err != nil {
		return err
	}
	p, err := toFieldPatch(req)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Fields().FindByID(ctx, fieldID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}
		f.Apply(p)
		if err := tx.Fields().Update(ctx, f); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
}

func (uc *fieldCommandsImpl) Delete(ctx context.Context, actor authz.Actor, fieldID uuid.UUID) error {
	if err := authz.Require(actor, authz.ManageFields, uuid.Nil); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Fields().FindByID(ctx, fieldID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}
		f.Deactivate()
		if err := tx.Fields().Update(ctx, f); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
}

func (uc *fieldCommandsImpl) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.WarnContext(ctx, "failed to invalidate field cache", "error", err.Error())
	}
}

func toFieldPatch(req UpdateFieldRequest) (field.Patch, error) {
	p := field.Patch{Active: req.Active}
	if req.Name != nil {
		name, err := field.NewName(*req.Name)
		if err != nil {
			return p, err
		}
		p.Name = &name
	}
	if req.Location != nil {
		location, err := field.NewLocation(*req.Location)
		if err != nil {
			return p, err
		}
		p.Location = &location
	}
	if req.SportType != nil {
		sportType, err := field.NewSportType(*req.SportType)
		if err != nil {
			return p, err
		}
		p.SportType = &sportType
	}
	if req.PricePerHour != nil {
		price, err := field.NewPrice(*req.PricePerHour)
		if err != nil {
			return p, err
		}
		p.PricePerHour = &price
	}
	return p, nil
}
