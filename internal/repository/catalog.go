package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
)

// InsurerRepository manages the shared insurer catalog.
type InsurerRepository interface {
	Upsert(ctx context.Context, name string) (*ent.Insurer, error)
	ListActive(ctx context.Context) ([]*ent.Insurer, error)
	GetByName(ctx context.Context, name string) (*ent.Insurer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type insurerRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewInsurerRepository(entc *ent.Client, log *slog.Logger) InsurerRepository {
	if log == nil {
		log = slog.Default()
	}
	return &insurerRepo{ent: entc, log: log}
}

func (r *insurerRepo) Upsert(ctx context.Context, name string) (*ent.Insurer, error) {
	existing, err := r.ent.Insurer.
		Query().
		Where(insurer.Name(name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	ins, err := r.ent.Insurer.
		Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.log.Error("insurer create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("insurer created", "insurer_id", ins.ID, "name", name)
	return ins, nil
}

func (r *insurerRepo) ListActive(ctx context.Context) ([]*ent.Insurer, error) {
	return r.ent.Insurer.
		Query().
		Where(insurer.Active(true)).
		Order(ent.Asc(insurer.FieldName)).
		All(ctx)
}

func (r *insurerRepo) GetByName(ctx context.Context, name string) (*ent.Insurer, error) {
	ins, err := r.ent.Insurer.
		Query().
		Where(insurer.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return ins, err
}

func (r *insurerRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Insurer.
		Query().
		Where(insurer.ID(id)).
		Exist(ctx)
}
