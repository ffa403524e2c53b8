// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// BeneficiaryDelete is the builder for deleting a Beneficiary entity.
type BeneficiaryDelete struct {
	config
	hooks    []Hook
	mutation *BeneficiaryMutation
}

// Where appends a list predicates to the BeneficiaryDelete builder.
func (_d *BeneficiaryDelete) Where(ps ...predicate.Beneficiary) *BeneficiaryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BeneficiaryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BeneficiaryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BeneficiaryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(beneficiary.Table, sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BeneficiaryDeleteOne is the builder for deleting a single Beneficiary entity.
type BeneficiaryDeleteOne struct {
	_d *BeneficiaryDelete
}

// Where appends a list predicates to the BeneficiaryDelete builder.
func (_d *BeneficiaryDeleteOne) Where(ps ...predicate.Beneficiary) *BeneficiaryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BeneficiaryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{beneficiary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BeneficiaryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
