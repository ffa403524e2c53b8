// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Beneficiary is the predicate function for beneficiary builders.
type Beneficiary func(*sql.Selector)

// Cliente is the predicate function for cliente builders.
type Cliente func(*sql.Selector)

// CommissionLine is the predicate function for commissionline builders.
type CommissionLine func(*sql.Selector)

// CommissionStatement is the predicate function for commissionstatement builders.
type CommissionStatement func(*sql.Selector)

// Insurer is the predicate function for insurer builders.
type Insurer func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// PolicyAIImport is the predicate function for policyaiimport builders.
type PolicyAIImport func(*sql.Selector)

// Poliza is the predicate function for poliza builders.
type Poliza func(*sql.Selector)

// TrackingEntry is the predicate function for trackingentry builders.
type TrackingEntry func(*sql.Selector)
