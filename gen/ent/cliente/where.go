// Code generated by ent, DO NOT EDIT.

package cliente

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldAgentID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldFirstName, v))
}

// MiddleName applies equality check predicate on the "middle_name" field. It's identical to MiddleNameEQ.
func MiddleName(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldMiddleName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldLastName, v))
}

// SecondLastName applies equality check predicate on the "second_last_name" field. It's identical to SecondLastNameEQ.
func SecondLastName(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldSecondLastName, v))
}

// Rfc applies equality check predicate on the "rfc" field. It's identical to RfcEQ.
func Rfc(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldRfc, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldPhone, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...uuid.UUID) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldAgentID, vs...))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldFirstName, v))
}

// MiddleNameEQ applies the EQ predicate on the "middle_name" field.
func MiddleNameEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldMiddleName, v))
}

// MiddleNameNEQ applies the NEQ predicate on the "middle_name" field.
func MiddleNameNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldMiddleName, v))
}

// MiddleNameIn applies the In predicate on the "middle_name" field.
func MiddleNameIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldMiddleName, vs...))
}

// MiddleNameNotIn applies the NotIn predicate on the "middle_name" field.
func MiddleNameNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldMiddleName, vs...))
}

// MiddleNameGT applies the GT predicate on the "middle_name" field.
func MiddleNameGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldMiddleName, v))
}

// MiddleNameGTE applies the GTE predicate on the "middle_name" field.
func MiddleNameGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldMiddleName, v))
}

// MiddleNameLT applies the LT predicate on the "middle_name" field.
func MiddleNameLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldMiddleName, v))
}

// MiddleNameLTE applies the LTE predicate on the "middle_name" field.
func MiddleNameLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldMiddleName, v))
}

// MiddleNameContains applies the Contains predicate on the "middle_name" field.
func MiddleNameContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldMiddleName, v))
}

// MiddleNameHasPrefix applies the HasPrefix predicate on the "middle_name" field.
func MiddleNameHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldMiddleName, v))
}

// MiddleNameHasSuffix applies the HasSuffix predicate on the "middle_name" field.
func MiddleNameHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldMiddleName, v))
}

// MiddleNameIsNil applies the IsNil predicate on the "middle_name" field.
func MiddleNameIsNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldIsNull(FieldMiddleName))
}

// MiddleNameNotNil applies the NotNil predicate on the "middle_name" field.
func MiddleNameNotNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldNotNull(FieldMiddleName))
}

// MiddleNameEqualFold applies the EqualFold predicate on the "middle_name" field.
func MiddleNameEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldMiddleName, v))
}

// MiddleNameContainsFold applies the ContainsFold predicate on the "middle_name" field.
func MiddleNameContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldMiddleName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldLastName, v))
}

// SecondLastNameEQ applies the EQ predicate on the "second_last_name" field.
func SecondLastNameEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldSecondLastName, v))
}

// SecondLastNameNEQ applies the NEQ predicate on the "second_last_name" field.
func SecondLastNameNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldSecondLastName, v))
}

// SecondLastNameIn applies the In predicate on the "second_last_name" field.
func SecondLastNameIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldSecondLastName, vs...))
}

// SecondLastNameNotIn applies the NotIn predicate on the "second_last_name" field.
func SecondLastNameNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldSecondLastName, vs...))
}

// SecondLastNameGT applies the GT predicate on the "second_last_name" field.
func SecondLastNameGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldSecondLastName, v))
}

// SecondLastNameGTE applies the GTE predicate on the "second_last_name" field.
func SecondLastNameGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldSecondLastName, v))
}

// SecondLastNameLT applies the LT predicate on the "second_last_name" field.
func SecondLastNameLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldSecondLastName, v))
}

// SecondLastNameLTE applies the LTE predicate on the "second_last_name" field.
func SecondLastNameLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldSecondLastName, v))
}

// SecondLastNameContains applies the Contains predicate on the "second_last_name" field.
func SecondLastNameContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldSecondLastName, v))
}

// SecondLastNameHasPrefix applies the HasPrefix predicate on the "second_last_name" field.
func SecondLastNameHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldSecondLastName, v))
}

// SecondLastNameHasSuffix applies the HasSuffix predicate on the "second_last_name" field.
func SecondLastNameHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldSecondLastName, v))
}

// SecondLastNameIsNil applies the IsNil predicate on the "second_last_name" field.
func SecondLastNameIsNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldIsNull(FieldSecondLastName))
}

// SecondLastNameNotNil applies the NotNil predicate on the "second_last_name" field.
func SecondLastNameNotNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldNotNull(FieldSecondLastName))
}

// SecondLastNameEqualFold applies the EqualFold predicate on the "second_last_name" field.
func SecondLastNameEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldSecondLastName, v))
}

// SecondLastNameContainsFold applies the ContainsFold predicate on the "second_last_name" field.
func SecondLastNameContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldSecondLastName, v))
}

// RfcEQ applies the EQ predicate on the "rfc" field.
func RfcEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldRfc, v))
}

// RfcNEQ applies the NEQ predicate on the "rfc" field.
func RfcNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldRfc, v))
}

// RfcIn applies the In predicate on the "rfc" field.
func RfcIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldRfc, vs...))
}

// RfcNotIn applies the NotIn predicate on the "rfc" field.
func RfcNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldRfc, vs...))
}

// RfcGT applies the GT predicate on the "rfc" field.
func RfcGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldRfc, v))
}

// RfcGTE applies the GTE predicate on the "rfc" field.
func RfcGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldRfc, v))
}

// RfcLT applies the LT predicate on the "rfc" field.
func RfcLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldRfc, v))
}

// RfcLTE applies the LTE predicate on the "rfc" field.
func RfcLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldRfc, v))
}

// RfcContains applies the Contains predicate on the "rfc" field.
func RfcContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldRfc, v))
}

// RfcHasPrefix applies the HasPrefix predicate on the "rfc" field.
func RfcHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldRfc, v))
}

// RfcHasSuffix applies the HasSuffix predicate on the "rfc" field.
func RfcHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldRfc, v))
}

// RfcIsNil applies the IsNil predicate on the "rfc" field.
func RfcIsNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldIsNull(FieldRfc))
}

// RfcNotNil applies the NotNil predicate on the "rfc" field.
func RfcNotNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldNotNull(FieldRfc))
}

// RfcEqualFold applies the EqualFold predicate on the "rfc" field.
func RfcEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldRfc, v))
}

// RfcContainsFold applies the ContainsFold predicate on the "rfc" field.
func RfcContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldRfc, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Cliente {
	return predicate.Cliente(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Cliente {
	return predicate.Cliente(sql.FieldContainsFold(FieldPhone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cliente {
	return predicate.Cliente(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Cliente {
	return predicate.Cliente(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Cliente {
	return predicate.Cliente(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPolicies applies the HasEdge predicate on the "policies" edge.
func HasPolicies() predicate.Cliente {
	return predicate.Cliente(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PoliciesTable, PoliciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPoliciesWith applies the HasEdge predicate on the "policies" edge with a given conditions (other predicates).
func HasPoliciesWith(preds ...predicate.Poliza) predicate.Cliente {
	return predicate.Cliente(func(s *sql.Selector) {
		step := newPoliciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cliente) predicate.Cliente {
	return predicate.Cliente(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cliente) predicate.Cliente {
	return predicate.Cliente(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cliente) predicate.Cliente {
	return predicate.Cliente(sql.NotPredicates(p))
}
