// Code generated by ent, DO NOT EDIT.

package poliza

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldAgentID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldClientID, v))
}

// InsuredClientID applies equality check predicate on the "insured_client_id" field. It's identical to InsuredClientIDEQ.
func InsuredClientID(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldInsuredClientID, v))
}

// InsurerID applies equality check predicate on the "insurer_id" field. It's identical to InsurerIDEQ.
func InsurerID(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldInsurerID, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldProductName, v))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPolicyNumber, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldValidFrom, v))
}

// ValidTo applies equality check predicate on the "valid_to" field. It's identical to ValidToEQ.
func ValidTo(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldValidTo, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldCurrency, v))
}

// PaymentFrequency applies equality check predicate on the "payment_frequency" field. It's identical to PaymentFrequencyEQ.
func PaymentFrequency(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPaymentFrequency, v))
}

// PremiumTotal applies equality check predicate on the "premium_total" field. It's identical to PremiumTotalEQ.
func PremiumTotal(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPremiumTotal, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldAgentID, vs...))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldClientID, vs...))
}

// InsuredClientIDEQ applies the EQ predicate on the "insured_client_id" field.
func InsuredClientIDEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldInsuredClientID, v))
}

// InsuredClientIDNEQ applies the NEQ predicate on the "insured_client_id" field.
func InsuredClientIDNEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldInsuredClientID, v))
}

// InsuredClientIDIn applies the In predicate on the "insured_client_id" field.
func InsuredClientIDIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldInsuredClientID, vs...))
}

// InsuredClientIDNotIn applies the NotIn predicate on the "insured_client_id" field.
func InsuredClientIDNotIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldInsuredClientID, vs...))
}

// InsuredClientIDGT applies the GT predicate on the "insured_client_id" field.
func InsuredClientIDGT(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldInsuredClientID, v))
}

// InsuredClientIDGTE applies the GTE predicate on the "insured_client_id" field.
func InsuredClientIDGTE(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldInsuredClientID, v))
}

// InsuredClientIDLT applies the LT predicate on the "insured_client_id" field.
func InsuredClientIDLT(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldInsuredClientID, v))
}

// InsuredClientIDLTE applies the LTE predicate on the "insured_client_id" field.
func InsuredClientIDLTE(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldInsuredClientID, v))
}

// InsuredClientIDIsNil applies the IsNil predicate on the "insured_client_id" field.
func InsuredClientIDIsNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldIsNull(FieldInsuredClientID))
}

// InsuredClientIDNotNil applies the NotNil predicate on the "insured_client_id" field.
func InsuredClientIDNotNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldNotNull(FieldInsuredClientID))
}

// InsurerIDEQ applies the EQ predicate on the "insurer_id" field.
func InsurerIDEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldInsurerID, v))
}

// InsurerIDNEQ applies the NEQ predicate on the "insurer_id" field.
func InsurerIDNEQ(v uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldInsurerID, v))
}

// InsurerIDIn applies the In predicate on the "insurer_id" field.
func InsurerIDIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldInsurerID, vs...))
}

// InsurerIDNotIn applies the NotIn predicate on the "insurer_id" field.
func InsurerIDNotIn(vs ...uuid.UUID) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldInsurerID, vs...))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameIsNil applies the IsNil predicate on the "product_name" field.
func ProductNameIsNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldIsNull(FieldProductName))
}

// ProductNameNotNil applies the NotNil predicate on the "product_name" field.
func ProductNameNotNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldNotNull(FieldProductName))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldProductName, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldValidFrom, v))
}

// ValidToEQ applies the EQ predicate on the "valid_to" field.
func ValidToEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldValidTo, v))
}

// ValidToNEQ applies the NEQ predicate on the "valid_to" field.
func ValidToNEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldValidTo, v))
}

// ValidToIn applies the In predicate on the "valid_to" field.
func ValidToIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldValidTo, vs...))
}

// ValidToNotIn applies the NotIn predicate on the "valid_to" field.
func ValidToNotIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldValidTo, vs...))
}

// ValidToGT applies the GT predicate on the "valid_to" field.
func ValidToGT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldValidTo, v))
}

// ValidToGTE applies the GTE predicate on the "valid_to" field.
func ValidToGTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldValidTo, v))
}

// ValidToLT applies the LT predicate on the "valid_to" field.
func ValidToLT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldValidTo, v))
}

// ValidToLTE applies the LTE predicate on the "valid_to" field.
func ValidToLTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldValidTo, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldCurrency, v))
}

// PaymentFrequencyEQ applies the EQ predicate on the "payment_frequency" field.
func PaymentFrequencyEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPaymentFrequency, v))
}

// PaymentFrequencyNEQ applies the NEQ predicate on the "payment_frequency" field.
func PaymentFrequencyNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldPaymentFrequency, v))
}

// PaymentFrequencyIn applies the In predicate on the "payment_frequency" field.
func PaymentFrequencyIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldPaymentFrequency, vs...))
}

// PaymentFrequencyNotIn applies the NotIn predicate on the "payment_frequency" field.
func PaymentFrequencyNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldPaymentFrequency, vs...))
}

// PaymentFrequencyGT applies the GT predicate on the "payment_frequency" field.
func PaymentFrequencyGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldPaymentFrequency, v))
}

// PaymentFrequencyGTE applies the GTE predicate on the "payment_frequency" field.
func PaymentFrequencyGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldPaymentFrequency, v))
}

// PaymentFrequencyLT applies the LT predicate on the "payment_frequency" field.
func PaymentFrequencyLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldPaymentFrequency, v))
}

// PaymentFrequencyLTE applies the LTE predicate on the "payment_frequency" field.
func PaymentFrequencyLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldPaymentFrequency, v))
}

// PaymentFrequencyContains applies the Contains predicate on the "payment_frequency" field.
func PaymentFrequencyContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldPaymentFrequency, v))
}

// PaymentFrequencyHasPrefix applies the HasPrefix predicate on the "payment_frequency" field.
func PaymentFrequencyHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldPaymentFrequency, v))
}

// PaymentFrequencyHasSuffix applies the HasSuffix predicate on the "payment_frequency" field.
func PaymentFrequencyHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldPaymentFrequency, v))
}

// PaymentFrequencyIsNil applies the IsNil predicate on the "payment_frequency" field.
func PaymentFrequencyIsNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldIsNull(FieldPaymentFrequency))
}

// PaymentFrequencyNotNil applies the NotNil predicate on the "payment_frequency" field.
func PaymentFrequencyNotNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldNotNull(FieldPaymentFrequency))
}

// PaymentFrequencyEqualFold applies the EqualFold predicate on the "payment_frequency" field.
func PaymentFrequencyEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldPaymentFrequency, v))
}

// PaymentFrequencyContainsFold applies the ContainsFold predicate on the "payment_frequency" field.
func PaymentFrequencyContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldPaymentFrequency, v))
}

// PremiumTotalEQ applies the EQ predicate on the "premium_total" field.
func PremiumTotalEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldPremiumTotal, v))
}

// PremiumTotalNEQ applies the NEQ predicate on the "premium_total" field.
func PremiumTotalNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldPremiumTotal, v))
}

// PremiumTotalIn applies the In predicate on the "premium_total" field.
func PremiumTotalIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldPremiumTotal, vs...))
}

// PremiumTotalNotIn applies the NotIn predicate on the "premium_total" field.
func PremiumTotalNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldPremiumTotal, vs...))
}

// PremiumTotalGT applies the GT predicate on the "premium_total" field.
func PremiumTotalGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldPremiumTotal, v))
}

// PremiumTotalGTE applies the GTE predicate on the "premium_total" field.
func PremiumTotalGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldPremiumTotal, v))
}

// PremiumTotalLT applies the LT predicate on the "premium_total" field.
func PremiumTotalLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldPremiumTotal, v))
}

// PremiumTotalLTE applies the LTE predicate on the "premium_total" field.
func PremiumTotalLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldPremiumTotal, v))
}

// PremiumTotalContains applies the Contains predicate on the "premium_total" field.
func PremiumTotalContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldPremiumTotal, v))
}

// PremiumTotalHasPrefix applies the HasPrefix predicate on the "premium_total" field.
func PremiumTotalHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldPremiumTotal, v))
}

// PremiumTotalHasSuffix applies the HasSuffix predicate on the "premium_total" field.
func PremiumTotalHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldPremiumTotal, v))
}

// PremiumTotalIsNil applies the IsNil predicate on the "premium_total" field.
func PremiumTotalIsNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldIsNull(FieldPremiumTotal))
}

// PremiumTotalNotNil applies the NotNil predicate on the "premium_total" field.
func PremiumTotalNotNil() predicate.Poliza {
	return predicate.Poliza(sql.FieldNotNull(FieldPremiumTotal))
}

// PremiumTotalEqualFold applies the EqualFold predicate on the "premium_total" field.
func PremiumTotalEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldPremiumTotal, v))
}

// PremiumTotalContainsFold applies the ContainsFold predicate on the "premium_total" field.
func PremiumTotalContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldPremiumTotal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Poliza {
	return predicate.Poliza(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Poliza {
	return predicate.Poliza(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.Cliente) predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsurer applies the HasEdge predicate on the "insurer" edge.
func HasInsurer() predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InsurerTable, InsurerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsurerWith applies the HasEdge predicate on the "insurer" edge with a given conditions (other predicates).
func HasInsurerWith(preds ...predicate.Insurer) predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := newInsurerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBeneficiaries applies the HasEdge predicate on the "beneficiaries" edge.
func HasBeneficiaries() predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BeneficiariesTable, BeneficiariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBeneficiariesWith applies the HasEdge predicate on the "beneficiaries" edge with a given conditions (other predicates).
func HasBeneficiariesWith(preds ...predicate.Beneficiary) predicate.Poliza {
	return predicate.Poliza(func(s *sql.Selector) {
		step := newBeneficiariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Poliza) predicate.Poliza {
	return predicate.Poliza(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Poliza) predicate.Poliza {
	return predicate.Poliza(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Poliza) predicate.Poliza {
	return predicate.Poliza(sql.NotPredicates(p))
}
