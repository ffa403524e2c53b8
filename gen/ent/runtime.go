// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/db/ent/schema"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/lead"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[1].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescEmail is the schema descriptor for email field.
	agentDescEmail := agentFields[2].Descriptor()
	// agent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	agent.EmailValidator = agentDescEmail.Validators[0].(func(string) error)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[4].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[5].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentDescID is the schema descriptor for id field.
	agentDescID := agentFields[0].Descriptor()
	// agent.DefaultID holds the default value on creation for the id field.
	agent.DefaultID = agentDescID.Default.(func() uuid.UUID)
	beneficiaryFields := schema.Beneficiary{}.Fields()
	_ = beneficiaryFields
	// beneficiaryDescName is the schema descriptor for name field.
	beneficiaryDescName := beneficiaryFields[2].Descriptor()
	// beneficiary.NameValidator is a validator for the "name" field. It is called by the builders before save.
	beneficiary.NameValidator = beneficiaryDescName.Validators[0].(func(string) error)
	// beneficiaryDescID is the schema descriptor for id field.
	beneficiaryDescID := beneficiaryFields[0].Descriptor()
	// beneficiary.DefaultID holds the default value on creation for the id field.
	beneficiary.DefaultID = beneficiaryDescID.Default.(func() uuid.UUID)
	clienteFields := schema.Cliente{}.Fields()
	_ = clienteFields
	// clienteDescFirstName is the schema descriptor for first_name field.
	clienteDescFirstName := clienteFields[2].Descriptor()
	// cliente.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	cliente.FirstNameValidator = clienteDescFirstName.Validators[0].(func(string) error)
	// clienteDescLastName is the schema descriptor for last_name field.
	clienteDescLastName := clienteFields[4].Descriptor()
	// cliente.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	cliente.LastNameValidator = clienteDescLastName.Validators[0].(func(string) error)
	// clienteDescCreatedAt is the schema descriptor for created_at field.
	clienteDescCreatedAt := clienteFields[9].Descriptor()
	// cliente.DefaultCreatedAt holds the default value on creation for the created_at field.
	cliente.DefaultCreatedAt = clienteDescCreatedAt.Default.(func() time.Time)
	// clienteDescUpdatedAt is the schema descriptor for updated_at field.
	clienteDescUpdatedAt := clienteFields[10].Descriptor()
	// cliente.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cliente.DefaultUpdatedAt = clienteDescUpdatedAt.Default.(func() time.Time)
	// cliente.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cliente.UpdateDefaultUpdatedAt = clienteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clienteDescID is the schema descriptor for id field.
	clienteDescID := clienteFields[0].Descriptor()
	// cliente.DefaultID holds the default value on creation for the id field.
	cliente.DefaultID = clienteDescID.Default.(func() uuid.UUID)
	commissionlineFields := schema.CommissionLine{}.Fields()
	_ = commissionlineFields
	// commissionlineDescPolicyNumber is the schema descriptor for policy_number field.
	commissionlineDescPolicyNumber := commissionlineFields[2].Descriptor()
	// commissionline.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	commissionline.PolicyNumberValidator = commissionlineDescPolicyNumber.Validators[0].(func(string) error)
	// commissionlineDescExpectedAmount is the schema descriptor for expected_amount field.
	commissionlineDescExpectedAmount := commissionlineFields[4].Descriptor()
	// commissionline.DefaultExpectedAmount holds the default value on creation for the expected_amount field.
	commissionline.DefaultExpectedAmount = commissionlineDescExpectedAmount.Default.(string)
	// commissionlineDescPaidAmount is the schema descriptor for paid_amount field.
	commissionlineDescPaidAmount := commissionlineFields[5].Descriptor()
	// commissionline.DefaultPaidAmount holds the default value on creation for the paid_amount field.
	commissionline.DefaultPaidAmount = commissionlineDescPaidAmount.Default.(string)
	// commissionlineDescID is the schema descriptor for id field.
	commissionlineDescID := commissionlineFields[0].Descriptor()
	// commissionline.DefaultID holds the default value on creation for the id field.
	commissionline.DefaultID = commissionlineDescID.Default.(func() uuid.UUID)
	commissionstatementFields := schema.CommissionStatement{}.Fields()
	_ = commissionstatementFields
	// commissionstatementDescPeriod is the schema descriptor for period field.
	commissionstatementDescPeriod := commissionstatementFields[3].Descriptor()
	// commissionstatement.PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	commissionstatement.PeriodValidator = func() func(string) error {
		validators := commissionstatementDescPeriod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(period string) error {
			for _, fn := range fns {
				if err := fn(period); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// commissionstatementDescExpectedTotal is the schema descriptor for expected_total field.
	commissionstatementDescExpectedTotal := commissionstatementFields[4].Descriptor()
	// commissionstatement.DefaultExpectedTotal holds the default value on creation for the expected_total field.
	commissionstatement.DefaultExpectedTotal = commissionstatementDescExpectedTotal.Default.(string)
	// commissionstatementDescPaidTotal is the schema descriptor for paid_total field.
	commissionstatementDescPaidTotal := commissionstatementFields[5].Descriptor()
	// commissionstatement.DefaultPaidTotal holds the default value on creation for the paid_total field.
	commissionstatement.DefaultPaidTotal = commissionstatementDescPaidTotal.Default.(string)
	// commissionstatementDescStatus is the schema descriptor for status field.
	commissionstatementDescStatus := commissionstatementFields[6].Descriptor()
	// commissionstatement.DefaultStatus holds the default value on creation for the status field.
	commissionstatement.DefaultStatus = commissionstatementDescStatus.Default.(string)
	// commissionstatement.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	commissionstatement.StatusValidator = commissionstatementDescStatus.Validators[0].(func(string) error)
	// commissionstatementDescCreatedAt is the schema descriptor for created_at field.
	commissionstatementDescCreatedAt := commissionstatementFields[7].Descriptor()
	// commissionstatement.DefaultCreatedAt holds the default value on creation for the created_at field.
	commissionstatement.DefaultCreatedAt = commissionstatementDescCreatedAt.Default.(func() time.Time)
	// commissionstatementDescUpdatedAt is the schema descriptor for updated_at field.
	commissionstatementDescUpdatedAt := commissionstatementFields[8].Descriptor()
	// commissionstatement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commissionstatement.DefaultUpdatedAt = commissionstatementDescUpdatedAt.Default.(func() time.Time)
	// commissionstatement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commissionstatement.UpdateDefaultUpdatedAt = commissionstatementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commissionstatementDescID is the schema descriptor for id field.
	commissionstatementDescID := commissionstatementFields[0].Descriptor()
	// commissionstatement.DefaultID holds the default value on creation for the id field.
	commissionstatement.DefaultID = commissionstatementDescID.Default.(func() uuid.UUID)
	insurerFields := schema.Insurer{}.Fields()
	_ = insurerFields
	// insurerDescName is the schema descriptor for name field.
	insurerDescName := insurerFields[1].Descriptor()
	// insurer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	insurer.NameValidator = insurerDescName.Validators[0].(func(string) error)
	// insurerDescActive is the schema descriptor for active field.
	insurerDescActive := insurerFields[2].Descriptor()
	// insurer.DefaultActive holds the default value on creation for the active field.
	insurer.DefaultActive = insurerDescActive.Default.(bool)
	// insurerDescID is the schema descriptor for id field.
	insurerDescID := insurerFields[0].Descriptor()
	// insurer.DefaultID holds the default value on creation for the id field.
	insurer.DefaultID = insurerDescID.Default.(func() uuid.UUID)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescFullName is the schema descriptor for full_name field.
	leadDescFullName := leadFields[2].Descriptor()
	// lead.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	lead.FullNameValidator = leadDescFullName.Validators[0].(func(string) error)
	// leadDescStatus is the schema descriptor for status field.
	leadDescStatus := leadFields[6].Descriptor()
	// lead.DefaultStatus holds the default value on creation for the status field.
	lead.DefaultStatus = leadDescStatus.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[7].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[8].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	// leadDescID is the schema descriptor for id field.
	leadDescID := leadFields[0].Descriptor()
	// lead.DefaultID holds the default value on creation for the id field.
	lead.DefaultID = leadDescID.Default.(func() uuid.UUID)
	policyaiimportFields := schema.PolicyAIImport{}.Fields()
	_ = policyaiimportFields
	// policyaiimportDescStorageDisk is the schema descriptor for storage_disk field.
	policyaiimportDescStorageDisk := policyaiimportFields[3].Descriptor()
	// policyaiimport.DefaultStorageDisk holds the default value on creation for the storage_disk field.
	policyaiimport.DefaultStorageDisk = policyaiimportDescStorageDisk.Default.(string)
	// policyaiimportDescFilePath is the schema descriptor for file_path field.
	policyaiimportDescFilePath := policyaiimportFields[4].Descriptor()
	// policyaiimport.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	policyaiimport.FilePathValidator = policyaiimportDescFilePath.Validators[0].(func(string) error)
	// policyaiimportDescOriginalFilename is the schema descriptor for original_filename field.
	policyaiimportDescOriginalFilename := policyaiimportFields[5].Descriptor()
	// policyaiimport.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	policyaiimport.OriginalFilenameValidator = policyaiimportDescOriginalFilename.Validators[0].(func(string) error)
	// policyaiimportDescMimeType is the schema descriptor for mime_type field.
	policyaiimportDescMimeType := policyaiimportFields[6].Descriptor()
	// policyaiimport.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	policyaiimport.MimeTypeValidator = policyaiimportDescMimeType.Validators[0].(func(string) error)
	// policyaiimportDescStatus is the schema descriptor for status field.
	policyaiimportDescStatus := policyaiimportFields[7].Descriptor()
	// policyaiimport.DefaultStatus holds the default value on creation for the status field.
	policyaiimport.DefaultStatus = policyaiimportDescStatus.Default.(string)
	// policyaiimport.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	policyaiimport.StatusValidator = policyaiimportDescStatus.Validators[0].(func(string) error)
	// policyaiimportDescCreatedAt is the schema descriptor for created_at field.
	policyaiimportDescCreatedAt := policyaiimportFields[17].Descriptor()
	// policyaiimport.DefaultCreatedAt holds the default value on creation for the created_at field.
	policyaiimport.DefaultCreatedAt = policyaiimportDescCreatedAt.Default.(func() time.Time)
	// policyaiimportDescUpdatedAt is the schema descriptor for updated_at field.
	policyaiimportDescUpdatedAt := policyaiimportFields[18].Descriptor()
	// policyaiimport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	policyaiimport.DefaultUpdatedAt = policyaiimportDescUpdatedAt.Default.(func() time.Time)
	// policyaiimport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	policyaiimport.UpdateDefaultUpdatedAt = policyaiimportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// policyaiimportDescID is the schema descriptor for id field.
	policyaiimportDescID := policyaiimportFields[0].Descriptor()
	// policyaiimport.DefaultID holds the default value on creation for the id field.
	policyaiimport.DefaultID = policyaiimportDescID.Default.(func() uuid.UUID)
	polizaFields := schema.Poliza{}.Fields()
	_ = polizaFields
	// polizaDescPolicyNumber is the schema descriptor for policy_number field.
	polizaDescPolicyNumber := polizaFields[6].Descriptor()
	// poliza.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	poliza.PolicyNumberValidator = polizaDescPolicyNumber.Validators[0].(func(string) error)
	// polizaDescCurrency is the schema descriptor for currency field.
	polizaDescCurrency := polizaFields[9].Descriptor()
	// poliza.DefaultCurrency holds the default value on creation for the currency field.
	poliza.DefaultCurrency = polizaDescCurrency.Default.(string)
	// poliza.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	poliza.CurrencyValidator = func() func(string) error {
		validators := polizaDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// polizaDescStatus is the schema descriptor for status field.
	polizaDescStatus := polizaFields[12].Descriptor()
	// poliza.DefaultStatus holds the default value on creation for the status field.
	poliza.DefaultStatus = polizaDescStatus.Default.(string)
	// polizaDescCreatedAt is the schema descriptor for created_at field.
	polizaDescCreatedAt := polizaFields[13].Descriptor()
	// poliza.DefaultCreatedAt holds the default value on creation for the created_at field.
	poliza.DefaultCreatedAt = polizaDescCreatedAt.Default.(func() time.Time)
	// polizaDescUpdatedAt is the schema descriptor for updated_at field.
	polizaDescUpdatedAt := polizaFields[14].Descriptor()
	// poliza.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	poliza.DefaultUpdatedAt = polizaDescUpdatedAt.Default.(func() time.Time)
	// poliza.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	poliza.UpdateDefaultUpdatedAt = polizaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// polizaDescID is the schema descriptor for id field.
	polizaDescID := polizaFields[0].Descriptor()
	// poliza.DefaultID holds the default value on creation for the id field.
	poliza.DefaultID = polizaDescID.Default.(func() uuid.UUID)
	trackingentryFields := schema.TrackingEntry{}.Fields()
	_ = trackingentryFields
	// trackingentryDescOwnerKind is the schema descriptor for owner_kind field.
	trackingentryDescOwnerKind := trackingentryFields[2].Descriptor()
	// trackingentry.OwnerKindValidator is a validator for the "owner_kind" field. It is called by the builders before save.
	trackingentry.OwnerKindValidator = trackingentryDescOwnerKind.Validators[0].(func(string) error)
	// trackingentryDescKind is the schema descriptor for kind field.
	trackingentryDescKind := trackingentryFields[4].Descriptor()
	// trackingentry.DefaultKind holds the default value on creation for the kind field.
	trackingentry.DefaultKind = trackingentryDescKind.Default.(string)
	// trackingentryDescBody is the schema descriptor for body field.
	trackingentryDescBody := trackingentryFields[5].Descriptor()
	// trackingentry.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	trackingentry.BodyValidator = trackingentryDescBody.Validators[0].(func(string) error)
	// trackingentryDescCreatedAt is the schema descriptor for created_at field.
	trackingentryDescCreatedAt := trackingentryFields[6].Descriptor()
	// trackingentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	trackingentry.DefaultCreatedAt = trackingentryDescCreatedAt.Default.(func() time.Time)
	// trackingentryDescID is the schema descriptor for id field.
	trackingentryDescID := trackingentryFields[0].Descriptor()
	// trackingentry.DefaultID holds the default value on creation for the id field.
	trackingentry.DefaultID = trackingentryDescID.Default.(func() uuid.UUID)
}
