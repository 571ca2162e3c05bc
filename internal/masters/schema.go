// Package masters defines the declarative field schemas that drive the
// generic master-data screen. Adding a master table means adding one
// entry to the registry below; the list, form and toggle logic are
// shared across all of them.
package masters

import "fmt"

// Kind identifies one master table.
type Kind string

const (
	KindPartyType        Kind = "partyType"
	KindDocumentType     Kind = "documentType"
	KindExpenseCategory  Kind = "expenseCategory"
	KindPaymentMode      Kind = "paymentMode"
	KindNotificationType Kind = "notificationType"
)

// FieldType selects the input widget used for a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSwitch   FieldType = "switch"
)

// Field is one editable attribute of a master record.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
}

// Schema describes one master table: where it lives on the API, which
// keys identify and label its records, and which fields its form edits.
type Schema struct {
	Kind            Kind
	Title           string
	BasePath        string
	IDKey           string
	NameKey         string
	IsPredefinedKey string
	IsActiveKey     string
	Fields          []Field
}

var registry = []Schema{
	{
		Kind:            KindPartyType,
		Title:           "Party Types",
		BasePath:        "/party-type-master",
		IDKey:           "ptmId",
		NameKey:         "ptmName",
		IsPredefinedKey: "ptmIsPredefined",
		IsActiveKey:     "ptmIsActive",
		Fields: []Field{
			{Name: "ptmName", Label: "Name", Type: FieldText, Required: true},
			{Name: "ptmDescription", Label: "Description", Type: FieldTextarea},
			{Name: "ptmIsActive", Label: "Active", Type: FieldSwitch},
		},
	},
	{
		Kind:            KindDocumentType,
		Title:           "Document Types",
		BasePath:        "/document-type-master",
		IDKey:           "dtmId",
		NameKey:         "dtmName",
		IsPredefinedKey: "dtmIsPredefined",
		IsActiveKey:     "dtmIsActive",
		Fields: []Field{
			{Name: "dtmName", Label: "Name", Type: FieldText, Required: true},
			{Name: "dtmDescription", Label: "Description", Type: FieldTextarea},
			{Name: "dtmValidityDays", Label: "Validity (days)", Type: FieldNumber},
			{Name: "dtmIsActive", Label: "Active", Type: FieldSwitch},
		},
	},
	{
		Kind:            KindExpenseCategory,
		Title:           "Expense Categories",
		BasePath:        "/expense-category-master",
		IDKey:           "ecmId",
		NameKey:         "ecmName",
		IsPredefinedKey: "ecmIsPredefined",
		IsActiveKey:     "ecmIsActive",
		Fields: []Field{
			{Name: "ecmName", Label: "Name", Type: FieldText, Required: true},
			{Name: "ecmDescription", Label: "Description", Type: FieldTextarea},
			{Name: "ecmIsActive", Label: "Active", Type: FieldSwitch},
		},
	},
	{
		Kind:            KindPaymentMode,
		Title:           "Payment Modes",
		BasePath:        "/payment-mode-master",
		IDKey:           "pmmId",
		NameKey:         "pmmName",
		IsPredefinedKey: "pmmIsPredefined",
		IsActiveKey:     "pmmIsActive",
		Fields: []Field{
			{Name: "pmmName", Label: "Name", Type: FieldText, Required: true},
			{Name: "pmmDescription", Label: "Description", Type: FieldTextarea},
			{Name: "pmmIsActive", Label: "Active", Type: FieldSwitch},
		},
	},
	{
		Kind:            KindNotificationType,
		Title:           "Notification Types",
		BasePath:        "/notification-type-master",
		IDKey:           "ntmId",
		NameKey:         "ntmName",
		IsPredefinedKey: "ntmIsPredefined",
		IsActiveKey:     "ntmIsActive",
		Fields: []Field{
			{Name: "ntmName", Label: "Name", Type: FieldText, Required: true},
			{Name: "ntmDescription", Label: "Description", Type: FieldTextarea},
			{Name: "ntmDaysBefore", Label: "Days before expiry", Type: FieldNumber},
			{Name: "ntmIsActive", Label: "Active", Type: FieldSwitch},
		},
	},
}

// All returns the schemas in display order.
func All() []Schema {
	out := make([]Schema, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the schema for a kind.
func Lookup(kind Kind) (Schema, error) {
	for _, s := range registry {
		if s.Kind == kind {
			return s, nil
		}
	}
	return Schema{}, fmt.Errorf("unknown master kind %q", kind)
}

// Validate checks required fields of a form payload before submission.
func (s Schema) Validate(values map[string]string) error {
	for _, f := range s.Fields {
		if f.Required && values[f.Name] == "" {
			return fmt.Errorf("%s is required", f.Label)
		}
	}
	return nil
}
