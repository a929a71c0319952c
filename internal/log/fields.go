package log

import "sort"

// Common field names for structured logging
const (
	FieldComponent      = "component"
	FieldOperation      = "operation"
	FieldError          = "error"
	FieldCurrency       = "currency"
	FieldTargetCurrency = "target_currency"
	FieldAmount         = "amount"
	FieldFirstName      = "first_name"
	FieldAge            = "age"
	FieldMinAge         = "min_age"
)

// Components
const (
	ComponentApp    = "app"
	ComponentMoney  = "money"
	ComponentPerson = "person"
	ComponentFamily = "family"
)

// Operations
const (
	OpConvert   = "convert"
	OpSetJob    = "set_job"
	OpSetSpouse = "set_spouse"
	OpHaveChild = "have_child"
)

// Fields provides a builder for structured log attributes.
type Fields map[string]any

func NewFields() Fields {
	return make(Fields)
}

func (f Fields) WithOperation(op string) Fields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error message, skipping nil errors.
func (f Fields) WithError(err error) Fields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithMoney adds the amount and currency of a money value.
func (f Fields) WithMoney(amount int64, currency string) Fields {
	f[FieldAmount] = amount
	f[FieldCurrency] = currency
	return f
}

func (f Fields) WithTargetCurrency(currency string) Fields {
	f[FieldTargetCurrency] = currency
	return f
}

// WithPerson adds identifying fields for a person.
func (f Fields) WithPerson(firstName string, age int) Fields {
	f[FieldFirstName] = firstName
	f[FieldAge] = age
	return f
}

func (f Fields) WithMinAge(age int) Fields {
	f[FieldMinAge] = age
	return f
}

// ToSlice converts Fields to alternating key/value args for slog, sorted by key
// so output is stable.
func (f Fields) ToSlice() []any {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	slice := make([]any, 0, len(f)*2)
	for _, k := range keys {
		slice = append(slice, k, f[k])
	}
	return slice
}
