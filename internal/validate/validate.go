package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"invoicetab/constants"
	"invoicetab/internal/record"
)

// BuildRecordSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map describing the shape of a well-formed invoice record. Fields are all
// optional; the schema only constrains the shape of values that are present.
func BuildRecordSchema() map[string]any {
	props := map[string]any{
		constants.FieldInvoiceDate:       dateProp(),
		constants.FieldOrderDate:         dateProp(),
		constants.FieldTotalTax:          decimalProp(),
		constants.FieldTotalAmount:       decimalProp(),
		constants.FieldSellerGST:         map[string]any{"type": "string", "pattern": `^[0-9]{2}[A-Z0-9]{13}$`},
		constants.FieldSellerPAN:         map[string]any{"type": "string", "pattern": `^[A-Z]{5}[0-9]{4}[A-Z]$`},
		constants.FieldFSSAILicense:      map[string]any{"type": "string", "pattern": `^[0-9]{14}$`},
		constants.FieldBillingStateCode:  stateCodeProp(),
		constants.FieldShippingStateCode: stateCodeProp(),
		constants.FieldInvoiceNumber:     map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

func dateProp() map[string]any {
	// Layouts differ per vendor (dd-mm-yyyy, yyyy-mm-dd, dotted); only the
	// digits-and-separators shape is checked here.
	return map[string]any{
		"type":    "string",
		"pattern": `^[0-9]{1,4}[./-][0-9]{1,2}[./-][0-9]{2,4}$`,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?[0-9]+(\.[0-9]{1,2})?$`,
	}
}

func stateCodeProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^[0-9]{1,2}$`,
	}
}

// Checker validates extracted records against the compiled record schema.
// Violations are diagnostics for manual review, never processing failures.
type Checker struct {
	schema *jsonschema.Schema
}

func NewChecker() (*Checker, error) {
	b, err := json.Marshal(BuildRecordSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Checker{schema: schema}, nil
}

// Check returns one human-readable violation per malformed field, empty when
// the record is clean.
func (c *Checker) Check(r *record.Record) []string {
	doc := make(map[string]any, r.Len())
	for k, v := range r.Fields() {
		doc[k] = v
	}
	err := c.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	flatten(ve, &out)
	return out
}

func flatten(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = "record"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", field, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		flatten(cause, out)
	}
}
