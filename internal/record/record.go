// Package record defines the per-invoice field mapping produced by extraction.
package record

import "invoicetab/constants"

// Record maps canonical field names to extracted values for one logical
// invoice. Map presence is the optional: an absent key means the cascade
// exhausted its rules, which is not an error and must stay distinguishable
// from an extracted empty string. The source file name is always populated
// so every record is traceable to its origin document.
type Record struct {
	Source   string
	fields   map[string]string
	Warnings []string
}

// New creates a record for one invoice extracted from the named source file.
func New(source string) *Record {
	r := &Record{
		Source: source,
		fields: make(map[string]string, 20),
	}
	r.fields[constants.FieldSource] = source
	return r
}

// Set stores a field value. Empty values are ignored so absence stays the
// single representation of a missing field.
func (r *Record) Set(field, value string) {
	if value == "" {
		return
	}
	r.fields[field] = value
}

// Get returns a field value and whether it was extracted.
func (r *Record) Get(field string) (string, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Has reports whether a field was extracted.
func (r *Record) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Len returns the number of populated fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the field mapping.
func (r *Record) Fields() map[string]string {
	out := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// Warn attaches a data-quality warning to the record. Warnings are
// diagnostic only; they never fail extraction.
func (r *Record) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
