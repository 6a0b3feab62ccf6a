package vendors

import (
	"invoicetab/constants"
	"invoicetab/internal/cascade"
	"invoicetab/internal/record"
)

// fieldSpec binds one canonical field to its rule cascade.
type fieldSpec struct {
	field string
	lines bool // run against the line-preserving form
	rule  cascade.FieldRule
	clean func(string) string
}

// flatStrategy extracts exactly one record per document from a field table.
type flatStrategy struct {
	vendor constants.Vendor
	specs  []fieldSpec
	post   func(d Doc, r *record.Record)
}

func (s *flatStrategy) Vendor() constants.Vendor {
	return s.vendor
}

func (s *flatStrategy) Extract(d Doc) []*record.Record {
	return []*record.Record{s.extractOne(d)}
}

func (s *flatStrategy) extractOne(d Doc) *record.Record {
	r := record.New(d.Source)
	for _, fs := range s.specs {
		text := d.Flat
		if fs.lines {
			text = d.Lines
		}
		v, ok := cascade.Extract(text, fs.rule)
		if !ok {
			continue
		}
		if fs.clean != nil {
			v = fs.clean(v)
		}
		r.Set(fs.field, v)
	}
	if s.post != nil {
		s.post(d, r)
	}
	return r
}

// defaultOrderDate fills order_date from invoice_date; the layouts that
// print both always print them equal.
func defaultOrderDate(r *record.Record) {
	if r.Has(constants.FieldOrderDate) {
		return
	}
	if v, ok := r.Get(constants.FieldInvoiceDate); ok {
		r.Set(constants.FieldOrderDate, v)
	}
}
