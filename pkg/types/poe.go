package types

import "strings"

// Record is one store entry: field name to raw string value.
// A field that is missing from the map is absent.
type Record map[string]string

// Get returns the raw value of a scalar field and whether it is present
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// List returns the values of a leaf-list field in source order.
// CONFIG_DB stores leaf-lists under "<name>@" as a comma-separated string;
// a bare "<name>" field is read as a single-element list.
func (r Record) List(name string) []string {
	if raw, ok := r[name+"@"]; ok {
		if raw == "" {
			return nil
		}
		return strings.Split(raw, ",")
	}
	if raw, ok := r[name]; ok && raw != "" {
		return []string{raw}
	}
	return nil
}

// AttributeSpec describes one schema field of a store table
type AttributeSpec struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	IsLeafList  bool   `json:"is_leaf_list" yaml:"is_leaf_list"`
	IsMandatory bool   `json:"is_mandatory" yaml:"is_mandatory"`
	Group       string `json:"group,omitempty" yaml:"group,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// FormattedRow is a table row: the record key followed by one display string per column
type FormattedRow struct {
	Key   string   `json:"key"`
	Cells []string `json:"cells"`
}

// Values returns the key and cells as a single slice
func (r FormattedRow) Values() []string {
	out := make([]string, 0, len(r.Cells)+1)
	out = append(out, r.Key)
	return append(out, r.Cells...)
}
