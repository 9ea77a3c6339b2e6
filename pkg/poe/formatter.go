package poe

import (
	"strconv"
	"strings"

	"poe-show/pkg/types"
)

// NotAvailable is rendered for every missing or empty scalar value
const NotAvailable = "N/A"

const (
	statusDelivering = "delivering"
	statusSearching  = "searching"
)

// units maps unit-bearing fields to their suffix. Both the STATE_DB field
// names and the long schema names are accepted.
var units = map[string]string{
	FieldCurrent:        "A",
	FieldPowerConsump:   "W",
	FieldPowerLimit:     "W",
	FieldVoltage:        "V",
	"power-consumption": "W",
	FieldConfigPwrLimit: "W",
	FieldTotalPower:     "W",
	FieldPowerAvailable: "W",
	FieldTemperature:    "C",
}

// CoerceMissing returns NotAvailable for an absent or empty value and the
// value unchanged otherwise. Every other formatter goes through it.
func CoerceMissing(value string, present bool) string {
	if !present || value == "" {
		return NotAvailable
	}
	return value
}

// FormatAttribute renders one schema attribute of a record.
// Leaf-lists are joined with newlines and render as "" when missing;
// scalars render the raw value or NotAvailable when absent or empty.
func FormatAttribute(record types.Record, spec types.AttributeSpec) string {
	if spec.IsLeafList {
		return strings.Join(record.List(spec.Name), "\n")
	}
	return CoerceMissing(record.Get(spec.Name))
}

// FormatGroup renders the present attributes of a group as aligned
// "name: value" lines. Attributes with an absent or empty value are left out.
func FormatGroup(record types.Record, specs []types.AttributeSpec) string {
	var lines [][]string
	for _, spec := range specs {
		if !hasValue(record, spec) {
			continue
		}
		lines = append(lines, []string{spec.Name + ":", FormatAttribute(record, spec)})
	}
	if len(lines) == 0 {
		return ""
	}
	return renderPlain(lines)
}

func hasValue(record types.Record, spec types.AttributeSpec) bool {
	if spec.IsLeafList {
		return len(record.List(spec.Name)) > 0
	}
	v, ok := record.Get(spec.Name)
	return ok && v != ""
}

// FormatUnitValue coerces a missing value to NotAvailable and renders
// unit-bearing fields with three decimals and their unit suffix.
// A value that is present but not a number is malformed store data.
func FormatUnitValue(key, value string, present bool) (string, error) {
	formatted := CoerceMissing(value, present)
	unit, ok := units[key]
	if formatted == NotAvailable || !ok {
		return formatted, nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(formatted), 64)
	if err != nil {
		return "", &MalformedValueError{Field: key, Value: value, Err: err}
	}
	return strconv.FormatFloat(f, 'f', 3, 64) + " " + unit, nil
}

// StatusLabel translates the raw detection status of a port.
func StatusLabel(value string, present bool) (string, error) {
	switch CoerceMissing(value, present) {
	case "true":
		return statusDelivering, nil
	case "false":
		return statusSearching, nil
	case NotAvailable:
		return NotAvailable, nil
	default:
		return "", &UnknownStatusError{Value: value}
	}
}
