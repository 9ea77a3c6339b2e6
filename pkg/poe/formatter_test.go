package poe

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poe-show/pkg/types"
)

func TestCoerceMissing(t *testing.T) {
	tests := []struct {
		value   string
		present bool
		want    string
	}{
		{"", false, NotAvailable},
		{"", true, NotAvailable},
		{"enable", true, "enable"},
		{" ", true, " "},
	}
	for _, tt := range tests {
		if got := CoerceMissing(tt.value, tt.present); got != tt.want {
			t.Errorf("CoerceMissing(%q, %v) = %q, want %q", tt.value, tt.present, got, tt.want)
		}
	}
}

func TestFormatAttribute(t *testing.T) {
	scalar := types.AttributeSpec{Name: "priority"}
	list := types.AttributeSpec{Name: "vlans", IsLeafList: true}

	tests := []struct {
		name   string
		record types.Record
		spec   types.AttributeSpec
		want   string
	}{
		{"scalar present", types.Record{"priority": "high"}, scalar, "high"},
		{"scalar absent", types.Record{}, scalar, NotAvailable},
		{"scalar empty", types.Record{"priority": ""}, scalar, NotAvailable},
		{"leaf-list absent", types.Record{}, list, ""},
		{"leaf-list empty", types.Record{"vlans@": ""}, list, ""},
		{"leaf-list keeps order", types.Record{"vlans@": "30,10,20"}, list, "30\n10\n20"},
		{"leaf-list single value", types.Record{"vlans": "10"}, list, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAttribute(tt.record, tt.spec))
		})
	}
}

func TestFormatUnitValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		present bool
		want    string
	}{
		{FieldCurrent, "0.5", true, "0.500 A"},
		{FieldCurrent, "0.2346", true, "0.235 A"},
		{FieldVoltage, "53.1", true, "53.100 V"},
		{FieldPowerConsump, "12", true, "12.000 W"},
		{FieldPowerLimit, "30", true, "30.000 W"},
		{"power-consumption", "7.25", true, "7.250 W"},
		{FieldConfigPwrLimit, "50", true, "50.000 W"},
		{FieldTemperature, "41.5", true, "41.500 C"},
		{FieldCurrent, "", true, NotAvailable},
		{FieldVoltage, "", false, NotAvailable},
		{FieldClass, "4", true, "4"},
		{FieldClass, "", false, NotAvailable},
	}
	for _, tt := range tests {
		got, err := FormatUnitValue(tt.key, tt.value, tt.present)
		if err != nil {
			t.Errorf("FormatUnitValue(%q, %q) returned error: %v", tt.key, tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatUnitValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestFormatUnitValueMalformed(t *testing.T) {
	_, err := FormatUnitValue(FieldVoltage, "fifty", true)
	require.Error(t, err)

	var malformed *MalformedValueError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, FieldVoltage, malformed.Field)
	assert.Equal(t, "fifty", malformed.Value)
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		value   string
		present bool
		want    string
	}{
		{"true", true, "delivering"},
		{"false", true, "searching"},
		{"", false, NotAvailable},
		{"", true, NotAvailable},
	}
	for _, tt := range tests {
		got, err := StatusLabel(tt.value, tt.present)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"TRUE", "on", "1"} {
		_, err := StatusLabel(bad, true)
		var unknown *UnknownStatusError
		if assert.True(t, errors.As(err, &unknown), "status %q", bad) {
			assert.Equal(t, bad, unknown.Value)
		}
	}
}

func TestFormatGroup(t *testing.T) {
	specs := []types.AttributeSpec{
		{Name: "enabled", Group: "settings"},
		{Name: "power-limit", Group: "settings"},
		{Name: "priority", Group: "settings"},
	}

	out := FormatGroup(types.Record{"enabled": "enable", "power-limit": "", "priority": "high"}, specs)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"enabled:", "enable"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"priority:", "high"}, strings.Fields(lines[1]))
	assert.Equal(t, strings.LastIndex(lines[0], "enable"), strings.Index(lines[1], "high"), "values are aligned")

	assert.Equal(t, "", FormatGroup(types.Record{"other": "x"}, specs))
}
