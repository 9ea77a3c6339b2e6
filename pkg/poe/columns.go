package poe

import "poe-show/pkg/types"

// DefaultPortPrefix is the name prefix of front panel ports
const DefaultPortPrefix = "Ethernet"

// Store tables
const (
	TablePortConfig  = "POE_PORT"
	TablePortState   = "POE_PORT_STATE"
	TableSystemState = "POE_SYSTEM_STATE"
	TablePSEState    = "POE_PSE_STATE"

	systemStateKey = "GLOBAL"
)

// Field names
const (
	FieldEnabled  = "enabled"
	FieldPriority = "priority"
	FieldProtocol = "protocol"
	FieldClass    = "class"
	FieldStatus   = "status"

	FieldConfigPwrLimit = "power-limit"
	FieldPowerConsump   = "pwr_consump"
	FieldPowerLimit     = "pwr_limit"
	FieldVoltage        = "voltage"
	FieldCurrent        = "current"

	FieldTotalPorts        = "total_ports"
	FieldTotalPower        = "total_pwr"
	FieldPowerAvailable    = "pwr_avail"
	FieldPlatformSupported = "platform_supported"

	FieldTemperature = "temperature"
	FieldSWVersion   = "sw_ver"
	FieldHWVersion   = "hw_ver"
)

// Headers
const (
	HeaderPort       = "Port"
	HeaderStatus     = "Status"
	HeaderEnDis      = "En/Dis"
	HeaderPriority   = "Priority"
	HeaderProtocol   = "Protocol"
	HeaderClass      = "Class"
	HeaderPwrConsump = "PWR Consump"
	HeaderPwrLimit   = "PWR Limit"
	HeaderVoltage    = "Voltage"
	HeaderCurrent    = "Current"

	HeaderTotalPorts        = "Total PoE Ports"
	HeaderTotalPower        = "Total Power"
	HeaderTotalConsumption  = "Power Consumption"
	HeaderPowerAvailable    = "Power Available"
	HeaderPlatformSupported = "Platform supported"

	HeaderPSE       = "PSE"
	HeaderPSEStatus = "PSE status"
	HeaderPSETemp   = "PSE temperature"
	HeaderPSESWVer  = "PSE SW ver"
	HeaderPSEHWVer  = "PSE HW ver"
)

// PortConfigSchema describes the POE_PORT table in CONFIG_DB.
var PortConfigSchema = []types.AttributeSpec{
	{
		Name:        FieldEnabled,
		Label:       HeaderEnDis,
		Description: "PoE status on port. [enable/disable]",
	},
	{
		Name:        FieldConfigPwrLimit,
		Label:       HeaderPwrLimit,
		IsMandatory: true,
		Description: "Power limit on PoE port. [0..999]",
	},
	{
		Name:        FieldPriority,
		Label:       HeaderPriority,
		Description: "Port priority level. [crit/high/low]",
	},
}

// Column is a header label and the function producing its cell from a record.
type Column struct {
	Header string
	Value  func(types.Record) (string, error)
}

// AttributeColumn renders a schema attribute with FormatAttribute.
func AttributeColumn(spec types.AttributeSpec) Column {
	return Column{
		Header: spec.Label,
		Value: func(r types.Record) (string, error) {
			return FormatAttribute(r, spec), nil
		},
	}
}

// GroupColumn renders grouped attributes as one cell with FormatGroup.
func GroupColumn(header string, specs []types.AttributeSpec) Column {
	return Column{
		Header: header,
		Value: func(r types.Record) (string, error) {
			return FormatGroup(r, specs), nil
		},
	}
}

// ValueColumn renders a scalar field with the missing-value policy.
func ValueColumn(header, field string) Column {
	return Column{
		Header: header,
		Value: func(r types.Record) (string, error) {
			v, ok := r.Get(field)
			return CoerceMissing(v, ok), nil
		},
	}
}

// UnitColumn renders a numeric field with its unit suffix.
func UnitColumn(header, field string) Column {
	return Column{
		Header: header,
		Value: func(r types.Record) (string, error) {
			v, ok := r.Get(field)
			return FormatUnitValue(field, v, ok)
		},
	}
}

// StatusColumn renders the detection status enum of a port.
func StatusColumn(header, field string) Column {
	return Column{
		Header: header,
		Value: func(r types.Record) (string, error) {
			v, ok := r.Get(field)
			return StatusLabel(v, ok)
		},
	}
}

// ColumnsFromSchema builds one column per ungrouped attribute and one
// column per group, in order of first appearance. A group column is
// headed by the group name.
func ColumnsFromSchema(specs []types.AttributeSpec) []Column {
	var columns []Column
	emitted := make(map[string]bool)
	for _, spec := range specs {
		if spec.Group == "" {
			columns = append(columns, AttributeColumn(spec))
			continue
		}
		if emitted[spec.Group] {
			continue
		}
		emitted[spec.Group] = true

		var members []types.AttributeSpec
		for _, s := range specs {
			if s.Group == spec.Group {
				members = append(members, s)
			}
		}
		columns = append(columns, GroupColumn(spec.Group, members))
	}
	return columns
}

// ConfigurationColumns are the columns of the CONFIG_DB port report.
func ConfigurationColumns() []Column {
	return ColumnsFromSchema(PortConfigSchema)
}

// StateColumns are the columns of the STATE_DB port report.
func StateColumns() []Column {
	return []Column{
		StatusColumn(HeaderStatus, FieldStatus),
		ValueColumn(HeaderEnDis, FieldEnabled),
		ValueColumn(HeaderPriority, FieldPriority),
		ValueColumn(HeaderProtocol, FieldProtocol),
		ValueColumn(HeaderClass, FieldClass),
		UnitColumn(HeaderPwrConsump, FieldPowerConsump),
		UnitColumn(HeaderPwrLimit, FieldPowerLimit),
		UnitColumn(HeaderVoltage, FieldVoltage),
		UnitColumn(HeaderCurrent, FieldCurrent),
	}
}

// SystemColumns are the columns of the PoE system summary.
func SystemColumns() []Column {
	return []Column{
		ValueColumn(HeaderTotalPorts, FieldTotalPorts),
		UnitColumn(HeaderTotalPower, FieldTotalPower),
		UnitColumn(HeaderTotalConsumption, FieldPowerConsump),
		UnitColumn(HeaderPowerAvailable, FieldPowerAvailable),
		ValueColumn(HeaderPlatformSupported, FieldPlatformSupported),
	}
}

// PSEColumns are the columns of the PSE report.
func PSEColumns() []Column {
	return []Column{
		ValueColumn(HeaderPSEStatus, FieldStatus),
		UnitColumn(HeaderPSETemp, FieldTemperature),
		ValueColumn(HeaderPSESWVer, FieldSWVersion),
		ValueColumn(HeaderPSEHWVer, FieldHWVersion),
	}
}
