package poe

import "fmt"

// InputError reports an interface argument that is not a front panel port name.
type InputError struct {
	Name   string
	Prefix string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid ifname argument %q: must start with %q", e.Name, e.Prefix)
}

// MalformedValueError reports a numeric store field that does not parse.
type MalformedValueError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value %q in field %s: %v", e.Value, e.Field, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// UnknownStatusError reports a status value outside true/false.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unrecognized PoE status %q", e.Value)
}

// MalformedKeyError reports a store key without a port component.
type MalformedKeyError struct {
	Key       string
	Separator string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed key %q: no component after separator %q", e.Key, e.Separator)
}

// RegistrationError reports a command name that is already taken in the host tree.
type RegistrationError struct {
	Name string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s already exists in CLI", e.Name)
}

// rowError ties a formatting failure to the record it came from.
type rowError struct {
	Key    string
	Column string
	Err    error
}

func (e *rowError) Error() string {
	return fmt.Sprintf("%s: column %q: %v", e.Key, e.Column, e.Err)
}

func (e *rowError) Unwrap() error {
	return e.Err
}
