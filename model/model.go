// Package model holds per-model field metadata and resolves logical field
// names to the physical column names and CAML value-type tags the list
// store understands.
//
// Metadata is constructed once, validated at registration time, and is
// immutable afterwards. The query translator only ever reads it, so a
// single Metadata value may back any number of concurrent query builds.
package model

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Type is the declared semantic type of a model field.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeDate    Type = "date"
)

// CAMLType is a CAML value-type tag as it appears in a Value element's
// Type attribute.
type CAMLType string

const (
	Text     CAMLType = "Text"
	Number   CAMLType = "Number"
	Integer  CAMLType = "Integer"
	Boolean  CAMLType = "Boolean"
	DateTime CAMLType = "DateTime"
	Counter  CAMLType = "Counter"
	Guid     CAMLType = "Guid"
)

// FieldDescriptor describes one model field. All parts are optional except
// Type: ColumnName overrides the physical column name and CAMLType
// overrides the value-type tag derived from Type.
type FieldDescriptor struct {
	Type       Type
	ColumnName string
	CAMLType   CAMLType
}

// Field pairs a field name with its descriptor. Metadata construction
// takes a slice of these so the declared field order is preserved, which
// matters when an exclusion field set has to expand against the model.
type Field struct {
	Name string
	Desc FieldDescriptor
}

// Metadata is the immutable field map of one named model.
type Metadata struct {
	name   string
	order  []string
	fields map[string]FieldDescriptor

	identityColumn string
	identityType   CAMLType
}

// DefaultIdentityColumn is the auto-numeric row key column every list
// exposes unless the model says otherwise.
const DefaultIdentityColumn = "ID"

// Option configures Metadata construction.
type Option func(*Metadata)

// WithIdentityColumn sets the physical column of the model's identity
// field. Defaults to "ID".
func WithIdentityColumn(column string) Option {
	return func(m *Metadata) { m.identityColumn = column }
}

// WithIdentityType sets the CAML type of the identity column, for models
// whose key is not the store's auto-numeric counter (for example Guid).
func WithIdentityType(t CAMLType) Option {
	return func(m *Metadata) { m.identityType = t }
}

// New builds validated Metadata for the named model. Every declared type
// and every CAML type override must be known; duplicate field names are
// rejected. Validation happens here, once, so query builds never have to
// re-check descriptors.
func New(name string, fields []Field, opts ...Option) (*Metadata, error) {
	if name == "" {
		return nil, fmt.Errorf("model: name must not be empty")
	}

	m := &Metadata{
		name:           name,
		order:          make([]string, 0, len(fields)),
		fields:         make(map[string]FieldDescriptor, len(fields)),
		identityColumn: DefaultIdentityColumn,
		identityType:   Number,
	}
	for _, o := range opts {
		o(m)
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("model %s: field name must not be empty", name)
		}
		if _, dup := m.fields[f.Name]; dup {
			return nil, fmt.Errorf("model %s: duplicate field %q", name, f.Name)
		}
		if err := validateDescriptor(f.Desc); err != nil {
			return nil, fmt.Errorf("model %s: field %q: %w", name, f.Name, err)
		}
		m.order = append(m.order, f.Name)
		m.fields[f.Name] = f.Desc
	}

	if err := validateCAMLType(m.identityType); err != nil {
		return nil, fmt.Errorf("model %s: identity: %w", name, err)
	}
	return m, nil
}

func validateDescriptor(d FieldDescriptor) error {
	switch d.Type {
	case TypeString, TypeNumber, TypeBoolean, TypeDate:
	case "":
		if d.CAMLType == "" {
			return fmt.Errorf("declared type or CAML type override required")
		}
	default:
		return fmt.Errorf("unknown declared type %q", d.Type)
	}
	if d.CAMLType != "" {
		return validateCAMLType(d.CAMLType)
	}
	return nil
}

func validateCAMLType(t CAMLType) error {
	switch t {
	case Text, Number, Integer, Boolean, DateTime, Counter, Guid:
		return nil
	default:
		return fmt.Errorf("unknown CAML type %q", t)
	}
}

// Name returns the model name.
func (m *Metadata) Name() string { return m.name }

// IdentityColumn returns the physical column of the identity field.
func (m *Metadata) IdentityColumn() string { return m.identityColumn }

// FieldNames returns the declared field names in declaration order.
// The returned slice is a copy.
func (m *Metadata) FieldNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Descriptor looks up the descriptor of a declared field.
func (m *Metadata) Descriptor(field string) (FieldDescriptor, bool) {
	d, ok := m.fields[field]
	return d, ok
}

// upperFirst maps a logical field name to the store's column naming
// convention: lastName becomes LastName.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Registry maps model names to their Metadata. It is populated during
// startup (model registration) and read-only afterwards; concurrent
// mutation is not supported.
type Registry struct {
	models map[string]*Metadata
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Metadata)}
}

// Register adds a model, rejecting duplicate names.
func (r *Registry) Register(m *Metadata) error {
	if _, dup := r.models[m.Name()]; dup {
		return fmt.Errorf("model %q already registered", m.Name())
	}
	r.models[m.Name()] = m
	return nil
}

// Lookup returns the Metadata registered under name.
func (r *Registry) Lookup(name string) (*Metadata, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns all registered model names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.models))
	for name := range r.models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
