package model

import "strings"

// ResolveColumn maps a logical field name to its physical column name.
//
// Declared fields use their ColumnName override when present, otherwise
// the upper-first naming convention. Undeclared names pass through
// verbatim so dynamic and system columns keep working; the identity field
// additionally normalizes to its configured column spelling. ResolveColumn
// never fails.
func (m *Metadata) ResolveColumn(field string) string {
	if d, ok := m.fields[field]; ok {
		if d.ColumnName != "" {
			return d.ColumnName
		}
		return upperFirst(field)
	}
	if m.isIdentity(field) {
		return m.identityColumn
	}
	return field
}

// ResolveType maps a logical field name to the CAML value-type tag its
// comparison values must carry.
//
// The declared descriptor wins: an explicit CAMLType override first, then
// the fixed semantic-type table. The identity field resolves to the
// model's configured identity type (Number unless overridden). Any other
// undeclared field fails with an error tagged ErrUnknownField.
func (m *Metadata) ResolveType(field string) (CAMLType, error) {
	if d, ok := m.fields[field]; ok {
		if d.CAMLType != "" {
			return d.CAMLType, nil
		}
		return semanticType(d.Type), nil
	}
	if m.isIdentity(field) {
		return m.identityType, nil
	}
	return "", newUnknownFieldError(m.name, field)
}

// isIdentity matches the identity column case-insensitively so that both
// the logical "id" and the physical "ID" spelling resolve.
func (m *Metadata) isIdentity(field string) bool {
	return strings.EqualFold(field, m.identityColumn)
}

func semanticType(t Type) CAMLType {
	switch t {
	case TypeString:
		return Text
	case TypeNumber:
		return Number
	case TypeBoolean:
		return Boolean
	case TypeDate:
		return DateTime
	default:
		// Unreachable for validated Metadata. Text is the safe fallback.
		return Text
	}
}
