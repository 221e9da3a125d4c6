package sharepoint

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dkrantsberg/camlquery/internal/xmlenc"
)

// Command is a batch method verb.
type Command string

const (
	CmdNew    Command = "New"
	CmdUpdate Command = "Update"
	CmdDelete Command = "Delete"
)

// FieldValue is one column assignment inside a batch method. Values are
// rendered as escaped text; callers format non-string values themselves
// (the translator's conventions apply: booleans as 1/0, dates as ISO-8601
// UTC).
type FieldValue struct {
	Name  string
	Value string
}

// UpdateBatch accumulates New/Update/Delete methods for one list and
// renders them as a single Batch document. Method IDs are sequential so
// results can be correlated positionally; the batch itself carries a
// UUID for logging.
type UpdateBatch struct {
	id      string
	list    string
	methods []method
}

type method struct {
	cmd    Command
	fields []FieldValue
}

// NewUpdateBatch starts an empty batch for the named list.
func NewUpdateBatch(list string) *UpdateBatch {
	return &UpdateBatch{id: uuid.NewString(), list: list}
}

// ID returns the batch correlation ID.
func (b *UpdateBatch) ID() string { return b.id }

// Len returns the number of accumulated methods.
func (b *UpdateBatch) Len() int { return len(b.methods) }

// Insert appends a New method creating one row.
func (b *UpdateBatch) Insert(fields ...FieldValue) *UpdateBatch {
	b.methods = append(b.methods, method{cmd: CmdNew, fields: fields})
	return b
}

// Update appends an Update method against the row with the given
// identity value.
func (b *UpdateBatch) Update(itemID string, fields ...FieldValue) *UpdateBatch {
	all := append([]FieldValue{{Name: "ID", Value: itemID}}, fields...)
	b.methods = append(b.methods, method{cmd: CmdUpdate, fields: all})
	return b
}

// Delete appends a Delete method against the row with the given identity
// value.
func (b *UpdateBatch) Delete(itemID string) *UpdateBatch {
	b.methods = append(b.methods, method{cmd: CmdDelete, fields: []FieldValue{{Name: "ID", Value: itemID}}})
	return b
}

// Render serializes the batch document. Methods keep insertion order and
// 1-based sequential IDs.
func (b *UpdateBatch) Render() string {
	var sb strings.Builder
	sb.WriteString(`<Batch OnError="Continue">`)
	for i, m := range b.methods {
		sb.WriteString(`<Method ID="`)
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(`" Cmd="`)
		sb.WriteString(string(m.cmd))
		sb.WriteString(`">`)
		for _, f := range m.fields {
			sb.WriteString(`<Field Name="`)
			sb.WriteString(xmlenc.Attr(f.Name))
			sb.WriteString(`">`)
			sb.WriteString(xmlenc.Text(f.Value))
			sb.WriteString(`</Field>`)
		}
		sb.WriteString(`</Method>`)
	}
	sb.WriteString(`</Batch>`)
	return sb.String()
}

// Request wraps the rendered batch in an UpdateListItems envelope.
func (b *UpdateBatch) Request() Request {
	var sb strings.Builder
	openEnvelope(&sb, "UpdateListItems")
	sb.WriteString("<listName>")
	sb.WriteString(xmlenc.Text(b.list))
	sb.WriteString("</listName>")
	sb.WriteString("<updates>")
	sb.WriteString(b.Render())
	sb.WriteString("</updates>")
	closeEnvelope(&sb, "UpdateListItems")

	return Request{
		ID:     b.id,
		Action: ActionUpdateListItems,
		Body:   []byte(sb.String()),
	}
}
