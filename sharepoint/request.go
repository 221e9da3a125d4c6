// Package sharepoint builds the request documents the surrounding
// data-access layer sends to the remote list store.
//
// Everything here is pure document assembly. Transport, retries and
// authentication stay on the caller's side of the Executor seam; no
// store client objects cross this boundary.
package sharepoint

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dkrantsberg/camlquery/internal/xmlenc"
)

// Executor is the lone blocking seam. Implementations wrap whatever HTTP
// or SOAP client the caller already has and post the request body under
// the given action.
type Executor interface {
	Do(ctx context.Context, action string, body []byte) ([]byte, error)
}

// SOAP actions of the list service.
const (
	ActionGetListItems    = "http://schemas.microsoft.com/sharepoint/soap/GetListItems"
	ActionUpdateListItems = "http://schemas.microsoft.com/sharepoint/soap/UpdateListItems"
)

// Request is one ready-to-send list-service call. ID is a fresh UUID for
// log and trace correlation; it is not part of the wire body.
type Request struct {
	ID     string
	Action string
	Body   []byte
}

// NewGetListItemsRequest assembles a GetListItems envelope from compiled
// CAML fragments: queryXML is the Where/OrderBy pair, viewFieldsXML the
// projection (either may be empty). A non-positive rowLimit omits the
// element.
func NewGetListItemsRequest(list, queryXML, viewFieldsXML string, rowLimit int) Request {
	var b strings.Builder
	openEnvelope(&b, "GetListItems")
	b.WriteString("<listName>")
	b.WriteString(xmlenc.Text(list))
	b.WriteString("</listName>")
	b.WriteString("<query><Query>")
	b.WriteString(queryXML)
	b.WriteString("</Query></query>")
	if viewFieldsXML != "" {
		b.WriteString("<viewFields>")
		b.WriteString(viewFieldsXML)
		b.WriteString("</viewFields>")
	}
	if rowLimit > 0 {
		b.WriteString("<rowLimit>")
		b.WriteString(strconv.Itoa(rowLimit))
		b.WriteString("</rowLimit>")
	}
	closeEnvelope(&b, "GetListItems")

	return Request{
		ID:     uuid.NewString(),
		Action: ActionGetListItems,
		Body:   []byte(b.String()),
	}
}

func openEnvelope(b *strings.Builder, operation string) {
	b.WriteString(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><`)
	b.WriteString(operation)
	b.WriteString(` xmlns="http://schemas.microsoft.com/sharepoint/soap/">`)
}

func closeEnvelope(b *strings.Builder, operation string) {
	b.WriteString("</")
	b.WriteString(operation)
	b.WriteString("></soap:Body></soap:Envelope>")
}
