package gdata

import (
	"encoding/xml"
)

// XML namespaces shared by GData feeds.
const (
	NamespaceAtom       = "http://www.w3.org/2005/Atom"
	NamespaceOpenSearch = "http://a9.com/-/spec/opensearch/1.1/"
	NamespaceGData      = "http://schemas.google.com/g/2005"
	NamespaceBatch      = "http://schemas.google.com/gdata/batch"
)

// Well-known atom:link relations.
const (
	RelSelf = "self"
	RelEdit = "edit"
	RelNext = "next"
)

// Link is an atom:link element.
type Link struct {
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
	Href string `xml:"href,attr"`
}

// FindLink returns the href of the first link with the given relation, or an
// empty string.
func FindLink(links []Link, rel string) string {
	for _, l := range links {
		if l.Rel == rel {
			return l.Href
		}
	}
	return ""
}

// Category is an atom:category element. GData uses it to tag feeds and
// entries with their resource kind.
type Category struct {
	Scheme string `xml:"scheme,attr,omitempty"`
	Term   string `xml:"term,attr"`
	Label  string `xml:"label,attr,omitempty"`
}

// Batch operation types, as carried by the batch:operation element.
const (
	BatchInsert = "insert"
	BatchUpdate = "update"
	BatchDelete = "delete"
	BatchQuery  = "query"
)

// BatchID labels one entry of a batch request so that it can be matched with
// its result.
type BatchID struct {
	XMLName xml.Name `xml:"http://schemas.google.com/gdata/batch id"`
	Value   string   `xml:",chardata"`
}

// BatchOperation selects the operation the server applies to one entry of a
// batch request.
type BatchOperation struct {
	XMLName xml.Name `xml:"http://schemas.google.com/gdata/batch operation"`
	Type    string   `xml:"type,attr"`
}

// BatchStatus reports the per-entry outcome of a batch operation.
type BatchStatus struct {
	XMLName     xml.Name `xml:"http://schemas.google.com/gdata/batch status"`
	Code        int      `xml:"code,attr"`
	Reason      string   `xml:"reason,attr,omitempty"`
	ContentType string   `xml:"content-type,attr,omitempty"`
	Body        string   `xml:",chardata"`
}

// BatchInterrupted signals that the server stopped processing a batch feed
// part-way through.
type BatchInterrupted struct {
	XMLName xml.Name `xml:"http://schemas.google.com/gdata/batch interrupted"`
	Reason  string   `xml:"reason,attr,omitempty"`
	Success int      `xml:"success,attr,omitempty"`
	Failure int      `xml:"failures,attr,omitempty"`
	Parsed  int      `xml:"parsed,attr,omitempty"`
}
