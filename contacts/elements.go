package contacts

import (
	"encoding/xml"

	"github.com/jamuseum/go-gdata"
)

const namespace = "http://schemas.google.com/contact/2008"

// Resource kind terms, carried as atom:category on feeds and entries.
const (
	kindScheme  = "http://schemas.google.com/g/2005#kind"
	contactKind = "http://schemas.google.com/contact/2008#contact"
	groupKind   = "http://schemas.google.com/contact/2008#group"
	profileKind = "http://schemas.google.com/profile/2008#profile"
)

// Photo link relations on contact entries.
const (
	relPhoto     = "http://schemas.google.com/contacts/2008/rel#photo"
	relEditPhoto = "http://schemas.google.com/contacts/2008/rel#edit-photo"
)

// Standard gd rel values for emails, phone numbers and addresses.
const (
	RelHome  = "http://schemas.google.com/g/2005#home"
	RelWork  = "http://schemas.google.com/g/2005#work"
	RelOther = "http://schemas.google.com/g/2005#other"
)

// Name is a gd:name element holding a structured name.
type Name struct {
	FullName   string `xml:"fullName,omitempty"`
	GivenName  string `xml:"givenName,omitempty"`
	FamilyName string `xml:"familyName,omitempty"`
}

// Email is a gd:email element.
type Email struct {
	Rel     string `xml:"rel,attr,omitempty"`
	Label   string `xml:"label,attr,omitempty"`
	Address string `xml:"address,attr"`
	Primary bool   `xml:"primary,attr,omitempty"`
}

// PhoneNumber is a gd:phoneNumber element. The number itself is the element
// text.
type PhoneNumber struct {
	Rel     string `xml:"rel,attr,omitempty"`
	Label   string `xml:"label,attr,omitempty"`
	URI     string `xml:"uri,attr,omitempty"`
	Primary bool   `xml:"primary,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// PostalAddress is a gd:structuredPostalAddress element, reduced to its
// formatted representation.
type PostalAddress struct {
	Rel              string `xml:"rel,attr,omitempty"`
	Label            string `xml:"label,attr,omitempty"`
	Primary          bool   `xml:"primary,attr,omitempty"`
	FormattedAddress string `xml:"formattedAddress,omitempty"`
}

// Organization is a gd:organization element.
type Organization struct {
	Rel   string `xml:"rel,attr,omitempty"`
	Name  string `xml:"orgName,omitempty"`
	Title string `xml:"orgTitle,omitempty"`
}

// Birthday is a gContact:birthday element. When holds a full date
// (2006-01-02) or a year-less date (--01-02).
type Birthday struct {
	When string `xml:"when,attr"`
}

// GroupMembershipInfo is a gContact:groupMembershipInfo element linking a
// contact to a group entry.
type GroupMembershipInfo struct {
	Href    string `xml:"href,attr"`
	Deleted bool   `xml:"deleted,attr,omitempty"`
}

// ExtendedProperty is a gd:extendedProperty element carrying opaque
// application data.
type ExtendedProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr,omitempty"`
}

// SystemGroup marks a group entry as one of the predefined system groups
// (Contacts, Friends, Family, Coworkers).
type SystemGroup struct {
	ID string `xml:"id,attr"`
}

// A ContactEntry is a single contact resource.
type ContactEntry struct {
	XMLName    xml.Name         `xml:"http://www.w3.org/2005/Atom entry"`
	ETag       string           `xml:"http://schemas.google.com/g/2005 etag,attr,omitempty"`
	// ID must be namespace-qualified, otherwise batch:id decodes into it.
	ID         string           `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated    string           `xml:"updated,omitempty"`
	Categories []gdata.Category `xml:"category"`
	Title      string           `xml:"title,omitempty"`
	Content    string           `xml:"content,omitempty"`
	Links      []gdata.Link     `xml:"link"`

	Name               *Name                 `xml:"http://schemas.google.com/g/2005 name"`
	Emails             []Email               `xml:"http://schemas.google.com/g/2005 email"`
	PhoneNumbers       []PhoneNumber         `xml:"http://schemas.google.com/g/2005 phoneNumber"`
	PostalAddresses    []PostalAddress       `xml:"http://schemas.google.com/g/2005 structuredPostalAddress"`
	Organizations      []Organization        `xml:"http://schemas.google.com/g/2005 organization"`
	ExtendedProperties []ExtendedProperty    `xml:"http://schemas.google.com/g/2005 extendedProperty"`
	Deleted            *struct{}             `xml:"http://schemas.google.com/g/2005 deleted"`
	Birthday           *Birthday             `xml:"http://schemas.google.com/contact/2008 birthday"`
	Nickname           string                `xml:"http://schemas.google.com/contact/2008 nickname,omitempty"`
	GroupMemberships   []GroupMembershipInfo `xml:"http://schemas.google.com/contact/2008 groupMembershipInfo"`

	BatchID          *gdata.BatchID          `xml:"http://schemas.google.com/gdata/batch id"`
	BatchOperation   *gdata.BatchOperation   `xml:"http://schemas.google.com/gdata/batch operation"`
	BatchStatus      *gdata.BatchStatus      `xml:"http://schemas.google.com/gdata/batch status"`
	BatchInterrupted *gdata.BatchInterrupted `xml:"http://schemas.google.com/gdata/batch interrupted"`
}

// NewContact creates a contact entry tagged with the contact kind.
func NewContact() *ContactEntry {
	return &ContactEntry{
		Categories: []gdata.Category{{Scheme: kindScheme, Term: contactKind}},
	}
}

func (e *ContactEntry) SelfLink() string { return gdata.FindLink(e.Links, gdata.RelSelf) }
func (e *ContactEntry) EditLink() string { return gdata.FindLink(e.Links, gdata.RelEdit) }

// PhotoLink returns the URI of the contact's photo, or an empty string if
// the entry carries no photo link.
func (e *ContactEntry) PhotoLink() string { return gdata.FindLink(e.Links, relPhoto) }

// PhotoEditLink returns the URI photo mutations must be sent to, or an empty
// string if the entry carries no photo edit link.
func (e *ContactEntry) PhotoEditLink() string { return gdata.FindLink(e.Links, relEditPhoto) }

func (e *ContactEntry) photoLink() string     { return e.PhotoLink() }
func (e *ContactEntry) photoEditLink() string { return e.PhotoEditLink() }

// A GroupEntry is a single contact-group resource.
type GroupEntry struct {
	XMLName    xml.Name         `xml:"http://www.w3.org/2005/Atom entry"`
	ETag       string           `xml:"http://schemas.google.com/g/2005 etag,attr,omitempty"`
	ID         string           `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated    string           `xml:"updated,omitempty"`
	Categories []gdata.Category `xml:"category"`
	Title      string           `xml:"title,omitempty"`
	Content    string           `xml:"content,omitempty"`
	Links      []gdata.Link     `xml:"link"`

	ExtendedProperties []ExtendedProperty `xml:"http://schemas.google.com/g/2005 extendedProperty"`
	Deleted            *struct{}          `xml:"http://schemas.google.com/g/2005 deleted"`
	SystemGroup        *SystemGroup       `xml:"http://schemas.google.com/contact/2008 systemGroup"`

	BatchID          *gdata.BatchID          `xml:"http://schemas.google.com/gdata/batch id"`
	BatchOperation   *gdata.BatchOperation   `xml:"http://schemas.google.com/gdata/batch operation"`
	BatchStatus      *gdata.BatchStatus      `xml:"http://schemas.google.com/gdata/batch status"`
	BatchInterrupted *gdata.BatchInterrupted `xml:"http://schemas.google.com/gdata/batch interrupted"`
}

// NewGroup creates a group entry with the given title, tagged with the group
// kind.
func NewGroup(title string) *GroupEntry {
	return &GroupEntry{
		Categories: []gdata.Category{{Scheme: kindScheme, Term: groupKind}},
		Title:      title,
	}
}

func (e *GroupEntry) SelfLink() string { return gdata.FindLink(e.Links, gdata.RelSelf) }
func (e *GroupEntry) EditLink() string { return gdata.FindLink(e.Links, gdata.RelEdit) }

// A ProfileEntry is a single domain-profile resource. Profiles share the
// structured fields of contacts.
type ProfileEntry struct {
	XMLName    xml.Name         `xml:"http://www.w3.org/2005/Atom entry"`
	ETag       string           `xml:"http://schemas.google.com/g/2005 etag,attr,omitempty"`
	ID         string           `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated    string           `xml:"updated,omitempty"`
	Categories []gdata.Category `xml:"category"`
	Title      string           `xml:"title,omitempty"`
	Links      []gdata.Link     `xml:"link"`

	Name          *Name          `xml:"http://schemas.google.com/g/2005 name"`
	Emails        []Email        `xml:"http://schemas.google.com/g/2005 email"`
	PhoneNumbers  []PhoneNumber  `xml:"http://schemas.google.com/g/2005 phoneNumber"`
	Organizations []Organization `xml:"http://schemas.google.com/g/2005 organization"`

	BatchID          *gdata.BatchID          `xml:"http://schemas.google.com/gdata/batch id"`
	BatchOperation   *gdata.BatchOperation   `xml:"http://schemas.google.com/gdata/batch operation"`
	BatchStatus      *gdata.BatchStatus      `xml:"http://schemas.google.com/gdata/batch status"`
	BatchInterrupted *gdata.BatchInterrupted `xml:"http://schemas.google.com/gdata/batch interrupted"`
}

func (e *ProfileEntry) SelfLink() string { return gdata.FindLink(e.Links, gdata.RelSelf) }
func (e *ProfileEntry) EditLink() string { return gdata.FindLink(e.Links, gdata.RelEdit) }

// A ContactsFeed is an ordered collection of contact entries plus paging
// metadata.
type ContactsFeed struct {
	XMLName      xml.Name       `xml:"http://www.w3.org/2005/Atom feed"`
	ID           string         `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated      string         `xml:"updated,omitempty"`
	Title        string         `xml:"title,omitempty"`
	Links        []gdata.Link   `xml:"link"`
	TotalResults int            `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults,omitempty"`
	StartIndex   int            `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex,omitempty"`
	ItemsPerPage int            `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage,omitempty"`
	Entries      []ContactEntry `xml:"entry"`
}

// NextLink returns the URI of the next page of the feed, or an empty string
// on the last page.
func (f *ContactsFeed) NextLink() string { return gdata.FindLink(f.Links, gdata.RelNext) }

// A GroupsFeed is an ordered collection of group entries plus paging
// metadata.
type GroupsFeed struct {
	XMLName      xml.Name     `xml:"http://www.w3.org/2005/Atom feed"`
	ID           string       `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated      string       `xml:"updated,omitempty"`
	Title        string       `xml:"title,omitempty"`
	Links        []gdata.Link `xml:"link"`
	TotalResults int          `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults,omitempty"`
	StartIndex   int          `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex,omitempty"`
	ItemsPerPage int          `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage,omitempty"`
	Entries      []GroupEntry `xml:"entry"`
}

func (f *GroupsFeed) NextLink() string { return gdata.FindLink(f.Links, gdata.RelNext) }

// A ProfilesFeed is an ordered collection of profile entries plus paging
// metadata.
type ProfilesFeed struct {
	XMLName      xml.Name       `xml:"http://www.w3.org/2005/Atom feed"`
	ID           string         `xml:"http://www.w3.org/2005/Atom id,omitempty"`
	Updated      string         `xml:"updated,omitempty"`
	Title        string         `xml:"title,omitempty"`
	Links        []gdata.Link   `xml:"link"`
	TotalResults int            `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults,omitempty"`
	StartIndex   int            `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex,omitempty"`
	ItemsPerPage int            `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage,omitempty"`
	Entries      []ProfileEntry `xml:"entry"`
}

func (f *ProfilesFeed) NextLink() string { return gdata.FindLink(f.Links, gdata.RelNext) }
