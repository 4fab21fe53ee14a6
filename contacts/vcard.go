package contacts

import (
	"strings"

	"github.com/emersion/go-vcard"
)

// Card converts a contact entry into a vCard 4.0 card, the usual interchange
// format for contact data outside GData.
func Card(e *ContactEntry) vcard.Card {
	card := make(vcard.Card)

	if fn := displayName(e); fn != "" {
		card.SetValue(vcard.FieldFormattedName, fn)
	}
	if e.Name != nil && (e.Name.FamilyName != "" || e.Name.GivenName != "") {
		// Family;Given;Additional;Prefixes;Suffixes
		card.SetValue(vcard.FieldName, e.Name.FamilyName+";"+e.Name.GivenName+";;;")
	}
	if e.Nickname != "" {
		card.SetValue(vcard.FieldNickname, e.Nickname)
	}
	if e.Content != "" {
		card.SetValue(vcard.FieldNote, e.Content)
	}

	for _, email := range e.Emails {
		card.Add(vcard.FieldEmail, typedField(email.Address, email.Rel, email.Label))
	}
	for _, phone := range e.PhoneNumbers {
		card.Add(vcard.FieldTelephone, typedField(phone.Value, phone.Rel, phone.Label))
	}
	for _, addr := range e.PostalAddresses {
		if addr.FormattedAddress == "" {
			continue
		}
		card.Add(vcard.FieldAddress, typedField(";;"+addr.FormattedAddress+";;;;", addr.Rel, addr.Label))
	}
	for _, org := range e.Organizations {
		card.SetValue(vcard.FieldOrganization, org.Name)
		if org.Title != "" {
			card.SetValue(vcard.FieldTitle, org.Title)
		}
		break
	}
	if e.Birthday != nil && e.Birthday.When != "" {
		card.SetValue(vcard.FieldBirthday, birthdayValue(e.Birthday.When))
	}

	vcard.ToV4(card)
	return card
}

// EntryFromCard builds a contact entry from a vCard.
func EntryFromCard(card vcard.Card) *ContactEntry {
	e := NewContact()

	if fn := card.Value(vcard.FieldFormattedName); fn != "" {
		e.Title = fn
		e.Name = &Name{FullName: fn}
	}
	if n := card.Value(vcard.FieldName); n != "" {
		parts := strings.Split(n, ";")
		if e.Name == nil {
			e.Name = &Name{}
		}
		e.Name.FamilyName = parts[0]
		if len(parts) > 1 {
			e.Name.GivenName = parts[1]
		}
	}
	if nick := card.Value(vcard.FieldNickname); nick != "" {
		e.Nickname = nick
	}
	if note := card.Value(vcard.FieldNote); note != "" {
		e.Content = note
	}

	for _, f := range card[vcard.FieldEmail] {
		e.Emails = append(e.Emails, Email{Rel: fieldRel(f), Address: f.Value})
	}
	for _, f := range card[vcard.FieldTelephone] {
		e.PhoneNumbers = append(e.PhoneNumbers, PhoneNumber{Rel: fieldRel(f), Value: f.Value})
	}
	if org := card.Value(vcard.FieldOrganization); org != "" {
		e.Organizations = append(e.Organizations, Organization{
			Rel:   RelWork,
			Name:  strings.TrimSuffix(org, ";"),
			Title: card.Value(vcard.FieldTitle),
		})
	}
	if bday := card.Value(vcard.FieldBirthday); bday != "" {
		e.Birthday = &Birthday{When: birthdayWhen(bday)}
	}

	return e
}

func displayName(e *ContactEntry) string {
	if e.Name != nil && e.Name.FullName != "" {
		return e.Name.FullName
	}
	return e.Title
}

func typedField(value, rel, label string) *vcard.Field {
	f := &vcard.Field{Value: value}
	t := label
	if t == "" {
		if i := strings.LastIndex(rel, "#"); i >= 0 {
			t = rel[i+1:]
		}
	}
	if t != "" {
		f.Params = vcard.Params{vcard.ParamType: []string{t}}
	}
	return f
}

func fieldRel(f *vcard.Field) string {
	var t string
	if f.Params != nil {
		t = strings.ToLower(f.Params.Get(vcard.ParamType))
	}
	switch t {
	case "home":
		return RelHome
	case "work":
		return RelWork
	default:
		return RelOther
	}
}

// birthdayValue maps a gContact birthday (2006-01-02 or --01-02) to a vCard
// BDAY value (20060102 or --0102).
func birthdayValue(when string) string {
	if rest, ok := strings.CutPrefix(when, "--"); ok {
		return "--" + strings.ReplaceAll(rest, "-", "")
	}
	return strings.ReplaceAll(when, "-", "")
}

// birthdayWhen is the inverse of birthdayValue.
func birthdayWhen(bday string) string {
	if rest, ok := strings.CutPrefix(bday, "--"); ok && len(rest) == 4 {
		return "--" + rest[:2] + "-" + rest[2:]
	}
	if len(bday) == 8 {
		return bday[:4] + "-" + bday[4:6] + "-" + bday[6:]
	}
	return bday
}
