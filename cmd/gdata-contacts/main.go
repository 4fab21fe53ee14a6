package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"golang.org/x/term"

	"github.com/jamuseum/go-gdata"
	"github.com/jamuseum/go-gdata/contacts"
)

func main() {
	var (
		server string
		list   string
		token  string
		query  string
		group  string
		export string
	)
	flag.StringVar(&server, "server", gdata.DefaultServer, "GData server hostname")
	flag.StringVar(&list, "list", contacts.DefaultContactList, "contact list identifier")
	flag.StringVar(&token, "token", "", "authorization token (prompted for when empty)")
	flag.StringVar(&query, "q", "", "free-text query")
	flag.StringVar(&group, "group", "", "restrict results to a group ID")
	flag.StringVar(&export, "export", "", "export format: vcf or ics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if token == "" {
		fmt.Fprint(os.Stderr, "Token: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		token = string(b)
	}

	c, err := contacts.NewClient(nil, server, list)
	if err != nil {
		log.Fatal(err)
	}
	c.SetAuthToken(token)

	feed, err := c.QueryContacts(&contacts.ContactsQuery{Text: query, Group: group})
	if err != nil {
		log.Fatal(err)
	}

	switch export {
	case "":
		for i := range feed.Entries {
			e := &feed.Entries[i]
			line := e.Title
			if len(e.Emails) > 0 {
				line += " <" + e.Emails[0].Address + ">"
			}
			fmt.Println(line)
		}
	case "vcf":
		enc := vcard.NewEncoder(os.Stdout)
		for i := range feed.Entries {
			if err := enc.Encode(contacts.Card(&feed.Entries[i])); err != nil {
				log.Fatal(err)
			}
		}
	case "ics":
		cal, err := contacts.BirthdayCalendar(feed)
		if err != nil {
			log.Fatal(err)
		}
		if err := ical.NewEncoder(os.Stdout).Encode(cal); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown export format %q", export)
	}
}
