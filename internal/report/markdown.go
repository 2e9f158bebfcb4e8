// Package report renders the merged meeting document: markdown for prompt
// context, HTML as the deterministic email fallback, and docx for the
// attachment shared with attendees.
package report

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/meetingmind/meetingmind/internal/meeting"
)

// RenderMarkdown renders the document as a structured markdown recap
func RenderMarkdown(doc meeting.Document) string {
	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = "Meeting Recap"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if doc.Date != "" {
		fmt.Fprintf(&b, "**Date:** %s\n\n", doc.Date)
	}
	if len(doc.Attendees) > 0 {
		fmt.Fprintf(&b, "**Attendees:** %s\n\n", strings.Join(doc.Attendees, ", "))
	}

	if doc.Summary != "" {
		b.WriteString("## Meeting Summary\n\n")
		b.WriteString(strings.TrimSpace(doc.Summary))
		b.WriteString("\n\n")
	}

	if len(doc.KeyTakeaways) > 0 {
		b.WriteString("## Key Takeaways\n\n")
		for _, t := range doc.KeyTakeaways {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	if len(doc.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		for _, item := range doc.ActionItems {
			line := item.Description
			if item.Owner != "" {
				line += " — **" + item.Owner + "**"
				if item.OwnerEmail != "" {
					line += " (" + item.OwnerEmail + ")"
				}
			}
			if item.Deadline != "" {
				line += ", due " + item.Deadline
			}
			if item.Inferred {
				line += " _(inferred)_"
			}
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	if len(doc.Clarifications) > 0 {
		b.WriteString("## Insights and Clarifications\n\n")
		for _, c := range doc.Clarifications {
			fmt.Fprintf(&b, "- **%s** — %s\n", c.Statement, c.Explanation)
			for _, link := range c.SourceLinks {
				fmt.Fprintf(&b, "  - %s\n", link)
			}
		}
		b.WriteString("\n")
	}

	if len(doc.Glossary) > 0 {
		b.WriteString("## Glossary of Terms\n\n")
		terms := make([]string, 0, len(doc.Glossary))
		for term := range doc.Glossary {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			fmt.Fprintf(&b, "- **%s**: %s\n", term, doc.Glossary[term])
		}
		b.WriteString("\n")
	}

	if len(doc.Links) > 0 {
		b.WriteString("## Helpful Links\n\n")
		for _, link := range doc.Links {
			fmt.Fprintf(&b, "- [%s](%s)", link.Title, link.URL)
			if link.Description != "" {
				fmt.Fprintf(&b, " — %s", link.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHTML renders the document as a plain sectioned HTML email body.
// Used when the composition worker cannot produce its own rendering.
func RenderHTML(doc meeting.Document) string {
	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = "Meeting Recap"
	}

	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title))

	if doc.Date != "" {
		fmt.Fprintf(&b, "<p><b>Date:</b> %s</p>", html.EscapeString(doc.Date))
	}
	if len(doc.Attendees) > 0 {
		fmt.Fprintf(&b, "<p><b>Attendees:</b> %s</p>", html.EscapeString(strings.Join(doc.Attendees, ", ")))
	}

	if doc.Summary != "" {
		b.WriteString("<h2>Meeting Summary</h2>")
		for _, para := range strings.Split(strings.TrimSpace(doc.Summary), "\n\n") {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(para))
		}
	}

	writeList := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "<h2>%s</h2><ul>", heading)
		for _, item := range items {
			fmt.Fprintf(&b, "<li>%s</li>", item)
		}
		b.WriteString("</ul>")
	}

	takeaways := make([]string, 0, len(doc.KeyTakeaways))
	for _, t := range doc.KeyTakeaways {
		takeaways = append(takeaways, html.EscapeString(t))
	}
	writeList("Key Takeaways", takeaways)

	actions := make([]string, 0, len(doc.ActionItems))
	for _, item := range doc.ActionItems {
		line := html.EscapeString(item.Description)
		if item.Owner != "" {
			line += " — <b>" + html.EscapeString(item.Owner) + "</b>"
		}
		if item.Deadline != "" {
			line += ", due " + html.EscapeString(item.Deadline)
		}
		actions = append(actions, line)
	}
	writeList("Action Items", actions)

	clarifications := make([]string, 0, len(doc.Clarifications))
	for _, c := range doc.Clarifications {
		clarifications = append(clarifications,
			"<b>"+html.EscapeString(c.Statement)+"</b> — "+html.EscapeString(c.Explanation))
	}
	writeList("Insights and Clarifications", clarifications)

	if len(doc.Glossary) > 0 {
		terms := make([]string, 0, len(doc.Glossary))
		for term := range doc.Glossary {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		entries := make([]string, 0, len(terms))
		for _, term := range terms {
			entries = append(entries, "<b>"+html.EscapeString(term)+"</b>: "+html.EscapeString(doc.Glossary[term]))
		}
		writeList("Glossary of Terms", entries)
	}

	links := make([]string, 0, len(doc.Links))
	for _, link := range doc.Links {
		links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`,
			html.EscapeString(link.URL), html.EscapeString(link.Title)))
	}
	writeList("Helpful Links", links)

	b.WriteString("</body></html>")
	return b.String()
}
