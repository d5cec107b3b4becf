package domain

import (
	"strings"
	"time"
)

const (
	bugfixHeading  = "### :bug: Bugfixes\n"
	featureHeading = "### :rocket: Features\n"

	dateLayout = "2006-01-02"
)

// RenderChangelog assembles the final changelog document for the given
// generation date and project sections, in input order.
//
// Per project the Bugfixes block comes before the Features block, and either
// block is omitted when it has no entries. A project without any entries
// still gets its heading, so an empty block reads as "no notable changes".
// A blank line closes every project block. The transformation is
// deterministic: identical inputs produce byte-identical output.
func RenderChangelog(date time.Time, sections []ProjectSection) string {
	var doc strings.Builder

	doc.WriteString("# Changelog for " + date.Format(dateLayout) + "\n\n")

	for _, section := range sections {
		doc.WriteString("## " + section.Name + "\n")

		if len(section.Entries.Bugfixes) > 0 {
			doc.WriteString(bugfixHeading)
			for _, line := range section.Entries.Bugfixes {
				doc.WriteString(line)
			}
		}

		if len(section.Entries.Features) > 0 {
			doc.WriteString(featureHeading)
			for _, line := range section.Entries.Features {
				doc.WriteString(line)
			}
		}

		doc.WriteString("\n")
	}

	return doc.String()
}
