package display

import "strings"

// Markdown serializes a block under a heading for the one-shot CLI
// mode. Card text is escaped so untrusted result fields always render
// as literal characters in the document, never as markup.
func Markdown(b Block, heading string) string {
	var sb strings.Builder
	sb.WriteString("## " + escapeMarkdown(heading) + "\n\n")

	switch b.Kind {
	case KindEmpty:
		sb.WriteString("_" + escapeMarkdown(b.Message) + "_\n")
	case KindError:
		sb.WriteString("**Error:** " + escapeMarkdown(b.Message) + "\n")
	case KindLoading:
		sb.WriteString("_" + escapeMarkdown(b.Message) + "_\n")
	case KindCards:
		for _, c := range b.Cards {
			writeCardMarkdown(&sb, c)
		}
	}

	return sb.String()
}

func writeCardMarkdown(sb *strings.Builder, c Card) {
	sb.WriteString("- **" + escapeMarkdown(c.Title) + "**")
	if c.Badge != "" {
		sb.WriteString(" `" + strings.ReplaceAll(c.Badge, "`", "'") + "`")
	}
	sb.WriteString("\n")

	var details []string
	if c.Subtitle != "" {
		details = append(details, escapeMarkdown(c.Subtitle))
	}
	if c.Meta != "" {
		details = append(details, escapeMarkdown(c.Meta))
	}
	if len(details) > 0 {
		sb.WriteString("  " + strings.Join(details, " • ") + "\n")
	}
	if c.Description != "" {
		sb.WriteString("  " + escapeMarkdown(c.Description) + "\n")
	}
	if c.URL != "" {
		sb.WriteString("  <" + escapeURL(c.URL) + ">\n")
	}
	sb.WriteString("\n")
}

// escapeMarkdown neutralizes characters that markdown or inline HTML
// would interpret as markup.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		"&", "&amp;",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"[", "\\[",
		"]", "\\]",
		"#", "\\#",
	)
	return r.Replace(s)
}

// escapeURL keeps autolink delimiters intact while preventing the URL
// from closing the autolink early or smuggling markup.
func escapeURL(s string) string {
	r := strings.NewReplacer("<", "%3C", ">", "%3E", " ", "%20")
	return r.Replace(s)
}
