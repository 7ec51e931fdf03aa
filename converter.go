package rustdocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML document into Markdown. Relative links
	// resolve against baseURL when it is not empty.
	Convert(html, baseURL string) (string, error)
}
