package browsing

// Page is a loaded document.
type Page struct {
	URL   string
	Title string
	// Text holds the readable paragraphs extracted for reader mode.
	Text []string
}

// Readable reports whether reader mode can present the page.
func (p Page) Readable() bool {
	return p.URL != HomeURL && len(p.Text) > 0
}

// HomePage returns the built-in start page.
func HomePage() Page {
	return Page{URL: HomeURL, Title: HomeTitle}
}
