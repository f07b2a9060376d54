package feed

var placeholderURLs = []string{
	"https://cdn2.thecatapi.com/images/8cd.jpg",
	"https://cdn2.thecatapi.com/images/8ob.jpg",
	"https://cdn2.thecatapi.com/images/a0v.jpg",
	"https://cdn2.thecatapi.com/images/akf.jpg",
}

// Placeholders returns the built-in images shown until the first fetch is
// issued. They are not a fallback for failed fetches.
func Placeholders() []Item {
	items := make([]Item, len(placeholderURLs))
	for i, u := range placeholderURLs {
		items[i] = Item{URL: u}
	}
	return items
}
