package api

// Video is one explanatory-video result. All fields are opaque display
// strings; URL and Thumbnail are untrusted URIs.
type Video struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Views     string `json:"views"`
	Published string `json:"published"`
}

// Repo is one code-implementation result.
type Repo struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Author      string `json:"author"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
}

// Valid reports whether the repo carries enough identity to display.
// Entries missing both URL and name are dropped before rendering.
func (r Repo) Valid() bool {
	return r.URL != "" || r.Name != ""
}

// PopularPaper is one entry of the popular-papers panel.
type PopularPaper struct {
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Category string `json:"category,omitempty"`
}

// Suggestion is one autocomplete row.
type Suggestion struct {
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Category string `json:"category,omitempty"`
}

// SearchResult is the outcome of one completed search. Immutable after
// creation; the next search supersedes it entirely. Missing keys in the
// response decode to empty slices.
type SearchResult struct {
	Videos []Video `json:"videos"`
	Repos  []Repo  `json:"repos"`
}

type searchResponse struct {
	Videos []Video `json:"videos"`
	Repos  []Repo  `json:"repos"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type yearsResponse struct {
	Years []int `json:"years"`
}

type papersResponse struct {
	Papers []PopularPaper `json:"papers"`
}

type suggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}
