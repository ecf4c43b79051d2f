// Package display builds presentation-agnostic display structures from
// backend result collections. Blocks never touch network state; the TUI
// and the one-shot CLI decide how to draw them.
package display

// Kind distinguishes the shapes a Block can take.
type Kind int

const (
	// KindCards is a non-empty result list.
	KindCards Kind = iota
	// KindEmpty is a legitimate empty state with a cause-specific message.
	KindEmpty
	// KindError is a user-visible failure banner.
	KindError
	// KindLoading marks a result region whose search is still in flight.
	KindLoading
)

// Block is the renderer's output: a self-contained, ready-to-present
// representation of one result list or status message.
type Block struct {
	Kind    Kind
	Message string
	Cards   []Card
}

// Card is one displayable entry. Unused fields stay empty; every
// populated field has already been escaped for display.
type Card struct {
	Title       string
	Subtitle    string
	Meta        string
	Badge       string
	Description string
	URL         string
	Thumbnail   string
}

// Canonical user-facing messages. The empty-state wording distinguishes
// causes, so these strings are contractual.
const (
	MsgNoVideos       = "No video explanations found"
	MsgNoRepos        = "No code implementations found"
	MsgNoValidRepos   = "No valid code implementations found"
	MsgNoPapers       = "No papers found for this category and year"
	MsgGenericFailure = "Something went wrong. Please try again."
	MsgSearching      = "Searching…"
)

func emptyBlock(message string) Block {
	return Block{Kind: KindEmpty, Message: message}
}
