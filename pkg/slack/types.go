package slack

// Message is an incoming-webhook payload: a plain-text fallback plus
// optional Block Kit blocks.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is a Block Kit block. Only the fields used by this service are
// modeled.
type Block struct {
	Type     string    `json:"type"`
	Text     *Text     `json:"text,omitempty"`
	Fields   []Text    `json:"fields,omitempty"`
	Elements []Element `json:"elements,omitempty"`
}

// Text is a Block Kit text object.
type Text struct {
	Type string `json:"type"` // plain_text or mrkdwn
	Text string `json:"text"`
}

// Element is a Block Kit element used in actions and context blocks.
// Text is *Text for buttons but a plain string for context mrkdwn
// elements, hence the any.
type Element struct {
	Type     string `json:"type"`
	Text     any    `json:"text,omitempty"`
	URL      string `json:"url,omitempty"`
	ActionID string `json:"action_id,omitempty"`
}

// Block and text type constants.
const (
	BlockHeader  = "header"
	BlockSection = "section"
	BlockActions = "actions"
	BlockContext = "context"

	TextPlain    = "plain_text"
	TextMarkdown = "mrkdwn"

	ElementButton   = "button"
	ElementMarkdown = "mrkdwn"
)
