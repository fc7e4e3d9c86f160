package domain

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// MessageKind controls how the presentation layer renders a message.
type MessageKind string

const (
	// KindPlain is an ordinary chat bubble.
	KindPlain MessageKind = "plain"
	// KindLanguageSelection tells the client to render the inline language
	// picker alongside the message text.
	KindLanguageSelection MessageKind = "language-selection"
)

// Message is one turn in the conversation. Once appended to a session's log
// it is immutable; the log itself is append-only.
type Message struct {
	ID     int64
	Sender Sender
	Text   string
	Kind   MessageKind
	Songs  []Song // present only on assistant turns carrying recommendations
}
