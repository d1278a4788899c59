package core

import "time"

const (
	BotName       = "Advogado Virtual"
	BotVersion    = "1.0.0"
	RepositoryURL = "https://github.com/sandevgo/advogado"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Platform string

const (
	PlatformWeb      Platform = "web"
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformCLI      Platform = "cli"
)

// Turn is one persisted message of a conversation. Turns are never updated.
type Turn struct {
	UserID    string    `json:"user_id"`
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	Platform  Platform  `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRecord struct {
	UserID       string    `json:"user_id"`
	FirstContact time.Time `json:"first_contact"`
	LastContact  time.Time `json:"last_contact"`
}

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// WebContext is search output handed to the LLM next to the question.
// NoResults asks the model to say that the web search found nothing instead of
// inventing a web-backed answer.
type WebContext struct {
	Content   string
	Mandatory bool
	NoResults bool
}
