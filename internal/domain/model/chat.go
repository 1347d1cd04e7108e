package model

// Chat message roles understood by the text-generation provider.
const (
	ChatRoleUser   = "user"
	ChatRoleModel  = "model"
	ChatRoleSystem = "system"
)

// ChatMessage is one role-tagged turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PlaceDescription is a short traveler-facing summary of a place, with the
// single most famous thing about it pulled out separately when the
// generated text contains one.
type PlaceDescription struct {
	Place       string `json:"place"`
	Description string `json:"description"`
	FamousFor   string `json:"famous_for,omitempty"`
}
