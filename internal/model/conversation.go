package model

import "time"

// Origin identifies the acquisition channel of a conversation.
type Origin string

const (
	OriginWhatsApp  Origin = "whatsapp"
	OriginInstagram Origin = "instagram"
	OriginFacebook  Origin = "facebook"
)

// PreviewFallback is shown when the latest record has no inbound text.
const PreviewFallback = "Sem mensagem"

// UnknownClient is shown when a record arrives without a counterparty id.
const UnknownClient = "Desconhecido"

// Conversation is a derived thread of raw interactions for one
// counterparty. Conversations are rebuilt wholesale on every ingestion
// cycle and never persisted; the display id is stable only within one
// aggregation pass.
type Conversation struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Messages   int    `json:"messages"`

	// LastSeen is nil when no record in the group carried a usable
	// timestamp. Date is its calendar day (YYYY-MM-DD), empty when
	// LastSeen is nil.
	LastSeen *time.Time `json:"last_seen"`
	Date     string     `json:"date,omitempty"`

	Preview string `json:"preview"`
	Origin  Origin `json:"origin"`

	// Records is the group's raw interactions in chronological order,
	// owned exclusively by this conversation for one ingestion cycle.
	Records []RawInteraction `json:"-"`
}

// ConversationView is a Conversation decorated for display.
type ConversationView struct {
	Conversation
	DisplayName     string `json:"display_name"`
	LastInteraction string `json:"last_interaction"`
}

// ListConversationsResponse is the response for listing conversations.
type ListConversationsResponse struct {
	Conversations []ConversationView `json:"conversations"`
	Total         int                `json:"total"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"total_pages"`
}

// Stat is one derived statistic card.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}
