package store

import (
	"time"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// seedConversations builds the fixed demo conversation set shown to
// company and client viewers, who have no live data source.
func seedConversations() []model.Conversation {
	entries := []struct {
		id      string
		client  string
		company string
		count   int
		last    string
		preview string
		origin  model.Origin
	}{
		{"001", "João Silva", "Tech Solutions", 342, "2024-01-15T10:30:00Z", "Preciso de ajuda com reserva...", model.OriginInstagram},
		{"002", "Maria Santos", "Tech Solutions", 278, "2024-01-15T09:10:00Z", "Quais são os horários disponíveis?", model.OriginWhatsApp},
		{"003", "Pedro Costa", "Hotel Imperial", 189, "2024-01-14T16:45:00Z", "Gostaria de informações sobre...", model.OriginFacebook},
		{"004", "Ana Oliveira", "Tech Solutions", 156, "2024-01-13T12:00:00Z", "Obrigada pelo atendimento!", model.OriginInstagram},
		{"005", "Carlos Mendes", "Hotel Imperial", 234, "2024-01-15T08:20:00Z", "Preciso cancelar uma reserva...", model.OriginWhatsApp},
		{"006", "Juliana Lima", "Turismo Aventura", 167, "2024-01-15T07:50:00Z", "Quais pacotes vocês oferecem?", model.OriginFacebook},
		{"007", "Roberto Alves", "Tech Solutions", 289, "2024-01-14T11:15:00Z", "Perfeito, muito obrigado!", model.OriginWhatsApp},
		{"008", "Fernanda Rocha", "Turismo Aventura", 198, "2024-01-15T14:05:00Z", "Gostaria de mais informações...", model.OriginInstagram},
		{"009", "Lucas Ferreira", "Hotel Imperial", 145, "2024-01-13T09:40:00Z", "Qual o melhor horário para...", model.OriginFacebook},
		{"010", "Camila Souza", "Tech Solutions", 312, "2024-01-15T15:25:00Z", "Preciso atualizar meus dados...", model.OriginWhatsApp},
	}

	conversations := make([]model.Conversation, 0, len(entries))
	for _, e := range entries {
		last, _ := time.Parse(time.RFC3339, e.last)
		conversations = append(conversations, model.Conversation{
			ID:         e.id,
			ClientName: e.client,
			Company:    e.company,
			Messages:   e.count,
			LastSeen:   &last,
			Date:       last.Format("2006-01-02"),
			Preview:    e.preview,
			Origin:     e.origin,
		})
	}
	return conversations
}
