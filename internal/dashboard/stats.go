package dashboard

import (
	"fmt"
	"strconv"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// AdminStats derives the statistic cards for the privileged view from the
// live snapshot: total raw interactions, total conversations, and the
// mean number of answered records per conversation.
func AdminStats(records []model.RawInteraction) []model.Stat {
	byClient := GroupByClient(records)

	mean := 0.0
	if len(byClient) > 0 {
		answered := 0
		for _, group := range byClient {
			for _, rec := range group {
				if rec.Answered() {
					answered++
				}
			}
		}
		mean = float64(answered) / float64(len(byClient))
	}

	return []model.Stat{
		{Label: "Total de Interações", Value: strconv.Itoa(len(records)), Change: "+0"},
		{Label: "Total de Conversas", Value: strconv.Itoa(len(byClient)), Change: "+0"},
		{Label: "Média de Respostas", Value: fmt.Sprintf("%.2f", mean), Change: "+0"},
	}
}

// CompanyStats derives the statistic cards for a company-scoped viewer
// over its visible conversations.
func CompanyStats(conversations []model.Conversation) []model.Stat {
	totalMessages := 0
	for _, conv := range conversations {
		totalMessages += conv.Messages
	}

	return []model.Stat{
		{Label: "Total de Interações", Value: strconv.Itoa(totalMessages), Change: "+12.5%"},
		{Label: "Total de Conversas", Value: strconv.Itoa(len(conversations)), Change: "+8"},
		{Label: "Média de Resposta", Value: "1.2s", Change: "-0.3s"},
	}
}
