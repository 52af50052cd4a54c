// Package dashboard implements the conversation pipeline behind the
// dashboard: aggregation of raw webhook records into threads, filtering,
// sorting, pagination and derived statistics. Every function here is a
// pure transform of its inputs.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// Aggregate groups raw interaction records by counterparty into
// conversation threads. Groups are created in first-seen order and each
// input record lands in exactly one group. Within a group records are
// ordered ascending by their best timestamp; records with no usable
// timestamp keep their relative order and sort first (epoch origin).
func Aggregate(records []model.RawInteraction, company string) []model.Conversation {
	byClient := make(map[string][]model.RawInteraction)
	var order []string
	for _, rec := range records {
		if _, seen := byClient[rec.From]; !seen {
			order = append(order, rec.From)
		}
		byClient[rec.From] = append(byClient[rec.From], rec)
	}

	conversations := make([]model.Conversation, 0, len(order))
	for i, client := range order {
		group := byClient[client]
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].BestTime().UnixMilli() < group[b].BestTime().UnixMilli()
		})
		conversations = append(conversations, buildConversation(i+1, client, company, group))
	}
	return conversations
}

func buildConversation(seq int, client, company string, group []model.RawInteraction) model.Conversation {
	last := group[len(group)-1]

	conv := model.Conversation{
		ID:         fmt.Sprintf("%03d", seq),
		ClientName: client,
		Company:    company,
		Messages:   messageCount(group),
		Preview:    last.Inbound,
		Origin:     model.OriginWhatsApp,
		Records:    group,
	}
	if conv.ClientName == "" {
		conv.ClientName = model.UnknownClient
	}
	if conv.Preview == "" {
		conv.Preview = model.PreviewFallback
	}
	if t, ok := last.BestTime().Time(); ok {
		conv.LastSeen = &t
		conv.Date = t.UTC().Format("2006-01-02")
	}
	return conv
}

// messageCount treats each record as up to two logical messages, one
// inbound plus one outbound reply; unanswered records contribute one.
func messageCount(group []model.RawInteraction) int {
	missing := 0
	for _, rec := range group {
		if !rec.Answered() {
			missing++
		}
	}
	return 2*len(group) - missing
}

// GroupByClient indexes raw records by counterparty without building full
// conversations, preserving input order within each group.
func GroupByClient(records []model.RawInteraction) map[string][]model.RawInteraction {
	byClient := make(map[string][]model.RawInteraction)
	for _, rec := range records {
		byClient[rec.From] = append(byClient[rec.From], rec)
	}
	return byClient
}

// IndexByClient indexes aggregated conversations by counterparty, giving
// the history view chronologically ordered records.
func IndexByClient(conversations []model.Conversation) map[string][]model.RawInteraction {
	idx := make(map[string][]model.RawInteraction, len(conversations))
	for _, conv := range conversations {
		idx[conv.ClientName] = conv.Records
	}
	return idx
}
