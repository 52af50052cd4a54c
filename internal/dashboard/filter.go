package dashboard

import (
	"sort"
	"strings"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// CompanyAll disables the company filter.
const CompanyAll = "all"

// DefaultPageSize is the fixed page length of the conversation list.
const DefaultPageSize = 8

// Viewer is the identity a filter pass runs under.
type Viewer struct {
	Role    model.Role
	Name    string
	Company string
}

// Criteria narrows and orders a conversation list. The zero value keeps
// everything and returns the first page.
type Criteria struct {
	Viewer    Viewer
	Search    string
	DateStart string // inclusive lower bound, YYYY-MM-DD
	Company   string // exact match, admin only; "" or "all" keeps everything
}

// Filter applies role visibility, free-text search, the date lower bound
// and the company filter in that order, then sorts descending by last
// activity. Conversations with no usable timestamp sort last. The input
// slice is not modified.
func Filter(conversations []model.Conversation, c Criteria) []model.Conversation {
	out := visible(conversations, c.Viewer)

	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		out = keep(out, func(conv model.Conversation) bool {
			return strings.Contains(strings.ToLower(conv.ID), term) ||
				strings.Contains(strings.ToLower(conv.ClientName), term)
		})
	}

	if c.DateStart != "" {
		out = keep(out, func(conv model.Conversation) bool {
			// A conversation with no established day cannot satisfy
			// a date bound.
			return conv.Date != "" && conv.Date >= c.DateStart
		})
	}

	if c.Viewer.Role == model.RoleAdmin && c.Company != "" && c.Company != CompanyAll {
		out = keep(out, func(conv model.Conversation) bool {
			return conv.Company == c.Company
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return lastMillis(out[a]) > lastMillis(out[b])
	})
	return out
}

func visible(conversations []model.Conversation, v Viewer) []model.Conversation {
	switch v.Role {
	case model.RoleCompany:
		return keep(conversations, func(conv model.Conversation) bool {
			return conv.Company == v.Company
		})
	case model.RoleClient:
		return keep(conversations, func(conv model.Conversation) bool {
			return conv.ClientName == v.Name
		})
	default:
		out := make([]model.Conversation, len(conversations))
		copy(out, conversations)
		return out
	}
}

func keep(conversations []model.Conversation, pred func(model.Conversation) bool) []model.Conversation {
	out := conversations[:0:0]
	for _, conv := range conversations {
		if pred(conv) {
			out = append(out, conv)
		}
	}
	return out
}

func lastMillis(conv model.Conversation) int64 {
	if conv.LastSeen == nil {
		return 0
	}
	return conv.LastSeen.UnixMilli()
}

// Paginate slices the filtered list into a 1-based page of pageSize
// items. Out-of-range pages yield an empty slice, never an error.
func Paginate(conversations []model.Conversation, page, pageSize int) []model.Conversation {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(conversations) {
		return nil
	}
	end := start + pageSize
	if end > len(conversations) {
		end = len(conversations)
	}
	return conversations[start:end]
}

// TotalPages returns ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
