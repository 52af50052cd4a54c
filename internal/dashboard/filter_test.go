package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

func conv(id, client, company string, last *time.Time) model.Conversation {
	c := model.Conversation{ID: id, ClientName: client, Company: company, LastSeen: last}
	if last != nil {
		c.Date = last.Format("2006-01-02")
	}
	return c
}

func at(day int, hour int) *time.Time {
	t := time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func fixture() []model.Conversation {
	return []model.Conversation{
		conv("001", "João Silva", "Tech Solutions", at(15, 10)),
		conv("002", "Maria Santos", "Tech Solutions", at(15, 9)),
		conv("003", "Pedro Costa", "Hotel Imperial", at(14, 16)),
		conv("004", "5511999990000@s.whatsapp.net", "Embeddixy", at(13, 12)),
		conv("005", "No Clock", "Embeddixy", nil),
	}
}

func admin() Viewer { return Viewer{Role: model.RoleAdmin} }

func TestFilterSortsDescendingUnknownLast(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin()})
	require.Len(t, out, 5)

	ids := []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID, out[4].ID}
	assert.Equal(t, []string{"001", "002", "003", "004", "005"}, ids)
	assert.Nil(t, out[4].LastSeen, "conversations without a timestamp sort last")
}

func TestFilterSearchCaseInsensitiveAccents(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), Search: "joão"})
	require.Len(t, out, 1)
	assert.Equal(t, "João Silva", out[0].ClientName)
}

func TestFilterSearchMatchesID(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), Search: "003"})
	require.Len(t, out, 1)
	assert.Equal(t, "Pedro Costa", out[0].ClientName)
}

func TestFilterDateLowerBound(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), DateStart: "2024-01-15"})
	require.Len(t, out, 2)
	for _, c := range out {
		assert.GreaterOrEqual(t, c.Date, "2024-01-15")
	}
}

func TestFilterDateBoundExcludesUnknownDates(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), DateStart: "2020-01-01"})
	for _, c := range out {
		assert.NotEqual(t, "005", c.ID, "a conversation with no established day cannot satisfy a bound")
	}
}

func TestFilterCompanyAdminOnly(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), Company: "Hotel Imperial"})
	require.Len(t, out, 1)
	assert.Equal(t, "003", out[0].ID)

	// "all" disables the filter.
	out = Filter(fixture(), Criteria{Viewer: admin(), Company: CompanyAll})
	assert.Len(t, out, 5)

	// Non-admin viewers never apply the company filter on top of their
	// visibility scope.
	out = Filter(fixture(), Criteria{
		Viewer:  Viewer{Role: model.RoleCompany, Company: "Tech Solutions"},
		Company: "Hotel Imperial",
	})
	assert.Len(t, out, 2)
}

func TestFilterRoleVisibilityNarrows(t *testing.T) {
	all := Filter(fixture(), Criteria{Viewer: admin()})

	company := Filter(fixture(), Criteria{Viewer: Viewer{Role: model.RoleCompany, Company: "Tech Solutions"}})
	client := Filter(fixture(), Criteria{Viewer: Viewer{Role: model.RoleClient, Name: "João Silva"}})

	assert.Len(t, company, 2)
	assert.Len(t, client, 1)

	inAll := make(map[string]bool, len(all))
	for _, c := range all {
		inAll[c.ID] = true
	}
	for _, c := range append(company, client...) {
		assert.True(t, inAll[c.ID], "scoped views are subsets of the admin view")
	}
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	input := fixture()
	criteria := Criteria{Viewer: admin(), Search: "a", DateStart: "2024-01-14"}

	first := Filter(input, criteria)
	second := Filter(input, criteria)
	assert.Equal(t, first, second)

	// The input order is untouched.
	assert.Equal(t, "001", input[0].ID)
	assert.Equal(t, "005", input[4].ID)
}

func TestFilterZeroResults(t *testing.T) {
	out := Filter(fixture(), Criteria{Viewer: admin(), Search: "no such thing"})
	assert.Empty(t, out)
}

func TestPaginate(t *testing.T) {
	items := make([]model.Conversation, 10)
	for i := range items {
		items[i].ID = fmt.Sprintf("%03d", i+1)
	}

	page1 := Paginate(items, 1, 8)
	require.Len(t, page1, 8)
	assert.Equal(t, "001", page1[0].ID)
	assert.Equal(t, "008", page1[7].ID)

	page2 := Paginate(items, 2, 8)
	require.Len(t, page2, 2)
	assert.Equal(t, "009", page2[0].ID)
	assert.Equal(t, "010", page2[1].ID)

	assert.Empty(t, Paginate(items, 3, 8))
	assert.Empty(t, Paginate(items, 0, 8))

	assert.Equal(t, 2, TotalPages(10, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 0, TotalPages(0, 8))
}
