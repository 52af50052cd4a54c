package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

func TestAdminStats(t *testing.T) {
	records := []model.RawInteraction{
		{From: "A", Inbound: "a", Outbound: "r", ReceivedAt: tsSec(1)},
		{From: "A", Inbound: "b", ReceivedAt: tsSec(2)},
		{From: "B", Inbound: "c", Outbound: "r", ReceivedAt: tsSec(3)},
	}

	stats := AdminStats(records)
	require.Len(t, stats, 3)
	assert.Equal(t, "3", stats[0].Value, "total interactions")
	assert.Equal(t, "2", stats[1].Value, "total conversations")
	assert.Equal(t, "1.00", stats[2].Value, "2 answered over 2 conversations")
}

func TestAdminStatsEmpty(t *testing.T) {
	stats := AdminStats(nil)
	require.Len(t, stats, 3)
	assert.Equal(t, "0", stats[0].Value)
	assert.Equal(t, "0", stats[1].Value)
	assert.Equal(t, "0.00", stats[2].Value)
}

func TestCompanyStats(t *testing.T) {
	stats := CompanyStats([]model.Conversation{
		{Messages: 100},
		{Messages: 50},
	})
	require.Len(t, stats, 3)
	assert.Equal(t, "150", stats[0].Value)
	assert.Equal(t, "2", stats[1].Value)
}
