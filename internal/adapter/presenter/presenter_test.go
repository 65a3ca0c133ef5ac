package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

func TestToAnalyzeResponse_NullID(t *testing.T) {
	b, err := json.Marshal(ToAnalyzeResponse(entities.NewSuccessAnalysis("ok"), ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":{"summary":"ok","insights":[],"status":"success"},"id":null}`, string(b))

	b, err = json.Marshal(ToAnalyzeResponse(entities.Analysis{Summary: "x", Status: entities.AnalysisStatusSuccess}, "7"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":{"summary":"x","insights":[],"status":"success"},"id":"7"}`, string(b))
}

func TestToFeedResponse_DateKey(t *testing.T) {
	empty := ""
	items := []entities.FeedItem{
		{ID: "i1", Type: entities.FeedItemTypeIcebreaker, Title: "LinkedIn Icebreaker - Jane", CreatedAt: "2024-01-03"},
		{ID: "t1", Type: entities.FeedItemTypeTranscript, Title: "Unknown Company", Date: &empty, CreatedAt: "2024-01-02"},
	}

	b, err := json.Marshal(ToFeedResponse(items))
	require.NoError(t, err)

	var decoded struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Items, 2)

	assert.NotContains(t, decoded.Items[0], "date")
	assert.Contains(t, decoded.Items[1], "date")
	assert.Equal(t, "", decoded.Items[1]["date"])
	assert.Equal(t, "i1", decoded.Items[0]["id"])
}

func TestToFeedResponse_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(ToFeedResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(b))
}
