package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmacduff/awssearch/pkg/types"
)

func testInstances() []types.Instance {
	return []types.Instance{
		{ID: "i-0aaa", Name: "prod-api-01", PrivateIP: "10.0.1.5", Account: "myprod"},
		{ID: "i-0bbb", Name: "prod-api-02", PrivateIP: "10.0.1.6", Account: "myprod"},
		{ID: "i-0ccc", Name: "staging-web", PrivateIP: "10.1.2.3", Account: "mystaging"},
	}
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	rows := testInstances()

	assert.Equal(t, rows, Apply(rows, nil))
	assert.Equal(t, rows, Apply(rows, Filter{}))
}

func TestApplyMatchesSubstring(t *testing.T) {
	rows := Apply(testInstances(), Filter{types.MatchName: "prod-api"})

	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Contains(t, row.Name, "prod-api")
		assert.Equal(t, "myprod", row.Account)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	filter := Filter{types.MatchName: "prod"}

	once := Apply(testInstances(), filter)
	twice := Apply(once, filter)

	assert.Equal(t, once, twice)
}

func TestApplyIsCaseSensitive(t *testing.T) {
	rows := Apply(testInstances(), Filter{types.MatchName: "PROD"})

	assert.Empty(t, rows)
}

func TestApplyCombinesFieldsWithAnd(t *testing.T) {
	filter := Filter{
		types.MatchName: "prod-api",
		types.MatchID:   "i-0bbb",
	}

	rows := Apply(testInstances(), filter)

	assert.Len(t, rows, 1)
	assert.Equal(t, "prod-api-02", rows[0].Name)
}

func TestApplyNoMatches(t *testing.T) {
	rows := Apply(testInstances(), Filter{types.MatchName: "absent"})

	assert.Empty(t, rows)
}
