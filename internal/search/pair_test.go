package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairsCartesianProduct(t *testing.T) {
	accounts := []string{"myprod", "mystaging", "mydev"}
	regions := []string{"us-east-1", "us-west-2"}

	pairs := Pairs(accounts, regions)

	assert.Len(t, pairs, len(accounts)*len(regions))
	assert.Equal(t, []Pair{
		{Account: "myprod", Region: "us-east-1"},
		{Account: "myprod", Region: "us-west-2"},
		{Account: "mystaging", Region: "us-east-1"},
		{Account: "mystaging", Region: "us-west-2"},
		{Account: "mydev", Region: "us-east-1"},
		{Account: "mydev", Region: "us-west-2"},
	}, pairs)
}

func TestPairsSingleAccountAndRegion(t *testing.T) {
	pairs := Pairs([]string{"myprod"}, []string{"us-east-1"})

	assert.Equal(t, []Pair{{Account: "myprod", Region: "us-east-1"}}, pairs)
}

func TestPairsEmpty(t *testing.T) {
	assert.Empty(t, Pairs(nil, []string{"us-east-1"}))
	assert.Empty(t, Pairs([]string{"myprod"}, nil))
}
