package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeepsPairOrderRegardlessOfCompletion(t *testing.T) {
	pairs := Pairs([]string{"a1", "a2", "a3"}, []string{"us-east-1", "us-west-2"})

	// Earlier pairs finish last, so completion order is the reverse of
	// iteration order.
	fetch := func(ctx context.Context, pair Pair) ([]string, error) {
		for i, p := range pairs {
			if p == pair {
				time.Sleep(time.Duration(len(pairs)-i) * 10 * time.Millisecond)
			}
		}
		return []string{pair.Account + "/" + pair.Region}, nil
	}

	rows, failures := Run(context.Background(), pairs, fetch)

	require.Empty(t, failures)
	assert.Equal(t, []string{
		"a1/us-east-1",
		"a1/us-west-2",
		"a2/us-east-1",
		"a2/us-west-2",
		"a3/us-east-1",
		"a3/us-west-2",
	}, rows)
}

func TestRunSkipsFailedPairs(t *testing.T) {
	pairs := Pairs([]string{"good", "broken"}, []string{"us-east-1"})

	fetch := func(ctx context.Context, pair Pair) ([]int, error) {
		if pair.Account == "broken" {
			return nil, errors.New("profile not found")
		}
		return []int{1, 2}, nil
	}

	rows, failures := Run(context.Background(), pairs, fetch)

	assert.Equal(t, []int{1, 2}, rows)
	require.Len(t, failures, 1)
	assert.Equal(t, Pair{Account: "broken", Region: "us-east-1"}, failures[0].Pair)
	assert.ErrorContains(t, failures[0], "profile not found")
	assert.ErrorContains(t, failures[0], "broken")
}

func TestRunAllPairsFailed(t *testing.T) {
	pairs := Pairs([]string{"a", "b"}, []string{"us-east-1", "eu-west-1"})

	fetch := func(ctx context.Context, pair Pair) ([]int, error) {
		return nil, fmt.Errorf("auth failure in %s", pair.Region)
	}

	rows, failures := Run(context.Background(), pairs, fetch)

	assert.Empty(t, rows)
	assert.Len(t, failures, len(pairs))
}

func TestRunNoPairs(t *testing.T) {
	rows, failures := Run(context.Background(), nil, func(ctx context.Context, pair Pair) ([]int, error) {
		t.Error("fetch must not be called")
		return nil, nil
	})

	assert.Empty(t, rows)
	assert.Empty(t, failures)
}

func TestFetchErrorUnwrap(t *testing.T) {
	sentinel := errors.New("boom")
	err := FetchError{Pair: Pair{Account: "a", Region: "r"}, Err: sentinel}

	assert.ErrorIs(t, err, sentinel)
}
