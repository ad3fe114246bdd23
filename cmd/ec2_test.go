package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEC2States(t *testing.T) {
	tests := []struct {
		state string
		want  []string
	}{
		{"running", []string{"running"}},
		{"stopped", []string{"stopped"}},
		{"terminated", []string{"terminated"}},
		{"all", nil},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			states, err := ec2States(tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, states)
		})
	}
}

func TestEC2StatesInvalid(t *testing.T) {
	_, err := ec2States("hibernating")

	assert.ErrorContains(t, err, "invalid state")
}
