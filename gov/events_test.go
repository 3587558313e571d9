package gov

import (
	"testing"

	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
)

func TestNewProposalEvent(t *testing.T) {
	cases := []struct {
		name     string
		id       uint64
		result   string
		hasCode  bool
		codeOK   bool
		expected map[string]string
	}{
		{
			name:    "passed with code",
			id:      7,
			result:  govtypes.AttributeValueProposalPassed,
			hasCode: true,
			codeOK:  true,
			expected: map[string]string{
				govtypes.AttributeKeyProposalID:     "7",
				govtypes.AttributeKeyProposalResult: govtypes.AttributeValueProposalPassed,
				AttributeKeyHasProposalCode:         "true",
				AttributeKeyProposalCodeResult:      "true",
			},
		},
		{
			name:   "rejected without code",
			id:     12,
			result: govtypes.AttributeValueProposalRejected,
			expected: map[string]string{
				govtypes.AttributeKeyProposalID:     "12",
				govtypes.AttributeKeyProposalResult: govtypes.AttributeValueProposalRejected,
				AttributeKeyHasProposalCode:         "false",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := NewProposalEvent(tc.id, tc.result, tc.hasCode, tc.codeOK)
			require.Equal(t, tc.expected, event.Attributes)
		})
	}
}
