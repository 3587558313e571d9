package gov

import (
	"strconv"

	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// attribute keys the sdk gov vocabulary does not cover
const (
	AttributeKeyHasProposalCode    = "has_proposal_code"
	AttributeKeyProposalCodeResult = "proposal_code_exit_status"
)

// ProposalEvent is the effect record produced when a governance proposal
// is executed at the end of its voting period.
type ProposalEvent struct {
	Attributes map[string]string
}

// NewProposalEvent builds the effect record for an executed proposal.
// result is one of the sdk gov result values (proposal_passed,
// proposal_rejected, ...). codeOK is only recorded when the proposal
// carried code to execute.
func NewProposalEvent(proposalID uint64, result string, hasCode bool, codeOK bool) ProposalEvent {
	attributes := map[string]string{
		govtypes.AttributeKeyProposalID:     strconv.FormatUint(proposalID, 10),
		govtypes.AttributeKeyProposalResult: result,
		AttributeKeyHasProposalCode:         strconv.FormatBool(hasCode),
	}
	if hasCode {
		attributes[AttributeKeyProposalCodeResult] = strconv.FormatBool(codeOK)
	}
	return ProposalEvent{Attributes: attributes}
}
