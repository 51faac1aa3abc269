package common

import "github.com/nspcc-dev/neo-go/pkg/interop/convert"

var (
	escrowDepositPrefix    = []byte{0x01}
	submissionRewardPrefix = []byte{0x02}
	reviewRewardPrefix     = []byte{0x03}
	escrowReclaimPrefix    = []byte{0x04}
	payoutRedeemPrefix     = []byte{0x05}
	stakePrefix            = []byte{0x10}
	unstakePrefix          = []byte{0x11}
)

// EscrowDepositDetails marks a transfer locking task rewards in escrow.
func EscrowDepositDetails(taskID int) []byte {
	return append(escrowDepositPrefix, convert.ToBytes(taskID)...)
}

// SubmissionRewardDetails marks a payout to the submitter of approved work.
func SubmissionRewardDetails(taskID int) []byte {
	return append(submissionRewardPrefix, convert.ToBytes(taskID)...)
}

// ReviewRewardDetails marks a payout to a reviewer for a cast vote.
func ReviewRewardDetails(taskID int) []byte {
	return append(reviewRewardPrefix, convert.ToBytes(taskID)...)
}

// EscrowReclaimDetails marks a return of unspent escrow to the task creator.
func EscrowReclaimDetails(taskID int) []byte {
	return append(escrowReclaimPrefix, convert.ToBytes(taskID)...)
}

// PayoutRedeemDetails marks a retried transfer of a previously failed payout.
func PayoutRedeemDetails(taskID int) []byte {
	return append(payoutRedeemPrefix, convert.ToBytes(taskID)...)
}

// StakeDetails marks a membership stake transfer.
func StakeDetails() []byte {
	return stakePrefix
}

// UnstakeDetails marks a membership stake return.
func UnstakeDetails() []byte {
	return unstakePrefix
}
