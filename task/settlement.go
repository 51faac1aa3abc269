package task

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/morgueye4/datahub-contract/common"
	cst "github.com/morgueye4/datahub-contract/task/taskconst"
)

// Reward settlement. The Task contract owns the escrow: tokens pulled at
// task creation sit on its DHUB account, and the records below bind them to
// task IDs. Payout entry points are reachable only from the Submission
// contract, whose one-way submission statuses and one-vote-per-reviewer
// records make every payout at-most-once. A rejected token transfer does not
// undo the vote or submission state that triggered it: the amount is
// recorded as owed and stays redeemable by the payee.

// PayoutSubmission pays the submission reward of the task to the submitter
// of approved work and accounts for one more validated submission. When the
// required number of submissions is validated, the task becomes Completed.
// It can be invoked only by the Submission contract.
//
// Produces SubmissionRewardPaid notification, PayoutFailed instead if the
// token transfer was rejected, and TaskCompleted when the task is done.
func PayoutSubmission(taskID int, submitter interop.Hash160) {
	ctx := storage.GetContext()
	common.CallerIsKnownContract(ctx, submissionContractKey, cst.ErrNotSubmissionContract)

	t := getTask(ctx, taskID)

	paid := payFromEscrow(ctx, taskID, submitter, t.RewardPerSubmission,
		common.SubmissionRewardDetails(taskID))
	if paid {
		runtime.Notify("SubmissionRewardPaid", taskID, submitter, t.RewardPerSubmission)
	}

	t.ValidatedSubmissionCount = t.ValidatedSubmissionCount + 1
	if t.ValidatedSubmissionCount >= t.RequiredSubmissions && !isTerminal(t.Status) {
		t.Status = cst.StatusCompleted
		t.CompletedAt = runtime.GetTime()
		runtime.Notify("TaskCompleted", taskID)
		runtime.Log("task completed")
	}
	putTask(ctx, t)
}

// PayoutReviewer pays the review reward of the task to a reviewer for a cast
// vote. It can be invoked only by the Submission contract.
//
// Produces ReviewRewardPaid notification, or PayoutFailed if the token
// transfer was rejected.
func PayoutReviewer(taskID int, reviewer interop.Hash160) {
	ctx := storage.GetContext()
	common.CallerIsKnownContract(ctx, submissionContractKey, cst.ErrNotSubmissionContract)

	t := getTask(ctx, taskID)

	paid := payFromEscrow(ctx, taskID, reviewer, t.RewardPerReview,
		common.ReviewRewardDetails(taskID))
	if paid {
		runtime.Notify("ReviewRewardPaid", taskID, reviewer, t.RewardPerReview)
	}
}

// RedeemPayout retries the transfer of rewards whose original payout failed.
// The payee must witness the transaction. The owed record is dropped only
// after a successful transfer, so the call can be retried any number of
// times.
//
// Produces PayoutRedeemed notification.
func RedeemPayout(taskID int, account interop.Hash160) {
	common.CheckOwnerWitness(account)

	ctx := storage.GetContext()
	// Touch the task to fail on unknown IDs.
	_ = getTask(ctx, taskID)

	key := owedKey(taskID, account)
	owed := storage.Get(ctx, key)
	if owed == nil {
		panic(cst.ErrNothingOwed)
	}
	amount := owed.(int)

	if !transferTokens(ctx, account, amount, common.PayoutRedeemDetails(taskID)) {
		panic(cst.ErrRedeemFailed)
	}

	storage.Delete(ctx, key)
	runtime.Notify("PayoutRedeemed", taskID, account, amount)
}

// ReclaimUnspentEscrow returns the remaining escrow of a Cancelled task to
// its creator. The creator must witness the transaction. The escrow record
// is dropped afterwards, so the second reclaim fails.
//
// Produces EscrowReclaimed notification.
func ReclaimUnspentEscrow(taskID int) {
	ctx := storage.GetContext()
	t := getTask(ctx, taskID)

	if t.Status != cst.StatusCancelled {
		panic(cst.ErrNotCancelled)
	}
	common.CheckOwnerWitness(t.Creator)

	remaining := escrowOf(ctx, taskID)
	if remaining == 0 {
		panic(cst.ErrNothingToReclaim)
	}

	if !transferTokens(ctx, t.Creator, remaining, common.EscrowReclaimDetails(taskID)) {
		panic(cst.ErrReclaimFailed)
	}

	storage.Delete(ctx, escrowKey(taskID))
	runtime.Log("unspent escrow returned to creator")
	runtime.Notify("EscrowReclaimed", taskID, t.Creator, remaining)
}

// EscrowOf returns the remaining escrow balance of the task.
func EscrowOf(taskID int) int {
	ctx := storage.GetReadOnlyContext()
	return escrowOf(ctx, taskID)
}

// OwedTo returns the amount of failed payouts recorded for the account on
// the task.
func OwedTo(taskID int, account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	owed := storage.Get(ctx, owedKey(taskID, account))
	if owed == nil {
		return 0
	}

	return owed.(int)
}

// payFromEscrow deducts amount from the task escrow and attempts the token
// transfer. Escrow is deducted even when the transfer is rejected: the
// amount then moves to the owed record of the payee instead of being paid,
// keeping escrow conservation intact. Under the current DHUB transfer rules
// a push from the contract's own funded account is never rejected, so the
// owed path can only trigger after a token contract update changes those
// rules.
func payFromEscrow(ctx storage.Context, taskID int, to interop.Hash160, amount int, details []byte) bool {
	remaining := escrowOf(ctx, taskID)
	if remaining < amount {
		panic(cst.ErrEscrowExhausted)
	}

	storage.Put(ctx, escrowKey(taskID), remaining-amount)

	if transferTokens(ctx, to, amount, details) {
		return true
	}

	key := owedKey(taskID, to)
	owed := storage.Get(ctx, key)
	if owed != nil {
		amount += owed.(int)
	}
	storage.Put(ctx, key, amount)

	runtime.Log("payout transfer rejected, amount recorded as owed")
	runtime.Notify("PayoutFailed", taskID, to, amount)

	return false
}

func transferTokens(ctx storage.Context, to interop.Hash160, amount int, details []byte) bool {
	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)

	return contract.Call(tokenContractAddr, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), to, amount, details).(bool)
}

func escrowOf(ctx storage.Context, taskID int) int {
	remaining := storage.Get(ctx, escrowKey(taskID))
	if remaining == nil {
		return 0
	}

	return remaining.(int)
}

func owedKey(taskID int, account interop.Hash160) []byte {
	key := append([]byte{owedPrefix}, convert.ToBytes(taskID)...)
	return append(key, account...)
}
