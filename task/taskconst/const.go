// Package taskconst contains constants shared between the Task contract and
// its off-chain consumers.
package taskconst

// Task status values. Completed and Cancelled are terminal: no transition
// leads out of them.
const (
	StatusOpen       = 0
	StatusInProgress = 1
	StatusCompleted  = 2
	StatusCancelled  = 3
)

// Task types mirror the kinds of data work the platform distinguishes.
const (
	TypeDataCollection = 0
	TypeDataLabeling   = 1
	TypeDataValidation = 2
	TypeDataCuration   = 3
)

const (
	// ErrInvalidParameters is returned on malformed task parameters: empty
	// title, non-positive rewards or counters, unknown task type or a broken
	// account argument.
	ErrInvalidParameters = "invalid task parameters"
	// ErrPastDeadline is returned when the task deadline is not in the future.
	ErrPastDeadline = "task deadline is in the past"
	// ErrInsufficientBalance is returned when the creator's DHUB balance
	// cannot cover the task escrow.
	ErrInsufficientBalance = "insufficient balance to fund task escrow"
	// ErrEscrowPull is returned when the escrow transfer from the creator
	// is rejected by the token contract.
	ErrEscrowPull = "can't pull escrow from task creator"
	// ErrNotFound is returned if the task is missing.
	ErrNotFound = "task does not exist"
	// ErrNotOpen is returned on operations that require an Open task.
	ErrNotOpen = "task is not open"
	// ErrNotCancelled is returned on escrow reclaim from a task that has not
	// been cancelled.
	ErrNotCancelled = "task is not cancelled"
	// ErrNotAuthorized is returned when the invoker is neither the task
	// creator nor the committee.
	ErrNotAuthorized = "caller is neither task creator nor committee"
	// ErrDuplicateReviewer is returned on repeated reviewer assignment.
	ErrDuplicateReviewer = "reviewer is already assigned to this task"
	// ErrCreatorCannotReview forbids self-dealing via the reviewer list.
	ErrCreatorCannotReview = "task creator cannot review own task"
	// ErrCreatorCannotSubmit forbids self-dealing via submissions.
	ErrCreatorCannotSubmit = "task creator cannot submit to own task"
	// ErrNoStatusChange is returned on idempotent status transitions.
	ErrNoStatusChange = "status transition must change task status"
	// ErrTerminalStatus is returned on transitions out of Completed or
	// Cancelled.
	ErrTerminalStatus = "task is in terminal status"
	// ErrDeadlinePassed is returned on submissions after the task deadline.
	ErrDeadlinePassed = "task deadline has passed"
	// ErrSubmissionCapReached is returned when the task has already collected
	// the required number of submissions.
	ErrSubmissionCapReached = "required number of submissions already collected"
	// ErrNotSubmissionContract guards settlement entry points.
	ErrNotSubmissionContract = "method must be invoked by the Submission contract"
	// ErrEscrowExhausted signals a payout that would overdraw task escrow.
	// With the escrow sizing formula it is unreachable and indicates state
	// corruption.
	ErrEscrowExhausted = "task escrow exhausted"
	// ErrNothingToReclaim is returned when cancelled task escrow is empty.
	ErrNothingToReclaim = "no unspent escrow to reclaim"
	// ErrNothingOwed is returned on redeeming payouts when no failed payout
	// is recorded for the account.
	ErrNothingOwed = "no failed payouts recorded for this account"
	// ErrRedeemFailed is returned when the token contract rejects an owed
	// payout transfer; the owed record stays intact for a later retry.
	ErrRedeemFailed = "can't transfer owed assets"
	// ErrReclaimFailed is returned when the token contract rejects the
	// escrow return transfer; the escrow record stays intact.
	ErrReclaimFailed = "can't return unspent escrow"
)
