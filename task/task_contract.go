package task

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/morgueye4/datahub-contract/common"
	cst "github.com/morgueye4/datahub-contract/task/taskconst"
)

// Task is a single unit of rewarded data work. The whole record is stored
// serialized under the task ID key; reviewer list is small (bounded by the
// creator) and kept inline.
type Task struct {
	ID                       int
	Creator                  interop.Hash160
	Title                    string
	Description              string
	TaskType                 int
	Status                   int
	RewardPerSubmission      int
	RewardPerReview          int
	RequiredSubmissions      int
	RequiredValidations      int
	Deadline                 int
	Reviewers                []interop.Hash160
	SubmissionCount          int
	ValidatedSubmissionCount int
	CreatedAt                int
	CompletedAt              int
}

const (
	taskCounterKey = 'c'

	taskPrefix    = 't'
	escrowPrefix  = 'e'
	owedPrefix    = 'o'
	creatorPrefix = 'x'

	tokenContractKey      = 'T'
	submissionContractKey = 'S'
	membershipContractKey = 'M'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	addrToken := args[0].(interop.Hash160)
	addrSubmission := args[1].(interop.Hash160)
	addrMembership := args[2].(interop.Hash160)

	if len(addrToken) != interop.Hash160Len ||
		len(addrSubmission) != interop.Hash160Len ||
		len(addrMembership) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, submissionContractKey, addrSubmission)
	storage.Put(ctx, membershipContractKey, addrMembership)

	runtime.Log("task contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("task contract updated")
}

// CreateTask creates a new Open task and atomically locks the full reward
// budget of the task in escrow:
//
//	rewardPerSubmission*requiredSubmissions +
//	rewardPerReview*requiredSubmissions*requiredValidations
//
// DHUB tokens are pulled from the creator account, so the creator must
// witness the transaction. If the pull fails, the whole invocation fails and
// no task is created. Returns the ID of the new task.
//
// Produces TaskCreated notification.
func CreateTask(creator interop.Hash160, title, description string, taskType,
	rewardPerSubmission, rewardPerReview, requiredSubmissions,
	requiredValidations, deadline int) int {
	ctx := storage.GetContext()

	if len(creator) != interop.Hash160Len || len(title) == 0 ||
		rewardPerSubmission <= 0 || rewardPerReview <= 0 ||
		requiredSubmissions <= 0 || requiredValidations <= 0 ||
		taskType < cst.TypeDataCollection || taskType > cst.TypeDataCuration {
		panic(cst.ErrInvalidParameters)
	}

	common.CheckOwnerWitness(creator)

	now := runtime.GetTime()
	if deadline <= now {
		panic(cst.ErrPastDeadline)
	}

	totalReward := rewardPerSubmission*requiredSubmissions +
		rewardPerReview*requiredSubmissions*requiredValidations

	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	balance := contract.Call(tokenContractAddr, "balanceOf", contract.ReadOnly, creator).(int)
	if balance < totalReward {
		panic(cst.ErrInsufficientBalance)
	}

	id := storage.Get(ctx, taskCounterKey)
	var taskID int
	if id == nil {
		taskID = 1
	} else {
		taskID = id.(int) + 1
	}
	storage.Put(ctx, taskCounterKey, taskID)

	ok := contract.Call(tokenContractAddr, "transfer", contract.All,
		creator, runtime.GetExecutingScriptHash(), totalReward,
		common.EscrowDepositDetails(taskID)).(bool)
	if !ok {
		panic(cst.ErrEscrowPull)
	}

	t := Task{
		ID:                  taskID,
		Creator:             creator,
		Title:               title,
		Description:         description,
		TaskType:            taskType,
		Status:              cst.StatusOpen,
		RewardPerSubmission: rewardPerSubmission,
		RewardPerReview:     rewardPerReview,
		RequiredSubmissions: requiredSubmissions,
		RequiredValidations: requiredValidations,
		Deadline:            deadline,
		Reviewers:           []interop.Hash160{},
		CreatedAt:           now,
	}

	putTask(ctx, t)
	storage.Put(ctx, escrowKey(taskID), totalReward)
	appendToCreatorIndex(ctx, creator, taskID)

	runtime.Log("created new task")
	runtime.Notify("TaskCreated", taskID, creator, totalReward)

	return taskID
}

// AddReviewer nominates an account as an authorized reviewer of the task.
// It can be invoked by the task creator or by committee while the task is
// Open. The creator can never be nominated.
//
// Produces ReviewerAdded notification.
func AddReviewer(taskID int, reviewer interop.Hash160) {
	ctx := storage.GetContext()
	t := getTask(ctx, taskID)

	checkCreatorOrCommittee(t.Creator)

	if t.Status != cst.StatusOpen {
		panic(cst.ErrNotOpen)
	}
	if len(reviewer) != interop.Hash160Len {
		panic(cst.ErrInvalidParameters)
	}
	if common.BytesEqual(reviewer, t.Creator) {
		panic(cst.ErrCreatorCannotReview)
	}

	for i := range t.Reviewers {
		if common.BytesEqual(t.Reviewers[i], reviewer) {
			panic(cst.ErrDuplicateReviewer)
		}
	}

	t.Reviewers = append(t.Reviewers, reviewer)
	putTask(ctx, t)

	runtime.Notify("ReviewerAdded", taskID, reviewer)
}

// UpdateStatus moves the task to a new lifecycle status. It can be invoked
// by the task creator or by committee. Idempotent transitions are rejected,
// terminal statuses are absorbing and cancellation is possible only while
// the task is Open. Completing a task records the completion time.
//
// Produces TaskStatusUpdated notification.
func UpdateStatus(taskID int, newStatus int) {
	ctx := storage.GetContext()
	t := getTask(ctx, taskID)

	checkCreatorOrCommittee(t.Creator)
	updateStatus(ctx, t, newStatus)
}

// Cancel cancels an Open task. This is a shorthand for UpdateStatus with the
// Cancelled status; unspent escrow becomes reclaimable by the creator via
// ReclaimUnspentEscrow.
func Cancel(taskID int) {
	ctx := storage.GetContext()
	t := getTask(ctx, taskID)

	checkCreatorOrCommittee(t.Creator)
	updateStatus(ctx, t, cst.StatusCancelled)
}

func updateStatus(ctx storage.Context, t Task, newStatus int) {
	if newStatus < cst.StatusOpen || newStatus > cst.StatusCancelled {
		panic(cst.ErrInvalidParameters)
	}
	if newStatus == t.Status {
		panic(cst.ErrNoStatusChange)
	}
	if isTerminal(t.Status) {
		panic(cst.ErrTerminalStatus)
	}
	// No way back to Open and no cancellation of started work.
	if newStatus == cst.StatusOpen {
		panic(cst.ErrInvalidParameters)
	}
	if newStatus == cst.StatusCancelled && t.Status != cst.StatusOpen {
		panic(cst.ErrNotOpen)
	}

	oldStatus := t.Status
	t.Status = newStatus
	if newStatus == cst.StatusCompleted {
		t.CompletedAt = runtime.GetTime()
	}
	putTask(ctx, t)

	runtime.Log("task status updated")
	runtime.Notify("TaskStatusUpdated", t.ID, oldStatus, newStatus)
}

// RegisterSubmission accounts for a new submission on the task. It can be
// invoked only by the Submission contract and performs the task-side checks
// of the submit operation: the task must be Open, before its deadline, below
// its submission cap, and the submitter must not be the creator. The
// submission counter is checked and incremented in the same invocation, so
// concurrent submitters cannot oversubscribe the task.
func RegisterSubmission(taskID int, submitter interop.Hash160) {
	ctx := storage.GetContext()
	common.CallerIsKnownContract(ctx, submissionContractKey, cst.ErrNotSubmissionContract)

	t := getTask(ctx, taskID)
	if t.Status != cst.StatusOpen {
		panic(cst.ErrNotOpen)
	}
	if common.BytesEqual(submitter, t.Creator) {
		panic(cst.ErrCreatorCannotSubmit)
	}
	if runtime.GetTime() > t.Deadline {
		panic(cst.ErrDeadlinePassed)
	}
	if t.SubmissionCount >= t.RequiredSubmissions {
		panic(cst.ErrSubmissionCapReached)
	}

	t.SubmissionCount = t.SubmissionCount + 1
	putTask(ctx, t)
}

// Get returns the task record.
func Get(taskID int) Task {
	ctx := storage.GetReadOnlyContext()
	return getTask(ctx, taskID)
}

// GetReviewers returns the nominated reviewer list of the task. An empty
// list means the task is reviewed under the open membership policy.
func GetReviewers(taskID int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getTask(ctx, taskID).Reviewers
}

// IsReviewer returns true if the account is on the nominated reviewer list
// of the task.
func IsReviewer(taskID int, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	t := getTask(ctx, taskID)

	for i := range t.Reviewers {
		if common.BytesEqual(t.Reviewers[i], account) {
			return true
		}
	}

	return false
}

// IsAuthorizedReviewer tells whether the account may vote on submissions of
// the task: a member of the nominated reviewer list or, when no reviewers
// were nominated, any account accepted by the Membership contract. The task
// creator is never authorized.
func IsAuthorizedReviewer(taskID int, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	t := getTask(ctx, taskID)

	if common.BytesEqual(account, t.Creator) {
		return false
	}

	if len(t.Reviewers) > 0 {
		for i := range t.Reviewers {
			if common.BytesEqual(t.Reviewers[i], account) {
				return true
			}
		}
		return false
	}

	membershipContractAddr := storage.Get(ctx, membershipContractKey).(interop.Hash160)
	return contract.Call(membershipContractAddr, "isMember",
		contract.ReadStates|contract.AllowCall, account).(bool)
}

// TasksOf returns IDs of the tasks created by the account, oldest first.
func TasksOf(creator interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, creatorKey(creator))
	if data == nil {
		return []int{}
	}

	return std.Deserialize(data.([]byte)).([]int)
}

// TaskCount returns the number of tasks ever created. Task IDs are dense:
// 1..TaskCount.
func TaskCount() int {
	ctx := storage.GetReadOnlyContext()
	count := storage.Get(ctx, taskCounterKey)
	if count == nil {
		return 0
	}

	return count.(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkCreatorOrCommittee(creator interop.Hash160) {
	if runtime.CheckWitness(creator) {
		return
	}
	if runtime.CheckWitness(common.CommitteeAddress()) {
		return
	}

	panic(cst.ErrNotAuthorized)
}

func isTerminal(status int) bool {
	return status == cst.StatusCompleted || status == cst.StatusCancelled
}

func taskKey(taskID int) []byte {
	return append([]byte{taskPrefix}, convert.ToBytes(taskID)...)
}

func escrowKey(taskID int) []byte {
	return append([]byte{escrowPrefix}, convert.ToBytes(taskID)...)
}

func creatorKey(creator interop.Hash160) []byte {
	return append([]byte{creatorPrefix}, creator...)
}

func appendToCreatorIndex(ctx storage.Context, creator interop.Hash160, taskID int) {
	key := creatorKey(creator)

	var ids []int
	data := storage.Get(ctx, key)
	if data != nil {
		ids = std.Deserialize(data.([]byte)).([]int)
	}

	ids = append(ids, taskID)
	common.SetSerialized(ctx, key, ids)
}

func getTask(ctx storage.Context, taskID int) Task {
	data := storage.Get(ctx, taskKey(taskID))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Task)
}

func putTask(ctx storage.Context, t Task) {
	common.SetSerialized(ctx, taskKey(t.ID), t)
}
