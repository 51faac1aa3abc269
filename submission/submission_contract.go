package submission

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/morgueye4/datahub-contract/common"
	"github.com/morgueye4/datahub-contract/submission/submissionconst"
	"github.com/morgueye4/datahub-contract/task/taskconst"
)

// Submission is a single piece of work delivered against a task. The data
// itself lives off-chain, DataRef is its content address.
type Submission struct {
	ID              int
	TaskID          int
	Submitter       interop.Hash160
	DataRef         string
	Status          int
	ValidationCount int
	ApprovedBy      []interop.Hash160
	RejectedBy      []interop.Hash160
	CreatedAt       int
}

// task mirrors the record layout of the Task contract for cross-contract
// calls. Field order must not diverge.
type task struct {
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
	submissionCounterKey = 'c'

	submissionPrefix = 's'
	dedupePrefix     = 'd'
	taskIndexPrefix  = 'x'

	taskContractKey = 'T'
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
	addrTask := args[0].(interop.Hash160)
	if len(addrTask) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, taskContractKey, addrTask)

	runtime.Log("submission contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("submission contract updated")
}

// Submit registers a new Pending submission of the submitter against the
// task. The submitter must witness the transaction and may submit to a task
// only once. Task-side conditions (the task is Open, before its deadline,
// below the submission cap, the submitter is not the creator) are checked by
// the Task contract in the same invocation, together with the increment of
// the task submission counter. Returns the ID of the new submission.
//
// Produces SubmissionCreated notification.
func Submit(taskID int, submitter interop.Hash160, dataRef string) int {
	if len(submitter) != interop.Hash160Len {
		panic(submissionconst.ErrInvalidAccount)
	}
	if len(dataRef) == 0 {
		panic(submissionconst.ErrEmptyReference)
	}

	common.CheckOwnerWitness(submitter)

	ctx := storage.GetContext()
	dKey := dedupeKey(taskID, submitter)
	if storage.Get(ctx, dKey) != nil {
		panic(submissionconst.ErrDuplicateSubmission)
	}

	taskContractAddr := storage.Get(ctx, taskContractKey).(interop.Hash160)
	contract.Call(taskContractAddr, "registerSubmission", contract.All, taskID, submitter)

	id := storage.Get(ctx, submissionCounterKey)
	var submissionID int
	if id == nil {
		submissionID = 1
	} else {
		submissionID = id.(int) + 1
	}
	storage.Put(ctx, submissionCounterKey, submissionID)

	s := Submission{
		ID:         submissionID,
		TaskID:     taskID,
		Submitter:  submitter,
		DataRef:    dataRef,
		Status:     submissionconst.StatusPending,
		ApprovedBy: []interop.Hash160{},
		RejectedBy: []interop.Hash160{},
		CreatedAt:  runtime.GetTime(),
	}

	putSubmission(ctx, s)
	storage.Put(ctx, dKey, submissionID)
	appendToTaskIndex(ctx, taskID, submissionID)

	runtime.Log("new submission registered")
	runtime.Notify("SubmissionCreated", submissionID, taskID, submitter)

	return submissionID
}

// CastVote records an approval or rejection of a Pending submission by an
// authorized reviewer of its task. The voter must witness the transaction,
// cannot be the submitter and votes on a submission at most once. The review
// reward is paid to the voter for the vote itself, whichever way it goes.
//
// Once the number of votes reaches the required validation count of the
// task, the submission is decided: a strict majority of approvals makes it
// Approved and pays the submission reward to the submitter, anything less
// (ties included) makes it Rejected.
//
// Produces VoteCast notification, followed by SubmissionApproved or
// SubmissionRejected when the vote was decisive.
func CastVote(submissionID int, voter interop.Hash160, approve bool) {
	if len(voter) != interop.Hash160Len {
		panic(submissionconst.ErrInvalidAccount)
	}

	common.CheckOwnerWitness(voter)

	ctx := storage.GetContext()
	s := getSubmission(ctx, submissionID)
	if s.Status != submissionconst.StatusPending {
		panic(submissionconst.ErrNotPending)
	}
	if common.BytesEqual(voter, s.Submitter) {
		panic(submissionconst.ErrSelfReview)
	}
	if hasVoted(s, voter) {
		panic(submissionconst.ErrAlreadyVoted)
	}

	taskContractAddr := storage.Get(ctx, taskContractKey).(interop.Hash160)
	t := contract.Call(taskContractAddr, "get", contract.ReadOnly, s.TaskID).(task)
	if t.Status == taskconst.StatusCompleted || t.Status == taskconst.StatusCancelled {
		panic(submissionconst.ErrTaskNotActive)
	}

	authorized := contract.Call(taskContractAddr, "isAuthorizedReviewer",
		contract.ReadStates|contract.AllowCall, s.TaskID, voter).(bool)
	if !authorized {
		panic(submissionconst.ErrNotAuthorizedReviewer)
	}

	if approve {
		s.ApprovedBy = append(s.ApprovedBy, voter)
	} else {
		s.RejectedBy = append(s.RejectedBy, voter)
	}
	s.ValidationCount = s.ValidationCount + 1

	contract.Call(taskContractAddr, "payoutReviewer", contract.All, s.TaskID, voter)
	runtime.Notify("VoteCast", submissionID, voter, approve)

	if s.ValidationCount >= t.RequiredValidations {
		if len(s.ApprovedBy)*2 > t.RequiredValidations {
			s.Status = submissionconst.StatusApproved
			contract.Call(taskContractAddr, "payoutSubmission", contract.All, s.TaskID, s.Submitter)
			runtime.Log("submission approved")
			runtime.Notify("SubmissionApproved", submissionID, s.TaskID, s.Submitter)
		} else {
			s.Status = submissionconst.StatusRejected
			runtime.Log("submission rejected")
			runtime.Notify("SubmissionRejected", submissionID, s.TaskID)
		}
	}

	putSubmission(ctx, s)
}

// Get returns the submission record.
func Get(submissionID int) Submission {
	ctx := storage.GetReadOnlyContext()
	return getSubmission(ctx, submissionID)
}

// GetTaskSubmissions returns IDs of all submissions registered against the
// task, in submission order.
func GetTaskSubmissions(taskID int) []int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, taskIndexKey(taskID))
	if data == nil {
		return []int{}
	}

	return std.Deserialize(data.([]byte)).([]int)
}

// SubmissionOf returns the ID of the submission the account made to the
// task, or 0 if there is none.
func SubmissionOf(taskID int, submitter interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	id := storage.Get(ctx, dedupeKey(taskID, submitter))
	if id == nil {
		return 0
	}

	return id.(int)
}

// SubmissionCount returns the number of submissions ever registered.
// Submission IDs are dense: 1..SubmissionCount.
func SubmissionCount() int {
	ctx := storage.GetReadOnlyContext()
	count := storage.Get(ctx, submissionCounterKey)
	if count == nil {
		return 0
	}

	return count.(int)
}

// HasVoted returns true if the account has voted on the submission.
func HasVoted(submissionID int, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return hasVoted(getSubmission(ctx, submissionID), account)
}

// HasApproved returns true if the account has approved the submission.
func HasApproved(submissionID int, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	s := getSubmission(ctx, submissionID)

	return containsAccount(s.ApprovedBy, account)
}

// HasRejected returns true if the account has rejected the submission.
func HasRejected(submissionID int, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	s := getSubmission(ctx, submissionID)

	return containsAccount(s.RejectedBy, account)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func hasVoted(s Submission, account interop.Hash160) bool {
	return containsAccount(s.ApprovedBy, account) ||
		containsAccount(s.RejectedBy, account)
}

func containsAccount(list []interop.Hash160, account interop.Hash160) bool {
	for i := range list {
		if common.BytesEqual(list[i], account) {
			return true
		}
	}

	return false
}

func appendToTaskIndex(ctx storage.Context, taskID, submissionID int) {
	key := taskIndexKey(taskID)

	var ids []int
	data := storage.Get(ctx, key)
	if data != nil {
		ids = std.Deserialize(data.([]byte)).([]int)
	}

	ids = append(ids, submissionID)
	common.SetSerialized(ctx, key, ids)
}

func submissionKey(submissionID int) []byte {
	return append([]byte{submissionPrefix}, convert.ToBytes(submissionID)...)
}

func dedupeKey(taskID int, submitter interop.Hash160) []byte {
	key := append([]byte{dedupePrefix}, convert.ToBytes(taskID)...)
	return append(key, submitter...)
}

func taskIndexKey(taskID int) []byte {
	return append([]byte{taskIndexPrefix}, convert.ToBytes(taskID)...)
}

func getSubmission(ctx storage.Context, submissionID int) Submission {
	data := storage.Get(ctx, submissionKey(submissionID))
	if data == nil {
		panic(submissionconst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Submission)
}

func putSubmission(ctx storage.Context, s Submission) {
	common.SetSerialized(ctx, submissionKey(s.ID), s)
}
