package tests

import (
	"math/big"
	"testing"
	"time"

	"github.com/morgueye4/datahub-contract/common"
	"github.com/morgueye4/datahub-contract/submission/submissionconst"
	"github.com/morgueye4/datahub-contract/task/taskconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// reviewedTask is a funded task with a nominated reviewer board and a
// non-creator worker account.
type reviewedTask struct {
	id        int64
	creator   neotest.Signer
	worker    neotest.Signer
	reviewers []neotest.Signer
}

func newReviewedTask(t *testing.T, e *neotest.Executor, hub dataHub,
	requiredSubmissions, requiredValidations int64) reviewedTask {
	cTask := e.CommitteeInvoker(hub.task)

	rt := reviewedTask{
		creator: cTask.NewAccount(t),
		worker:  cTask.NewAccount(t),
	}
	rt.id = createFundedTask(t, e, hub, rt.creator, requiredSubmissions, requiredValidations)

	cCreator := cTask.WithSigners(rt.creator)
	for i := int64(0); i < requiredValidations; i++ {
		reviewer := cTask.NewAccount(t)
		cCreator.Invoke(t, stackitem.Null{}, "addReviewer", rt.id, reviewer.ScriptHash())
		rt.reviewers = append(rt.reviewers, reviewer)
	}

	return rt
}

func submitWork(t *testing.T, e *neotest.Executor, hub dataHub, rt reviewedTask) int64 {
	c := e.CommitteeInvoker(hub.submission)

	s, err := c.TestInvoke(t, "submissionCount")
	require.NoError(t, err)
	id := s.Pop().BigInt().Int64() + 1

	c.WithSigners(rt.worker).Invoke(t, id, "submit", rt.id, rt.worker.ScriptHash(), randomDataRef())
	return id
}

func castVote(t *testing.T, e *neotest.Executor, hub dataHub, submissionID int64,
	voter neotest.Signer, approve bool) {
	c := e.CommitteeInvoker(hub.submission).WithSigners(voter)
	c.Invoke(t, stackitem.Null{}, "castVote", submissionID, voter.ScriptHash(), approve)
}

func submissionStatus(t *testing.T, e *neotest.Executor, hub dataHub, id int64) int64 {
	s, err := e.CommitteeInvoker(hub.submission).TestInvoke(t, "get", id)
	require.NoError(t, err)
	return s.Pop().Array()[4].Value().(*big.Int).Int64()
}

func taskStatus(t *testing.T, e *neotest.Executor, hub dataHub, id int64) int64 {
	s, err := e.CommitteeInvoker(hub.task).TestInvoke(t, "get", id)
	require.NoError(t, err)
	return s.Pop().Array()[5].Value().(*big.Int).Int64()
}

func TestSubmit(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cSub := e.CommitteeInvoker(hub.submission)
	rt := newReviewedTask(t, e, hub, 1, 2)
	cWorker := cSub.WithSigners(rt.worker)

	cWorker.InvokeFail(t, submissionconst.ErrEmptyReference,
		"submit", rt.id, rt.worker.ScriptHash(), "")
	cWorker.InvokeFail(t, taskconst.ErrNotFound,
		"submit", 99, rt.worker.ScriptHash(), randomDataRef())
	cSub.WithSigners(rt.creator).InvokeFail(t, taskconst.ErrCreatorCannotSubmit,
		"submit", rt.id, rt.creator.ScriptHash(), randomDataRef())
	cSub.WithSigners(rt.creator).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"submit", rt.id, rt.worker.ScriptHash(), randomDataRef())

	id := submitWork(t, e, hub, rt)
	require.EqualValues(t, 1, id)
	cSub.Invoke(t, 1, "submissionCount")
	cSub.Invoke(t, 1, "submissionOf", rt.id, rt.worker.ScriptHash())
	require.EqualValues(t, submissionconst.StatusPending, submissionStatus(t, e, hub, id))

	cWorker.InvokeFail(t, submissionconst.ErrDuplicateSubmission,
		"submit", rt.id, rt.worker.ScriptHash(), randomDataRef())

	// The task required a single submission, so it is full now.
	other := cSub.NewAccount(t)
	cSub.WithSigners(other).InvokeFail(t, taskconst.ErrSubmissionCapReached,
		"submit", rt.id, other.ScriptHash(), randomDataRef())
}

func TestSubmitAfterDeadline(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	creator := cTask.NewAccount(t)
	worker := cTask.NewAccount(t)
	fundAccount(t, e, hub, creator.ScriptHash(), testReward+testReviewReward)

	// Block timestamps track the wall clock, so the deadline leaves the
	// creation block enough real time and the test then outwaits it before
	// submitting.
	deadline := int64(e.TopBlock(t).Timestamp) + 500
	cTask.WithSigners(creator).Invoke(t, 1, "createTask", creator.ScriptHash(),
		"label images", "label the referenced images", int64(taskconst.TypeDataLabeling),
		int64(testReward), int64(testReviewReward), 1, 1, deadline)

	time.Sleep(time.Until(time.UnixMilli(deadline)) + 100*time.Millisecond)
	e.CommitteeInvoker(hub.submission).WithSigners(worker).InvokeFail(t,
		taskconst.ErrDeadlinePassed, "submit", 1, worker.ScriptHash(), randomDataRef())
}

func TestSubmitToCancelledTask(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	rt := newReviewedTask(t, e, hub, 1, 2)
	e.CommitteeInvoker(hub.task).WithSigners(rt.creator).Invoke(t,
		stackitem.Null{}, "cancel", rt.id)

	e.CommitteeInvoker(hub.submission).WithSigners(rt.worker).InvokeFail(t,
		taskconst.ErrNotOpen, "submit", rt.id, rt.worker.ScriptHash(), randomDataRef())
}

// Unanimous approval: escrow is fully distributed and the task completes.
func TestConsensusApproval(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	cToken := e.CommitteeInvoker(hub.token)

	rt := newReviewedTask(t, e, hub, 1, 2)
	cTask.Invoke(t, 20, "escrowOf", rt.id)

	id := submitWork(t, e, hub, rt)

	castVote(t, e, hub, id, rt.reviewers[0], true)
	require.EqualValues(t, testReviewReward, balanceOf(t, cToken, rt.reviewers[0].ScriptHash()))
	require.EqualValues(t, submissionconst.StatusPending, submissionStatus(t, e, hub, id))
	cTask.Invoke(t, 15, "escrowOf", rt.id)

	castVote(t, e, hub, id, rt.reviewers[1], true)
	require.EqualValues(t, testReviewReward, balanceOf(t, cToken, rt.reviewers[1].ScriptHash()))
	require.EqualValues(t, testReward, balanceOf(t, cToken, rt.worker.ScriptHash()))
	require.EqualValues(t, submissionconst.StatusApproved, submissionStatus(t, e, hub, id))
	require.EqualValues(t, taskconst.StatusCompleted, taskStatus(t, e, hub, rt.id))
	cTask.Invoke(t, 0, "escrowOf", rt.id)
	require.EqualValues(t, 0, balanceOf(t, cToken, hub.task))
}

// Split vote: a tie is not a strict majority, the submission is rejected,
// reviewers are still paid and the creator reclaims the unspent escrow after
// cancellation.
func TestConsensusRejection(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	cToken := e.CommitteeInvoker(hub.token)

	rt := newReviewedTask(t, e, hub, 1, 2)
	id := submitWork(t, e, hub, rt)

	castVote(t, e, hub, id, rt.reviewers[0], true)
	castVote(t, e, hub, id, rt.reviewers[1], false)

	require.EqualValues(t, submissionconst.StatusRejected, submissionStatus(t, e, hub, id))
	require.EqualValues(t, 0, balanceOf(t, cToken, rt.worker.ScriptHash()))
	require.EqualValues(t, testReviewReward, balanceOf(t, cToken, rt.reviewers[0].ScriptHash()))
	require.EqualValues(t, testReviewReward, balanceOf(t, cToken, rt.reviewers[1].ScriptHash()))
	cTask.Invoke(t, 10, "escrowOf", rt.id)
	require.EqualValues(t, taskconst.StatusOpen, taskStatus(t, e, hub, rt.id))

	cCreator := cTask.WithSigners(rt.creator)
	cCreator.Invoke(t, stackitem.Null{}, "cancel", rt.id)
	cCreator.Invoke(t, stackitem.Null{}, "reclaimUnspentEscrow", rt.id)
	require.EqualValues(t, 10, balanceOf(t, cToken, rt.creator.ScriptHash()))
}

// The same vote multiset must decide the same way regardless of arrival
// order.
func TestConsensusOrderIndependence(t *testing.T) {
	run := func(t *testing.T, votes []bool, expected int64) {
		e := newExecutor(t)
		hub := deployDataHubContracts(t, e)

		rt := newReviewedTask(t, e, hub, 1, 3)
		id := submitWork(t, e, hub, rt)

		for i, approve := range votes {
			castVote(t, e, hub, id, rt.reviewers[i], approve)
		}
		require.EqualValues(t, expected, submissionStatus(t, e, hub, id))
	}

	t.Run("two approvals of three", func(t *testing.T) {
		run(t, []bool{true, true, false}, submissionconst.StatusApproved)
		run(t, []bool{false, true, true}, submissionconst.StatusApproved)
	})
	t.Run("one approval of three", func(t *testing.T) {
		run(t, []bool{true, false, false}, submissionconst.StatusRejected)
		run(t, []bool{false, false, true}, submissionconst.StatusRejected)
	})
}

func TestCastVoteChecks(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cSub := e.CommitteeInvoker(hub.submission)
	rt := newReviewedTask(t, e, hub, 1, 2)
	id := submitWork(t, e, hub, rt)

	r0 := rt.reviewers[0]
	cR0 := cSub.WithSigners(r0)

	cR0.InvokeFail(t, submissionconst.ErrNotFound,
		"castVote", 99, r0.ScriptHash(), true)
	cSub.WithSigners(rt.worker).InvokeFail(t, submissionconst.ErrSelfReview,
		"castVote", id, rt.worker.ScriptHash(), true)
	cSub.WithSigners(rt.creator).InvokeFail(t, submissionconst.ErrNotAuthorizedReviewer,
		"castVote", id, rt.creator.ScriptHash(), true)

	stranger := cSub.NewAccount(t)
	cSub.WithSigners(stranger).InvokeFail(t, submissionconst.ErrNotAuthorizedReviewer,
		"castVote", id, stranger.ScriptHash(), true)
	cSub.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"castVote", id, r0.ScriptHash(), true)

	cR0.Invoke(t, stackitem.Null{}, "castVote", id, r0.ScriptHash(), true)
	cSub.Invoke(t, true, "hasVoted", id, r0.ScriptHash())
	cSub.Invoke(t, true, "hasApproved", id, r0.ScriptHash())
	cSub.Invoke(t, false, "hasRejected", id, r0.ScriptHash())

	// One vote per reviewer, whichever the direction.
	cR0.InvokeFail(t, submissionconst.ErrAlreadyVoted,
		"castVote", id, r0.ScriptHash(), true)
	cR0.InvokeFail(t, submissionconst.ErrAlreadyVoted,
		"castVote", id, r0.ScriptHash(), false)

	// Decide the submission, then voting is over for good.
	castVote(t, e, hub, id, rt.reviewers[1], true)
	require.EqualValues(t, submissionconst.StatusApproved, submissionStatus(t, e, hub, id))

	cTask := e.CommitteeInvoker(hub.task)
	cTask.WithSigners(rt.creator).InvokeFail(t, taskconst.ErrTerminalStatus,
		"updateStatus", rt.id, int64(taskconst.StatusOpen))
}

func TestCastVoteOnDecidedSubmission(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	// Three reviewers, two validations: the third one is late.
	cTask := e.CommitteeInvoker(hub.task)
	rt := newReviewedTask(t, e, hub, 1, 2)
	late := cTask.NewAccount(t)
	cTask.WithSigners(rt.creator).Invoke(t, stackitem.Null{}, "addReviewer", rt.id, late.ScriptHash())

	id := submitWork(t, e, hub, rt)
	castVote(t, e, hub, id, rt.reviewers[0], true)
	castVote(t, e, hub, id, rt.reviewers[1], true)

	e.CommitteeInvoker(hub.submission).WithSigners(late).InvokeFail(t,
		submissionconst.ErrNotPending, "castVote", id, late.ScriptHash(), false)
}

func TestCastVoteOnCancelledTask(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	rt := newReviewedTask(t, e, hub, 2, 2)
	id := submitWork(t, e, hub, rt)

	e.CommitteeInvoker(hub.task).WithSigners(rt.creator).Invoke(t,
		stackitem.Null{}, "cancel", rt.id)

	e.CommitteeInvoker(hub.submission).WithSigners(rt.reviewers[0]).InvokeFail(t,
		submissionconst.ErrTaskNotActive, "castVote", id, rt.reviewers[0].ScriptHash(), true)
}

// Tasks without a nominated board accept votes from any DAO member.
func TestOpenMembershipReview(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	cSub := e.CommitteeInvoker(hub.submission)
	cMember := e.CommitteeInvoker(hub.membership)

	creator := cTask.NewAccount(t)
	worker := cTask.NewAccount(t)
	member := cTask.NewAccount(t)

	id := createFundedTask(t, e, hub, creator, 1, 1)
	rt := reviewedTask{id: id, creator: creator, worker: worker}
	subID := submitWork(t, e, hub, rt)

	cSub.WithSigners(member).InvokeFail(t, submissionconst.ErrNotAuthorizedReviewer,
		"castVote", subID, member.ScriptHash(), true)

	fundAccount(t, e, hub, member.ScriptHash(), minMemberStake)
	cMember.WithSigners(member).Invoke(t, stackitem.Null{}, "join",
		member.ScriptHash(), minMemberStake)
	cTask.Invoke(t, true, "isAuthorizedReviewer", id, member.ScriptHash())
	cTask.Invoke(t, false, "isAuthorizedReviewer", id, creator.ScriptHash())

	castVote(t, e, hub, subID, member, true)
	require.EqualValues(t, submissionconst.StatusApproved, submissionStatus(t, e, hub, subID))
	require.EqualValues(t, taskconst.StatusCompleted, taskStatus(t, e, hub, id))
}

func TestGetTaskSubmissions(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cSub := e.CommitteeInvoker(hub.submission)
	rt := newReviewedTask(t, e, hub, 2, 2)

	first := submitWork(t, e, hub, rt)
	second := cSub.NewAccount(t)
	cSub.WithSigners(second).Invoke(t, first+1, "submit",
		rt.id, second.ScriptHash(), randomDataRef())

	cSub.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(first),
		stackitem.Make(first + 1),
	}), "getTaskSubmissions", rt.id)
	cSub.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "getTaskSubmissions", 99)
}
