package tests

import (
	"testing"

	"github.com/morgueye4/datahub-contract/common"
	"github.com/morgueye4/datahub-contract/task/taskconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	testReward       = 10
	testReviewReward = 5
)

func taskDeadline(t *testing.T, e *neotest.Executor) int64 {
	return int64(e.TopBlock(t).Timestamp) + 3600_000
}

// createFundedTask mints exactly the escrow amount to the creator and
// registers a task with the given submission and validation requirements.
// Returns the ID of the new task.
func createFundedTask(t *testing.T, e *neotest.Executor, hub dataHub,
	creator neotest.Signer, requiredSubmissions, requiredValidations int64) int64 {
	escrow := testReward*requiredSubmissions +
		testReviewReward*requiredSubmissions*requiredValidations
	fundAccount(t, e, hub, creator.ScriptHash(), escrow)

	c := e.CommitteeInvoker(hub.task).WithSigners(creator)
	s, err := c.TestInvoke(t, "taskCount")
	require.NoError(t, err)
	id := s.Pop().BigInt().Int64() + 1

	c.Invoke(t, id, "createTask", creator.ScriptHash(),
		"label images", "label the referenced images", int64(taskconst.TypeDataLabeling),
		int64(testReward), int64(testReviewReward),
		requiredSubmissions, requiredValidations, taskDeadline(t, e))
	return id
}

func TestCreateTask(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	cToken := e.CommitteeInvoker(hub.token)
	creator := cTask.NewAccount(t)
	cCreator := cTask.WithSigners(creator)

	deadline := taskDeadline(t, e)

	t.Run("invalid parameters", func(t *testing.T) {
		cCreator.InvokeFail(t, taskconst.ErrInvalidParameters, "createTask",
			creator.ScriptHash(), "", "d", int64(taskconst.TypeDataLabeling),
			10, 5, 1, 1, deadline)
		cCreator.InvokeFail(t, taskconst.ErrInvalidParameters, "createTask",
			creator.ScriptHash(), "task", "d", int64(taskconst.TypeDataLabeling),
			0, 5, 1, 1, deadline)
		cCreator.InvokeFail(t, taskconst.ErrInvalidParameters, "createTask",
			creator.ScriptHash(), "task", "d", int64(taskconst.TypeDataLabeling),
			10, 5, 0, 1, deadline)
		cCreator.InvokeFail(t, taskconst.ErrInvalidParameters, "createTask",
			creator.ScriptHash(), "task", "d", 42,
			10, 5, 1, 1, deadline)
	})

	t.Run("witness", func(t *testing.T) {
		cTask.WithSigners(cTask.NewAccount(t)).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"createTask", creator.ScriptHash(), "task", "d", int64(taskconst.TypeDataLabeling),
			10, 5, 1, 1, deadline)
	})

	t.Run("past deadline", func(t *testing.T) {
		cCreator.InvokeFail(t, taskconst.ErrPastDeadline, "createTask",
			creator.ScriptHash(), "task", "d", int64(taskconst.TypeDataLabeling),
			10, 5, 1, 1, 1)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		cCreator.InvokeFail(t, taskconst.ErrInsufficientBalance, "createTask",
			creator.ScriptHash(), "task", "d", int64(taskconst.TypeDataLabeling),
			10, 5, 1, 1, deadline)
	})

	// reward*2 + reviewReward*2*3.
	id := createFundedTask(t, e, hub, creator, 2, 3)
	require.EqualValues(t, 1, id)

	cTask.Invoke(t, 1, "taskCount")
	cTask.Invoke(t, 50, "escrowOf", id)
	require.EqualValues(t, 0, balanceOf(t, cToken, creator.ScriptHash()))
	require.EqualValues(t, 50, balanceOf(t, cToken, hub.task))

	cTask.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make(id)}),
		"tasksOf", creator.ScriptHash())
	cTask.Invoke(t, stackitem.NewArray([]stackitem.Item{}),
		"tasksOf", cTask.NewAccount(t).ScriptHash())

	cTask.InvokeFail(t, taskconst.ErrNotFound, "get", 99)
}

func TestAddReviewer(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	creator := cTask.NewAccount(t)
	reviewer := cTask.NewAccount(t)
	stranger := cTask.NewAccount(t)

	id := createFundedTask(t, e, hub, creator, 1, 1)
	cCreator := cTask.WithSigners(creator)

	cTask.WithSigners(stranger).InvokeFail(t, taskconst.ErrNotAuthorized,
		"addReviewer", id, reviewer.ScriptHash())

	cCreator.Invoke(t, stackitem.Null{}, "addReviewer", id, reviewer.ScriptHash())
	cTask.Invoke(t, true, "isReviewer", id, reviewer.ScriptHash())
	cTask.Invoke(t, false, "isReviewer", id, stranger.ScriptHash())

	cCreator.InvokeFail(t, taskconst.ErrDuplicateReviewer,
		"addReviewer", id, reviewer.ScriptHash())
	cCreator.InvokeFail(t, taskconst.ErrCreatorCannotReview,
		"addReviewer", id, creator.ScriptHash())

	// Committee may nominate as well.
	cTask.Invoke(t, stackitem.Null{}, "addReviewer", id, stranger.ScriptHash())

	cCreator.Invoke(t, stackitem.Null{}, "cancel", id)
	cCreator.InvokeFail(t, taskconst.ErrNotOpen,
		"addReviewer", id, cTask.NewAccount(t).ScriptHash())
}

func TestTaskStatusTransitions(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	creator := cTask.NewAccount(t)

	id := createFundedTask(t, e, hub, creator, 1, 1)
	cCreator := cTask.WithSigners(creator)

	cCreator.InvokeFail(t, taskconst.ErrNoStatusChange,
		"updateStatus", id, int64(taskconst.StatusOpen))
	cCreator.InvokeFail(t, taskconst.ErrInvalidParameters,
		"updateStatus", id, 42)

	cCreator.Invoke(t, stackitem.Null{}, "updateStatus", id, int64(taskconst.StatusInProgress))

	// No way back to Open, no cancellation of started work.
	cCreator.InvokeFail(t, taskconst.ErrInvalidParameters,
		"updateStatus", id, int64(taskconst.StatusOpen))
	cCreator.InvokeFail(t, taskconst.ErrNotOpen, "cancel", id)

	cCreator.Invoke(t, stackitem.Null{}, "updateStatus", id, int64(taskconst.StatusCompleted))

	// Terminal statuses are absorbing.
	cCreator.InvokeFail(t, taskconst.ErrTerminalStatus,
		"updateStatus", id, int64(taskconst.StatusInProgress))
	cCreator.InvokeFail(t, taskconst.ErrTerminalStatus,
		"updateStatus", id, int64(taskconst.StatusCancelled))

	id2 := createFundedTask(t, e, hub, creator, 1, 1)
	cCreator.Invoke(t, stackitem.Null{}, "cancel", id2)
	cCreator.InvokeFail(t, taskconst.ErrTerminalStatus,
		"updateStatus", id2, int64(taskconst.StatusCompleted))
}

func TestSettlementGuards(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	creator := cTask.NewAccount(t)
	id := createFundedTask(t, e, hub, creator, 1, 1)

	// Settlement and accounting entry points are for the Submission
	// contract only, even the committee cannot call them directly.
	cTask.InvokeFail(t, taskconst.ErrNotSubmissionContract,
		"registerSubmission", id, creator.ScriptHash())
	cTask.InvokeFail(t, taskconst.ErrNotSubmissionContract,
		"payoutSubmission", id, creator.ScriptHash())
	cTask.InvokeFail(t, taskconst.ErrNotSubmissionContract,
		"payoutReviewer", id, creator.ScriptHash())
}

func TestReclaimUnspentEscrow(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	cToken := e.CommitteeInvoker(hub.token)
	creator := cTask.NewAccount(t)
	stranger := cTask.NewAccount(t)

	id := createFundedTask(t, e, hub, creator, 1, 2)
	cCreator := cTask.WithSigners(creator)

	cCreator.InvokeFail(t, taskconst.ErrNotCancelled, "reclaimUnspentEscrow", id)

	cCreator.Invoke(t, stackitem.Null{}, "cancel", id)
	cTask.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"reclaimUnspentEscrow", id)

	cCreator.Invoke(t, stackitem.Null{}, "reclaimUnspentEscrow", id)
	require.EqualValues(t, 20, balanceOf(t, cToken, creator.ScriptHash()))
	require.EqualValues(t, 0, balanceOf(t, cToken, hub.task))
	cTask.Invoke(t, 0, "escrowOf", id)

	cCreator.InvokeFail(t, taskconst.ErrNothingToReclaim, "reclaimUnspentEscrow", id)
}

func TestRedeemPayout(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cTask := e.CommitteeInvoker(hub.task)
	creator := cTask.NewAccount(t)
	id := createFundedTask(t, e, hub, creator, 1, 1)

	cTask.Invoke(t, 0, "owedTo", id, creator.ScriptHash())
	cTask.WithSigners(creator).InvokeFail(t, taskconst.ErrNothingOwed,
		"redeemPayout", id, creator.ScriptHash())
}
