// Package task contains RPC wrappers for DataHub Task contract.
package task

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// TaskTask is a contract-specific task.Task type used by its methods.
type TaskTask struct {
	ID *big.Int
	Creator util.Uint160
	Title string
	Description string
	TaskType *big.Int
	Status *big.Int
	RewardPerSubmission *big.Int
	RewardPerReview *big.Int
	RequiredSubmissions *big.Int
	RequiredValidations *big.Int
	Deadline *big.Int
	Reviewers []util.Uint160
	SubmissionCount *big.Int
	ValidatedSubmissionCount *big.Int
	CreatedAt *big.Int
	CompletedAt *big.Int
}

// TaskCreatedEvent represents "TaskCreated" event emitted by the contract.
type TaskCreatedEvent struct {
	TaskID *big.Int
	Creator util.Uint160
	Amount *big.Int
}

// ReviewerAddedEvent represents "ReviewerAdded" event emitted by the contract.
type ReviewerAddedEvent struct {
	TaskID *big.Int
	Reviewer util.Uint160
}

// TaskStatusUpdatedEvent represents "TaskStatusUpdated" event emitted by the contract.
type TaskStatusUpdatedEvent struct {
	TaskID *big.Int
	OldStatus *big.Int
	NewStatus *big.Int
}

// TaskCompletedEvent represents "TaskCompleted" event emitted by the contract.
type TaskCompletedEvent struct {
	TaskID *big.Int
}

// SubmissionRewardPaidEvent represents "SubmissionRewardPaid" event emitted by the contract.
type SubmissionRewardPaidEvent struct {
	TaskID *big.Int
	Submitter util.Uint160
	Amount *big.Int
}

// ReviewRewardPaidEvent represents "ReviewRewardPaid" event emitted by the contract.
type ReviewRewardPaidEvent struct {
	TaskID *big.Int
	Reviewer util.Uint160
	Amount *big.Int
}

// PayoutFailedEvent represents "PayoutFailed" event emitted by the contract.
type PayoutFailedEvent struct {
	TaskID *big.Int
	Payee util.Uint160
	Owed *big.Int
}

// PayoutRedeemedEvent represents "PayoutRedeemed" event emitted by the contract.
type PayoutRedeemedEvent struct {
	TaskID *big.Int
	Payee util.Uint160
	Amount *big.Int
}

// EscrowReclaimedEvent represents "EscrowReclaimed" event emitted by the contract.
type EscrowReclaimedEvent struct {
	TaskID *big.Int
	Creator util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// EscrowOf invokes `escrowOf` method of contract.
func (c *ContractReader) EscrowOf(taskID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "escrowOf", taskID))
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(taskID *big.Int) (*TaskTask, error) {
	return itemToTaskTask(unwrap.Item(c.invoker.Call(c.hash, "get", taskID)))
}

// GetReviewers invokes `getReviewers` method of contract.
func (c *ContractReader) GetReviewers(taskID *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "getReviewers", taskID))
}

// IsAuthorizedReviewer invokes `isAuthorizedReviewer` method of contract.
func (c *ContractReader) IsAuthorizedReviewer(taskID *big.Int, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorizedReviewer", taskID, account))
}

// IsReviewer invokes `isReviewer` method of contract.
func (c *ContractReader) IsReviewer(taskID *big.Int, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isReviewer", taskID, account))
}

// OwedTo invokes `owedTo` method of contract.
func (c *ContractReader) OwedTo(taskID *big.Int, account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "owedTo", taskID, account))
}

// TaskCount invokes `taskCount` method of contract.
func (c *ContractReader) TaskCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "taskCount"))
}

// TasksOf invokes `tasksOf` method of contract.
func (c *ContractReader) TasksOf(creator util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "tasksOf", creator))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddReviewer creates a transaction invoking `addReviewer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddReviewer(taskID *big.Int, reviewer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addReviewer", taskID, reviewer)
}

// AddReviewerTransaction creates a transaction invoking `addReviewer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddReviewerTransaction(taskID *big.Int, reviewer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addReviewer", taskID, reviewer)
}

// AddReviewerUnsigned creates a transaction invoking `addReviewer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddReviewerUnsigned(taskID *big.Int, reviewer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addReviewer", nil, taskID, reviewer)
}

// Cancel creates a transaction invoking `cancel` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Cancel(taskID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancel", taskID)
}

// CancelTransaction creates a transaction invoking `cancel` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelTransaction(taskID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancel", taskID)
}

// CancelUnsigned creates a transaction invoking `cancel` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelUnsigned(taskID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancel", nil, taskID)
}

// CreateTask creates a transaction invoking `createTask` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateTask(creator util.Uint160, title string, description string, taskType *big.Int, rewardPerSubmission *big.Int, rewardPerReview *big.Int, requiredSubmissions *big.Int, requiredValidations *big.Int, deadline *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createTask", creator, title, description, taskType, rewardPerSubmission, rewardPerReview, requiredSubmissions, requiredValidations, deadline)
}

// CreateTaskTransaction creates a transaction invoking `createTask` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTaskTransaction(creator util.Uint160, title string, description string, taskType *big.Int, rewardPerSubmission *big.Int, rewardPerReview *big.Int, requiredSubmissions *big.Int, requiredValidations *big.Int, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createTask", creator, title, description, taskType, rewardPerSubmission, rewardPerReview, requiredSubmissions, requiredValidations, deadline)
}

// CreateTaskUnsigned creates a transaction invoking `createTask` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateTaskUnsigned(creator util.Uint160, title string, description string, taskType *big.Int, rewardPerSubmission *big.Int, rewardPerReview *big.Int, requiredSubmissions *big.Int, requiredValidations *big.Int, deadline *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createTask", nil, creator, title, description, taskType, rewardPerSubmission, rewardPerReview, requiredSubmissions, requiredValidations, deadline)
}

// PayoutReviewer creates a transaction invoking `payoutReviewer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PayoutReviewer(taskID *big.Int, reviewer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payoutReviewer", taskID, reviewer)
}

// PayoutReviewerTransaction creates a transaction invoking `payoutReviewer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayoutReviewerTransaction(taskID *big.Int, reviewer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payoutReviewer", taskID, reviewer)
}

// PayoutReviewerUnsigned creates a transaction invoking `payoutReviewer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayoutReviewerUnsigned(taskID *big.Int, reviewer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payoutReviewer", nil, taskID, reviewer)
}

// PayoutSubmission creates a transaction invoking `payoutSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PayoutSubmission(taskID *big.Int, submitter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payoutSubmission", taskID, submitter)
}

// PayoutSubmissionTransaction creates a transaction invoking `payoutSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayoutSubmissionTransaction(taskID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payoutSubmission", taskID, submitter)
}

// PayoutSubmissionUnsigned creates a transaction invoking `payoutSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayoutSubmissionUnsigned(taskID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payoutSubmission", nil, taskID, submitter)
}

// ReclaimUnspentEscrow creates a transaction invoking `reclaimUnspentEscrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReclaimUnspentEscrow(taskID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reclaimUnspentEscrow", taskID)
}

// ReclaimUnspentEscrowTransaction creates a transaction invoking `reclaimUnspentEscrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReclaimUnspentEscrowTransaction(taskID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reclaimUnspentEscrow", taskID)
}

// ReclaimUnspentEscrowUnsigned creates a transaction invoking `reclaimUnspentEscrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReclaimUnspentEscrowUnsigned(taskID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reclaimUnspentEscrow", nil, taskID)
}

// RedeemPayout creates a transaction invoking `redeemPayout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RedeemPayout(taskID *big.Int, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "redeemPayout", taskID, account)
}

// RedeemPayoutTransaction creates a transaction invoking `redeemPayout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RedeemPayoutTransaction(taskID *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "redeemPayout", taskID, account)
}

// RedeemPayoutUnsigned creates a transaction invoking `redeemPayout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RedeemPayoutUnsigned(taskID *big.Int, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "redeemPayout", nil, taskID, account)
}

// RegisterSubmission creates a transaction invoking `registerSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterSubmission(taskID *big.Int, submitter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerSubmission", taskID, submitter)
}

// RegisterSubmissionTransaction creates a transaction invoking `registerSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterSubmissionTransaction(taskID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerSubmission", taskID, submitter)
}

// RegisterSubmissionUnsigned creates a transaction invoking `registerSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterSubmissionUnsigned(taskID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerSubmission", nil, taskID, submitter)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateStatus creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateStatus(taskID *big.Int, newStatus *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateStatus", taskID, newStatus)
}

// UpdateStatusTransaction creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStatusTransaction(taskID *big.Int, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateStatus", taskID, newStatus)
}

// UpdateStatusUnsigned creates a transaction invoking `updateStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStatusUnsigned(taskID *big.Int, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateStatus", nil, taskID, newStatus)
}

// itemToTaskTask converts stack item into *TaskTask.
func itemToTaskTask(item stackitem.Item, err error) (*TaskTask, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TaskTask)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TaskTask from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TaskTask) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 16 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.TaskType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskType: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.RewardPerSubmission, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardPerSubmission: %w", err)
	}

	index++
	res.RewardPerReview, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardPerReview: %w", err)
	}

	index++
	res.RequiredSubmissions, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequiredSubmissions: %w", err)
	}

	index++
	res.RequiredValidations, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequiredValidations: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.Reviewers, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reviewers: %w", err)
	}

	index++
	res.SubmissionCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionCount: %w", err)
	}

	index++
	res.ValidatedSubmissionCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ValidatedSubmissionCount: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.CompletedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CompletedAt: %w", err)
	}

	return nil
}

// TaskCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TaskCreated" name from the provided [result.ApplicationLog].
func TaskCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaskCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaskCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaskCreated" {
				continue
			}
			event := new(TaskCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaskCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaskCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *TaskCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReviewerAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewerAdded" name from the provided [result.ApplicationLog].
func ReviewerAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewerAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewerAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewerAdded" {
				continue
			}
			event := new(ReviewerAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewerAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewerAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewerAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Reviewer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reviewer: %w", err)
	}

	return nil
}

// TaskStatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TaskStatusUpdated" name from the provided [result.ApplicationLog].
func TaskStatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaskStatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaskStatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaskStatusUpdated" {
				continue
			}
			event := new(TaskStatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaskStatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaskStatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *TaskStatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.OldStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// TaskCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "TaskCompleted" name from the provided [result.ApplicationLog].
func TaskCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaskCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaskCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaskCompleted" {
				continue
			}
			event := new(TaskCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaskCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaskCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *TaskCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	return nil
}

// SubmissionRewardPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionRewardPaid" name from the provided [result.ApplicationLog].
func SubmissionRewardPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionRewardPaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionRewardPaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionRewardPaid" {
				continue
			}
			event := new(SubmissionRewardPaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionRewardPaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionRewardPaidEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionRewardPaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReviewRewardPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "ReviewRewardPaid" name from the provided [result.ApplicationLog].
func ReviewRewardPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReviewRewardPaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReviewRewardPaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReviewRewardPaid" {
				continue
			}
			event := new(ReviewRewardPaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReviewRewardPaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReviewRewardPaidEvent or
// returns an error if it's not possible to do to so.
func (e *ReviewRewardPaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Reviewer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reviewer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PayoutFailedEventsFromApplicationLog retrieves a set of all emitted events
// with "PayoutFailed" name from the provided [result.ApplicationLog].
func PayoutFailedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutFailedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PayoutFailedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PayoutFailed" {
				continue
			}
			event := new(PayoutFailedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PayoutFailedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PayoutFailedEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutFailedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Payee, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	index++
	e.Owed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Owed: %w", err)
	}

	return nil
}

// PayoutRedeemedEventsFromApplicationLog retrieves a set of all emitted events
// with "PayoutRedeemed" name from the provided [result.ApplicationLog].
func PayoutRedeemedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutRedeemedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PayoutRedeemedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PayoutRedeemed" {
				continue
			}
			event := new(PayoutRedeemedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PayoutRedeemedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PayoutRedeemedEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutRedeemedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Payee, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// EscrowReclaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "EscrowReclaimed" name from the provided [result.ApplicationLog].
func EscrowReclaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EscrowReclaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EscrowReclaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EscrowReclaimed" {
				continue
			}
			event := new(EscrowReclaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EscrowReclaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EscrowReclaimedEvent or
// returns an error if it's not possible to do to so.
func (e *EscrowReclaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
