// Package submission contains RPC wrappers for DataHub Submission contract.
package submission

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

// SubmissionSubmission is a contract-specific submission.Submission type used by its methods.
type SubmissionSubmission struct {
	ID *big.Int
	TaskID *big.Int
	Submitter util.Uint160
	DataRef string
	Status *big.Int
	ValidationCount *big.Int
	ApprovedBy []util.Uint160
	RejectedBy []util.Uint160
	CreatedAt *big.Int
}

// SubmissionCreatedEvent represents "SubmissionCreated" event emitted by the contract.
type SubmissionCreatedEvent struct {
	SubmissionID *big.Int
	TaskID *big.Int
	Submitter util.Uint160
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	SubmissionID *big.Int
	Voter util.Uint160
	Approve bool
}

// SubmissionApprovedEvent represents "SubmissionApproved" event emitted by the contract.
type SubmissionApprovedEvent struct {
	SubmissionID *big.Int
	TaskID *big.Int
	Submitter util.Uint160
}

// SubmissionRejectedEvent represents "SubmissionRejected" event emitted by the contract.
type SubmissionRejectedEvent struct {
	SubmissionID *big.Int
	TaskID *big.Int
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

// Get invokes `get` method of contract.
func (c *ContractReader) Get(submissionID *big.Int) (*SubmissionSubmission, error) {
	return itemToSubmissionSubmission(unwrap.Item(c.invoker.Call(c.hash, "get", submissionID)))
}

// GetTaskSubmissions invokes `getTaskSubmissions` method of contract.
func (c *ContractReader) GetTaskSubmissions(taskID *big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getTaskSubmissions", taskID))
}

// HasApproved invokes `hasApproved` method of contract.
func (c *ContractReader) HasApproved(submissionID *big.Int, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasApproved", submissionID, account))
}

// HasRejected invokes `hasRejected` method of contract.
func (c *ContractReader) HasRejected(submissionID *big.Int, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRejected", submissionID, account))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(submissionID *big.Int, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", submissionID, account))
}

// SubmissionCount invokes `submissionCount` method of contract.
func (c *ContractReader) SubmissionCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "submissionCount"))
}

// SubmissionOf invokes `submissionOf` method of contract.
func (c *ContractReader) SubmissionOf(taskID *big.Int, submitter util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "submissionOf", taskID, submitter))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CastVote creates a transaction invoking `castVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CastVote(submissionID *big.Int, voter util.Uint160, approve bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "castVote", submissionID, voter, approve)
}

// CastVoteTransaction creates a transaction invoking `castVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CastVoteTransaction(submissionID *big.Int, voter util.Uint160, approve bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "castVote", submissionID, voter, approve)
}

// CastVoteUnsigned creates a transaction invoking `castVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CastVoteUnsigned(submissionID *big.Int, voter util.Uint160, approve bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "castVote", nil, submissionID, voter, approve)
}

// Submit creates a transaction invoking `submit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Submit(taskID *big.Int, submitter util.Uint160, dataRef string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submit", taskID, submitter, dataRef)
}

// SubmitTransaction creates a transaction invoking `submit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitTransaction(taskID *big.Int, submitter util.Uint160, dataRef string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submit", taskID, submitter, dataRef)
}

// SubmitUnsigned creates a transaction invoking `submit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitUnsigned(taskID *big.Int, submitter util.Uint160, dataRef string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submit", nil, taskID, submitter, dataRef)
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

// itemToSubmissionSubmission converts stack item into *SubmissionSubmission.
func itemToSubmissionSubmission(item stackitem.Item, err error) (*SubmissionSubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SubmissionSubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SubmissionSubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SubmissionSubmission) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
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
	res.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	res.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
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
	res.DataRef, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field DataRef: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.ValidationCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ValidationCount: %w", err)
	}

	index++
	res.ApprovedBy, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field ApprovedBy: %w", err)
	}

	index++
	res.RejectedBy, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field RejectedBy: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	return nil
}

// SubmissionCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionCreated" name from the provided [result.ApplicationLog].
func SubmissionCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionCreated" {
				continue
			}
			event := new(SubmissionCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionCreatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

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

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
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
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Approve, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Approve: %w", err)
	}

	return nil
}

// SubmissionApprovedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionApproved" name from the provided [result.ApplicationLog].
func SubmissionApprovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionApprovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionApprovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionApproved" {
				continue
			}
			event := new(SubmissionApprovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionApprovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionApprovedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionApprovedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

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

	return nil
}

// SubmissionRejectedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionRejected" name from the provided [result.ApplicationLog].
func SubmissionRejectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionRejectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionRejectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionRejected" {
				continue
			}
			event := new(SubmissionRejectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionRejectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionRejectedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionRejectedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.SubmissionID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionID: %w", err)
	}

	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	return nil
}
