// Package membership contains RPC wrappers for DataHub Membership contract.
package membership

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// MembershipMember is a contract-specific membership.Member type used by its methods.
type MembershipMember struct {
	Owner util.Uint160
	Stake *big.Int
	Reputation *big.Int
	JoinedAt *big.Int
}

// MemberJoinedEvent represents "MemberJoined" event emitted by the contract.
type MemberJoinedEvent struct {
	Member util.Uint160
	Amount *big.Int
}

// MemberLeftEvent represents "MemberLeft" event emitted by the contract.
type MemberLeftEvent struct {
	Member util.Uint160
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

// GetMember invokes `getMember` method of contract.
func (c *ContractReader) GetMember(account util.Uint160) (*MembershipMember, error) {
	return itemToMembershipMember(unwrap.Item(c.invoker.Call(c.hash, "getMember", account)))
}

// IsMember invokes `isMember` method of contract.
func (c *ContractReader) IsMember(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isMember", account))
}

// MemberCount invokes `memberCount` method of contract.
func (c *ContractReader) MemberCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "memberCount"))
}

// MinStake invokes `minStake` method of contract.
func (c *ContractReader) MinStake() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minStake"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddReputation creates a transaction invoking `addReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddReputation(member util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addReputation", member, delta)
}

// AddReputationTransaction creates a transaction invoking `addReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddReputationTransaction(member util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addReputation", member, delta)
}

// AddReputationUnsigned creates a transaction invoking `addReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddReputationUnsigned(member util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addReputation", nil, member, delta)
}

// Join creates a transaction invoking `join` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Join(member util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "join", member, amount)
}

// JoinTransaction creates a transaction invoking `join` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) JoinTransaction(member util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "join", member, amount)
}

// JoinUnsigned creates a transaction invoking `join` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) JoinUnsigned(member util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "join", nil, member, amount)
}

// Leave creates a transaction invoking `leave` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Leave(member util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "leave", member)
}

// LeaveTransaction creates a transaction invoking `leave` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LeaveTransaction(member util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "leave", member)
}

// LeaveUnsigned creates a transaction invoking `leave` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LeaveUnsigned(member util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "leave", nil, member)
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

// itemToMembershipMember converts stack item into *MembershipMember.
func itemToMembershipMember(item stackitem.Item, err error) (*MembershipMember, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MembershipMember)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MembershipMember from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MembershipMember) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	index++
	res.Reputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}

	index++
	res.JoinedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field JoinedAt: %w", err)
	}

	return nil
}

// MemberJoinedEventsFromApplicationLog retrieves a set of all emitted events
// with "MemberJoined" name from the provided [result.ApplicationLog].
func MemberJoinedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MemberJoinedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MemberJoinedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MemberJoined" {
				continue
			}
			event := new(MemberJoinedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MemberJoinedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MemberJoinedEvent or
// returns an error if it's not possible to do to so.
func (e *MemberJoinedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Member, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Member: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// MemberLeftEventsFromApplicationLog retrieves a set of all emitted events
// with "MemberLeft" name from the provided [result.ApplicationLog].
func MemberLeftEventsFromApplicationLog(log *result.ApplicationLog) ([]*MemberLeftEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MemberLeftEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MemberLeft" {
				continue
			}
			event := new(MemberLeftEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MemberLeftEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MemberLeftEvent or
// returns an error if it's not possible to do to so.
func (e *MemberLeftEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Member, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Member: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
