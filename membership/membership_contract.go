package membership

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/morgueye4/datahub-contract/common"
)

// Member is a staked participant of the DataHub environment.
type Member struct {
	Owner      interop.Hash160
	Stake      int
	Reputation int
	JoinedAt   int
}

// Contract errors.
const (
	// ErrNotMember is returned when the account has no membership record.
	ErrNotMember = "account is not a member"
	// ErrAlreadyMember is returned on join attempts of existing members.
	ErrAlreadyMember = "account is already a member"
	// ErrStakeTooLow is returned when the join stake is below the configured
	// minimum.
	ErrStakeTooLow = "stake is below the required minimum"
	// ErrStakePull is returned when the stake transfer from the joining
	// account was rejected by the token contract.
	ErrStakePull = "failed to pull stake from the account"
	// ErrStakeReturn is returned when the stake transfer back to the leaving
	// member was rejected by the token contract.
	ErrStakeReturn = "failed to return stake to the member"
)

const (
	memberPrefix = 'm'

	memberCountKey   = 'n'
	minStakeKey      = 's'
	tokenContractKey = 'T'
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
	minStake := args[1].(int)

	if len(addrToken) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if minStake <= 0 {
		panic("minimum stake must be positive")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, minStakeKey, minStake)

	runtime.Log("membership contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("membership contract updated")
}

// Join admits the account as a member, locking the given amount of DHUB
// tokens as stake. The account must witness the transaction and the amount
// must be at least the configured minimum.
//
// Produces MemberJoined notification.
func Join(member interop.Hash160, amount int) {
	if len(member) != interop.Hash160Len {
		panic(ErrNotMember)
	}

	common.CheckOwnerWitness(member)

	ctx := storage.GetContext()
	if storage.Get(ctx, memberKey(member)) != nil {
		panic(ErrAlreadyMember)
	}

	minStake := storage.Get(ctx, minStakeKey).(int)
	if amount < minStake {
		panic(ErrStakeTooLow)
	}

	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	ok := contract.Call(tokenContractAddr, "transfer", contract.All,
		member, runtime.GetExecutingScriptHash(), amount,
		common.StakeDetails()).(bool)
	if !ok {
		panic(ErrStakePull)
	}

	m := Member{
		Owner:    member,
		Stake:    amount,
		JoinedAt: runtime.GetTime(),
	}
	common.SetSerialized(ctx, memberKey(member), m)
	storage.Put(ctx, memberCountKey, memberCount(ctx)+1)

	runtime.Log("new member joined")
	runtime.Notify("MemberJoined", member, amount)
}

// Leave removes the membership of the account and returns its stake. The
// account must witness the transaction.
//
// Produces MemberLeft notification.
func Leave(member interop.Hash160) {
	common.CheckOwnerWitness(member)

	ctx := storage.GetContext()
	m := getMember(ctx, member)

	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	ok := contract.Call(tokenContractAddr, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), member, m.Stake,
		common.UnstakeDetails()).(bool)
	if !ok {
		panic(ErrStakeReturn)
	}

	storage.Delete(ctx, memberKey(member))
	storage.Put(ctx, memberCountKey, memberCount(ctx)-1)

	runtime.Log("member left")
	runtime.Notify("MemberLeft", member, m.Stake)
}

// AddReputation adjusts the reputation score of the member by delta. It can
// be invoked by committee only.
func AddReputation(member interop.Hash160, delta int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	m := getMember(ctx, member)

	m.Reputation = m.Reputation + delta
	common.SetSerialized(ctx, memberKey(member), m)
}

// IsMember returns true if the account has an active membership.
func IsMember(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, memberKey(account)) != nil
}

// GetMember returns the membership record of the account.
func GetMember(account interop.Hash160) Member {
	ctx := storage.GetReadOnlyContext()
	return getMember(ctx, account)
}

// MemberCount returns the number of active members.
func MemberCount() int {
	ctx := storage.GetReadOnlyContext()
	return memberCount(ctx)
}

// MinStake returns the minimum amount of DHUB tokens required to join.
func MinStake() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, minStakeKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func memberCount(ctx storage.Context) int {
	count := storage.Get(ctx, memberCountKey)
	if count == nil {
		return 0
	}

	return count.(int)
}

func memberKey(account interop.Hash160) []byte {
	return append([]byte{memberPrefix}, account...)
}

func getMember(ctx storage.Context, account interop.Hash160) Member {
	data := storage.Get(ctx, memberKey(account))
	if data == nil {
		panic(ErrNotMember)
	}

	return std.Deserialize(data.([]byte)).(Member)
}
