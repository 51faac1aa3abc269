package tests

import (
	"math/big"
	"testing"

	"github.com/morgueye4/datahub-contract/common"
	"github.com/morgueye4/datahub-contract/membership"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestMembershipJoin(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cMember := e.CommitteeInvoker(hub.membership)
	cToken := e.CommitteeInvoker(hub.token)

	cMember.Invoke(t, minMemberStake, "minStake")
	cMember.Invoke(t, 0, "memberCount")

	acc := cMember.NewAccount(t)
	fundAccount(t, e, hub, acc.ScriptHash(), minMemberStake)
	cAcc := cMember.WithSigners(acc)

	cAcc.InvokeFail(t, membership.ErrStakeTooLow, "join", acc.ScriptHash(), minMemberStake-1)
	cMember.InvokeFail(t, common.ErrOwnerWitnessFailed, "join", acc.ScriptHash(), minMemberStake)
	cMember.Invoke(t, false, "isMember", acc.ScriptHash())

	cAcc.Invoke(t, stackitem.Null{}, "join", acc.ScriptHash(), minMemberStake)
	cMember.Invoke(t, true, "isMember", acc.ScriptHash())
	cMember.Invoke(t, 1, "memberCount")
	require.EqualValues(t, 0, balanceOf(t, cToken, acc.ScriptHash()))
	require.EqualValues(t, minMemberStake, balanceOf(t, cToken, hub.membership))

	cAcc.InvokeFail(t, membership.ErrAlreadyMember, "join", acc.ScriptHash(), minMemberStake)
}

func TestMembershipLeave(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cMember := e.CommitteeInvoker(hub.membership)
	cToken := e.CommitteeInvoker(hub.token)

	acc := cMember.NewAccount(t)
	cAcc := cMember.WithSigners(acc)

	cAcc.InvokeFail(t, membership.ErrNotMember, "leave", acc.ScriptHash())

	fundAccount(t, e, hub, acc.ScriptHash(), minMemberStake)
	cAcc.Invoke(t, stackitem.Null{}, "join", acc.ScriptHash(), minMemberStake)
	cMember.InvokeFail(t, common.ErrOwnerWitnessFailed, "leave", acc.ScriptHash())

	cAcc.Invoke(t, stackitem.Null{}, "leave", acc.ScriptHash())
	cMember.Invoke(t, false, "isMember", acc.ScriptHash())
	cMember.Invoke(t, 0, "memberCount")
	require.EqualValues(t, minMemberStake, balanceOf(t, cToken, acc.ScriptHash()))
	require.EqualValues(t, 0, balanceOf(t, cToken, hub.membership))
}

func TestMembershipReputation(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	cMember := e.CommitteeInvoker(hub.membership)

	acc := cMember.NewAccount(t)
	fundAccount(t, e, hub, acc.ScriptHash(), minMemberStake)
	cMember.WithSigners(acc).Invoke(t, stackitem.Null{}, "join",
		acc.ScriptHash(), minMemberStake)

	cMember.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"addReputation", acc.ScriptHash(), 3)
	cMember.InvokeFail(t, membership.ErrNotMember,
		"addReputation", cMember.NewAccount(t).ScriptHash(), 3)

	cMember.Invoke(t, stackitem.Null{}, "addReputation", acc.ScriptHash(), 3)
	cMember.Invoke(t, stackitem.Null{}, "addReputation", acc.ScriptHash(), 2)

	s, err := cMember.TestInvoke(t, "getMember", acc.ScriptHash())
	require.NoError(t, err)
	member := s.Pop().Array()
	require.Equal(t, acc.ScriptHash().BytesBE(), member[0].Value().([]byte))
	require.EqualValues(t, minMemberStake, member[1].Value().(*big.Int).Int64())
	require.EqualValues(t, 5, member[2].Value().(*big.Int).Int64())

	cMember.InvokeFail(t, membership.ErrNotMember, "getMember",
		cMember.NewAccount(t).ScriptHash())
}
