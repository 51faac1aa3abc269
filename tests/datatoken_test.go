package tests

import (
	"testing"

	"github.com/morgueye4/datahub-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestDataTokenInfo(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	c := e.CommitteeInvoker(hub.token)
	c.Invoke(t, stackitem.NewByteArray([]byte("DHUB")), "symbol")
	c.Invoke(t, 8, "decimals")
	c.Invoke(t, 0, "totalSupply")
}

func TestDataTokenMintBurn(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	c := e.CommitteeInvoker(hub.token)
	acc := c.NewAccount(t)

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "mint", acc.ScriptHash(), 42)
	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "burn", acc.ScriptHash(), 42)

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 42)
	c.Invoke(t, 42, "balanceOf", acc.ScriptHash())
	c.Invoke(t, 42, "totalSupply")

	c.InvokeFail(t, "can't burn assets", "burn", acc.ScriptHash(), 100)

	c.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), 12)
	c.Invoke(t, 30, "balanceOf", acc.ScriptHash())
	c.Invoke(t, 30, "totalSupply")
}

func TestDataTokenTransfer(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	c := e.CommitteeInvoker(hub.token)
	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), 100)

	c.WithSigners(from).Invoke(t, true, "transfer",
		from.ScriptHash(), to.ScriptHash(), 40, nil)
	c.Invoke(t, 60, "balanceOf", from.ScriptHash())
	c.Invoke(t, 40, "balanceOf", to.ScriptHash())

	// No witness of the sender.
	c.WithSigners(to).Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), 40, nil)

	// Committee witness does not authorize spending someone's account
	// either, that is reserved for burns.
	c.Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), 40, nil)

	// More than the sender has.
	c.WithSigners(from).Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), 1000, nil)
}

func TestDataTokenFaucet(t *testing.T) {
	e := newExecutor(t)
	hub := deployDataHubContracts(t, e)

	c := e.CommitteeInvoker(hub.token)
	acc := c.NewAccount(t)

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "claimFaucet", acc.ScriptHash())
	c.Invoke(t, faucetAmount, "balanceOf", acc.ScriptHash())
	c.Invoke(t, faucetAmount, "totalSupply")

	cAcc.InvokeFail(t, "faucet cooldown is not over yet", "claimFaucet", acc.ScriptHash())

	// Claiming for someone else is not possible.
	other := c.NewAccount(t)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "claimFaucet", other.ScriptHash())
}
