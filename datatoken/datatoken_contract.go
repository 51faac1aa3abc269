package datatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/morgueye4/datahub-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol.
	Symbol string
	// Amount of decimals.
	Decimals int
	// Storage key for circulation value.
	CirculationKey string
}

const (
	symbol      = "DHUB"
	decimals    = 8
	circulation = "TokenCirculation"

	accPrefix        = 'a'
	faucetSeenPrefix = 'f'

	faucetAmountKey   = 'F'
	faucetCooldownKey = 'C'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	faucetAmount := args[0].(int)
	faucetCooldown := args[1].(int)

	if faucetAmount < 0 || faucetCooldown < 0 {
		panic("invalid faucet parameters")
	}

	storage.Put(ctx, faucetAmountKey, faucetAmount)
	storage.Put(ctx, faucetCooldownKey, faucetCooldown)

	runtime.Log("datatoken contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("datatoken contract updated")
}

// Symbol is a NEP-17 standard method that returns DHUB token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of DHUB
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// DHUB in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns DHUB balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers DHUB from one account
// to another. It can be invoked by the account owner or by a contract
// spending its own account; the latter is how the Task contract pulls escrow
// from a task creator that witnessed the transaction and pays rewards from
// its escrow account.
//
// Produces Transfer and TransferX notifications. TransferX carries the data
// argument as transfer details.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	var details []byte
	if data != nil {
		details = data.([]byte)
	}

	return token.transfer(ctx, from, to, amount, false, details)
}

// Mint creates the specified amount of DHUB on the target account. It can be
// invoked by committee only.
//
// Produces Transfer, TransferX and Mint notifications.
func Mint(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	mint(ctx, to, amount)
	runtime.Notify("Mint", to, amount)
}

// Burn destroys the specified amount of DHUB on the target account. It can
// be invoked by committee only.
//
// Produces Transfer, TransferX and Burn notifications.
func Burn(from interop.Hash160, amount int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()

	ok := token.transfer(ctx, from, nil, amount, true, nil)
	if !ok {
		panic("can't burn assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	storage.Put(ctx, token.CirculationKey, supply-amount)
	runtime.Notify("Burn", from, amount)
}

// ClaimFaucet mints the configured faucet amount to the claimer account. One
// account can claim at most once per configured cooldown period. The claimer
// must witness the transaction.
//
// Produces Transfer, TransferX and FaucetClaim notifications.
func ClaimFaucet(claimer interop.Hash160) {
	common.CheckOwnerWitness(claimer)

	ctx := storage.GetContext()

	amount := storage.Get(ctx, faucetAmountKey).(int)
	if amount == 0 {
		panic("faucet is disabled")
	}

	cooldown := storage.Get(ctx, faucetCooldownKey).(int)
	seenKey := append([]byte{faucetSeenPrefix}, claimer...)
	now := runtime.GetTime()

	lastClaim := storage.Get(ctx, seenKey)
	if lastClaim != nil && now-lastClaim.(int) < cooldown {
		panic("faucet cooldown is not over yet")
	}

	storage.Put(ctx, seenKey, now)
	mint(ctx, claimer, amount)
	runtime.Notify("FaucetClaim", claimer, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func mint(ctx storage.Context, to interop.Hash160, amount int) {
	ok := token.transfer(ctx, nil, to, amount, false, nil)
	if !ok {
		panic("can't mint assets")
	}

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{accPrefix}, holder...))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

// transfer moves amount between accounts. The committee flag marks
// committee-sanctioned operations (burns) that spend an account without its
// owner authorization; the committee witness itself is checked by the caller.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, committee bool, details []byte) bool {
	if amount < 0 {
		return false
	}

	// Nil from is minting, nil to is burning, both must pass the balance
	// checks below untouched.
	if len(from) == interop.Hash160Len {
		if !committee && !isUsableAddress(from) {
			runtime.Log("sender is not authorized to spend this account")
			return false
		}

		fromKey := append([]byte{accPrefix}, from...)
		balance := t.balanceOf(ctx, from)
		if balance < amount {
			runtime.Log("not enough assets")
			return false
		}

		if balance == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, balance-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		toKey := append([]byte{accPrefix}, to...)
		storage.Put(ctx, toKey, t.balanceOf(ctx, to)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// isUsableAddress checks if the transfer sender is either a transaction
// witness or the directly calling contract spending its own account.
func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	callingScriptHash := runtime.GetCallingScriptHash()
	return common.BytesEqual(callingScriptHash, addr)
}
