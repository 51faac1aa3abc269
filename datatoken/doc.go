/*
Package datatoken implements DataToken contract, the DHUB fungible token of
the DataHub platform.

DataToken is a NEP-17 compatible contract, so it can be tracked and
controlled by N3 compatible network monitors and wallet software. All task
escrow deposits, reward payouts and membership stakes are DHUB transfers on
this ledger.

Committee mints and burns DHUB. For development and test networks the
contract also carries a faucet: any account can claim a fixed amount of
DHUB once per cooldown period.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. Produced when committee mints DHUB.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. Produced when committee burns DHUB.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

FaucetClaim notification. Produced when an account claims DHUB from the
faucet.

	FaucetClaim:
	  - name: claimer
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package datatoken

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'TokenCirculation' -> int
   total amount of DHUB in circulation
 - 'F' -> int
   faucet amount, set at deploy
 - 'C' -> int
   faucet cooldown in milliseconds, set at deploy
 - a<interop.Hash160> -> int
   balance sheet of all DHUB accounts
 - f<interop.Hash160> -> int
   timestamp of the last faucet claim per account

# Accounting
Contract stores balances of all DataHub accounts, including the escrow
account of the Task contract and the stake account of the Membership
contract.
*/
