/*
Package deploy provides DataHub contract deployment routine.

The contracts reference each other, so their script hashes are computed
upfront from the deployer account and passed as initialization data. This
makes a fresh deployment deterministic: re-running Deploy against a chain
that already carries the same contracts is a no-op.
*/
package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/morgueye4/datahub-contract/contracts"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Indexes of the DataHub contracts in the slice returned by
// [contracts.Read].
const (
	idxDataToken = iota
	idxMembership
	idxTask
	idxSubmission

	contractCount
)

// Blockchain groups services of a Neo RPC node required for deployment.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns an error with 'Unknown contract' substring if
	// the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of Deploy.
type Prm struct {
	// Writes progress of the deployment.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Account performing the deployment. It must be a committee account of
	// the network since the contracts accept committee-signed management
	// calls only.
	LocalAccount *wallet.Account

	// Compiled DataHub contracts in [contracts.Read] order.
	Contracts []contracts.Contract

	// DHUB amount granted per faucet claim, in fractions.
	FaucetAmount int64
	// Milliseconds between faucet claims of one account.
	FaucetCooldown int64
	// Least DHUB stake accepted by the membership contract, in fractions.
	MinMemberStake int64
}

// Deploy initializes Neo blockchain with the DataHub contracts. Contracts
// already present on the chain with the same code are skipped, ones present
// with different code are updated.
func Deploy(ctx context.Context, prm Prm) error {
	if len(prm.Contracts) != contractCount {
		return fmt.Errorf("unexpected number of contracts: %d instead of %d",
			len(prm.Contracts), contractCount)
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return fmt.Errorf("init committee actor: %w", err)
	}

	hashes := contractHashes(act.Sender(), prm.Contracts)
	mgmt := management.New(act)

	for i := range prm.Contracts {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("wait for deployment of contract #%d: %w", i, err)
		}

		name := prm.Contracts[i].Manifest.Name
		l := prm.Logger.With(zap.String("contract", name),
			zap.Stringer("address", hashes[i]))

		onChain, err := prm.Blockchain.GetContractStateByHash(hashes[i])
		if err != nil {
			if !isErrContractNotFound(err) {
				return fmt.Errorf("read on-chain state of the '%s' contract: %w", name, err)
			}

			l.Info("contract is missing on the chain, deploying...")

			txHash, vub, err := mgmt.Deploy(&prm.Contracts[i].NEF,
				&prm.Contracts[i].Manifest, deployArgs(prm, hashes, i))
			if err != nil {
				return fmt.Errorf("deploy the '%s' contract: %w", name, err)
			}

			if _, err = act.Wait(txHash, vub, nil); err != nil {
				return fmt.Errorf("wait for deployment of the '%s' contract: %w", name, err)
			}

			l.Info("contract has been deployed")
			continue
		}

		if onChain.NEF.Checksum == prm.Contracts[i].NEF.Checksum {
			l.Info("contract is already on the chain, skipping")
			continue
		}

		l.Info("contract code differs from the local one, updating...")

		bNEF, err := prm.Contracts[i].NEF.Bytes()
		if err != nil {
			return fmt.Errorf("encode NEF of the '%s' contract: %w", name, err)
		}
		jManifest, err := json.Marshal(prm.Contracts[i].Manifest)
		if err != nil {
			return fmt.Errorf("encode manifest of the '%s' contract: %w", name, err)
		}

		txHash, vub, err := act.SendCall(hashes[i], "update", bNEF, jManifest, nil)
		if err != nil {
			return fmt.Errorf("update the '%s' contract: %w", name, err)
		}

		if _, err = act.Wait(txHash, vub, nil); err != nil {
			return fmt.Errorf("wait for update of the '%s' contract: %w", name, err)
		}

		l.Info("contract has been updated")
	}

	return nil
}

// contractHashes precomputes addresses the contracts will get when deployed
// by the sender account.
func contractHashes(sender util.Uint160, cs []contracts.Contract) []util.Uint160 {
	hashes := make([]util.Uint160, len(cs))
	for i := range cs {
		hashes[i] = state.CreateContractHash(sender, cs[i].NEF.Checksum, cs[i].Manifest.Name)
	}

	return hashes
}

// deployArgs composes initialization data of the i-th contract. Collaborator
// addresses come from the precomputed hash list, so interdependent contracts
// can be wired before any of them exists on the chain.
func deployArgs(prm Prm, hashes []util.Uint160, i int) []any {
	switch i {
	case idxDataToken:
		return []any{prm.FaucetAmount, prm.FaucetCooldown}
	case idxMembership:
		return []any{hashes[idxDataToken], prm.MinMemberStake}
	case idxTask:
		return []any{hashes[idxDataToken], hashes[idxSubmission], hashes[idxMembership]}
	case idxSubmission:
		return []any{hashes[idxTask]}
	default:
		panic(fmt.Sprintf("unsupported contract index %d", i))
	}
}

func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}
