package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/morgueye4/datahub-contract/contracts"
	"github.com/morgueye4/datahub-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the committee wallet")
	walletPassword := flag.String("password", "", "Password of the committee wallet")
	contractsDir := flag.String("contracts", "build", "Directory with compiled DataHub contracts")
	faucetAmount := flag.Int64("faucet-amount", 100_0000_0000, "DHUB fractions granted per faucet claim")
	faucetCooldown := flag.Int64("faucet-cooldown", 3600_000, "Milliseconds between faucet claims of one account")
	minMemberStake := flag.Int64("min-stake", 10_0000_0000, "Minimum DHUB stake of a DAO member, in fractions")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing committee wallet")
	}

	if err := run(*neoRPCEndpoint, *walletPath, *walletPassword, *contractsDir,
		*faucetAmount, *faucetCooldown, *minMemberStake); err != nil {
		log.Fatal(err)
	}

	log.Println("DataHub contracts are successfully deployed")
}

func run(endpoint, walletPath, walletPassword, contractsDir string,
	faucetAmount, faucetCooldown, minMemberStake int64) error {
	ctx := context.Background()

	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer l.Sync() // nolint:errcheck

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("missing account in wallet '%s'", walletPath)
	}

	if err = acc.Decrypt(walletPassword, w.Scrypt); err != nil {
		return fmt.Errorf("decrypt wallet account: %w", err)
	}

	cs, err := contracts.Read(os.DirFS(contractsDir))
	if err != nil {
		return fmt.Errorf("read compiled contracts: %w", err)
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create Neo RPC client: %w", err)
	}

	if err = c.Init(); err != nil {
		return fmt.Errorf("initialize Neo RPC client: %w", err)
	}

	return deploy.Deploy(ctx, deploy.Prm{
		Logger:         l,
		Blockchain:     c,
		LocalAccount:   acc,
		Contracts:      cs,
		FaucetAmount:   faucetAmount,
		FaucetCooldown: faucetCooldown,
		MinMemberStake: minMemberStake,
	})
}
