package deploy

import (
	"testing"

	"github.com/morgueye4/datahub-contract/contracts"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func anyValidContracts(t *testing.T) []contracts.Contract {
	names := []string{"DataHub Token", "DataHub Membership", "DataHub Task", "DataHub Submission"}
	cs := make([]contracts.Contract, contractCount)

	for i := range cs {
		script := make([]byte, 32)
		script[0] = byte(i + 1)

		_nef, err := nef.NewFile(script)
		require.NoError(t, err)

		cs[i].NEF = *_nef
		cs[i].Manifest = *manifest.NewManifest(names[i])
	}

	return cs
}

func TestContractHashes(t *testing.T) {
	cs := anyValidContracts(t)
	sender := util.Uint160{1, 2, 3}

	hashes := contractHashes(sender, cs)
	require.Len(t, hashes, contractCount)

	seen := make(map[util.Uint160]struct{}, len(hashes))
	for _, h := range hashes {
		_, ok := seen[h]
		require.False(t, ok, "duplicated contract address")
		seen[h] = struct{}{}
	}

	require.Equal(t, hashes, contractHashes(sender, cs))
	require.NotEqual(t, hashes, contractHashes(util.Uint160{4, 5, 6}, cs))
}

func TestDeployArgs(t *testing.T) {
	cs := anyValidContracts(t)
	prm := Prm{
		Contracts:      cs,
		FaucetAmount:   100_0000_0000,
		FaucetCooldown: 3600_000,
		MinMemberStake: 10_0000_0000,
	}
	hashes := contractHashes(util.Uint160{1, 2, 3}, cs)

	require.Equal(t, []any{prm.FaucetAmount, prm.FaucetCooldown},
		deployArgs(prm, hashes, idxDataToken))
	require.Equal(t, []any{hashes[idxDataToken], prm.MinMemberStake},
		deployArgs(prm, hashes, idxMembership))
	require.Equal(t, []any{hashes[idxDataToken], hashes[idxSubmission], hashes[idxMembership]},
		deployArgs(prm, hashes, idxTask))
	require.Equal(t, []any{hashes[idxTask]},
		deployArgs(prm, hashes, idxSubmission))

	require.Panics(t, func() { deployArgs(prm, hashes, contractCount) })
}
