package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	datatokenPath  = "../datatoken"
	taskPath       = "../task"
	submissionPath = "../submission"
	membershipPath = "../membership"
)

const (
	faucetAmount   = 100_0000_0000
	faucetCooldown = 3600_000
	minMemberStake = 10_0000_0000
)

type dataHub struct {
	token      util.Uint160
	task       util.Uint160
	submission util.Uint160
	membership util.Uint160
}

// deployDataHubContracts compiles and deploys the whole DataHub contract set.
// Task and Submission contracts reference each other, so both hashes are
// computed before any deployment happens.
func deployDataHubContracts(t *testing.T, e *neotest.Executor) dataHub {
	ctrToken := neotest.CompileFile(t, e.CommitteeHash, datatokenPath, path.Join(datatokenPath, "config.yml"))
	ctrTask := neotest.CompileFile(t, e.CommitteeHash, taskPath, path.Join(taskPath, "config.yml"))
	ctrSubmission := neotest.CompileFile(t, e.CommitteeHash, submissionPath, path.Join(submissionPath, "config.yml"))
	ctrMembership := neotest.CompileFile(t, e.CommitteeHash, membershipPath, path.Join(membershipPath, "config.yml"))

	e.DeployContract(t, ctrToken, []interface{}{int64(faucetAmount), int64(faucetCooldown)})
	e.DeployContract(t, ctrMembership, []interface{}{ctrToken.Hash, int64(minMemberStake)})
	e.DeployContract(t, ctrTask, []interface{}{ctrToken.Hash, ctrSubmission.Hash, ctrMembership.Hash})
	e.DeployContract(t, ctrSubmission, []interface{}{ctrTask.Hash})

	return dataHub{
		token:      ctrToken.Hash,
		task:       ctrTask.Hash,
		submission: ctrSubmission.Hash,
		membership: ctrMembership.Hash,
	}
}

// fundAccount mints DHUB to the account using the committee.
func fundAccount(t *testing.T, e *neotest.Executor, hub dataHub, acc util.Uint160, amount int64) {
	c := e.CommitteeInvoker(hub.token)
	c.Invoke(t, stackitem.Null{}, "mint", acc, amount)
}
