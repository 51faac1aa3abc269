/*
Package task contains implementation of Task contract deployed in DataHub
environment.

Task contract is the registry of data tasks and the escrow holder: at task
creation the full reward budget is pulled from the creator's DHUB account to
the contract account and is then paid out piecewise as submissions get
approved and reviews get cast. Payout entry points are reachable only from
the Submission contract. Rewards whose token transfer was rejected stay
recorded as owed and may be redeemed later by the payee. The remaining
escrow of a cancelled task can be reclaimed by its creator.

# Contract notifications

TaskCreated notification. This notification is produced when a new task is
registered and its escrow is funded. Fields: task ID as integer, creator as
Hash160, escrowed amount as integer.

ReviewerAdded notification. This notification is produced when an address is
added to the reviewer list of a task. Fields: task ID as integer, reviewer
as Hash160.

TaskStatusUpdated notification. This notification is produced when the task
status changes. Fields: task ID as integer, previous status as integer, new
status as integer.

TaskCompleted notification. This notification is produced when the required
number of submissions has been validated. Fields: task ID as integer.

SubmissionRewardPaid notification. This notification is produced when an
approved submitter receives the submission reward. Fields: task ID as
integer, submitter as Hash160, amount as integer.

ReviewRewardPaid notification. This notification is produced when a reviewer
receives the review reward for a cast vote. Fields: task ID as integer,
reviewer as Hash160, amount as integer.

PayoutFailed notification. This notification is produced when a reward
transfer was rejected by the token contract and the amount was recorded as
owed. Fields: task ID as integer, payee as Hash160, total owed amount as
integer.

PayoutRedeemed notification. This notification is produced when previously
owed rewards are successfully transferred. Fields: task ID as integer, payee
as Hash160, amount as integer.

EscrowReclaimed notification. This notification is produced when the
remaining escrow of a cancelled task is returned to its creator. Fields:
task ID as integer, creator as Hash160, amount as integer.

# Contract storage model

At the moment, no constraints on the data in the storage are imposed. The
Task contract uses the following key-value pairs:

	'c' -> integer
	     task ID counter, the ID of the latest registered task

	't' + ID -> std.Serialize(task)
	     serialized task structure by integer task ID

	'e' + ID -> integer
	     remaining escrow balance of the task

	'o' + ID + account -> integer
	     rewards owed to the account on the task after failed payouts

	'x' + creator -> std.Serialize([]int)
	     IDs of the tasks created by the account

	'T' -> interop.Hash160
	     DataHub Token contract reference

	'S' -> interop.Hash160
	     Submission contract reference

	'M' -> interop.Hash160
	     Membership contract reference
*/
package task
