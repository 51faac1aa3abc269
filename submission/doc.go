/*
Package submission contains implementation of Submission contract deployed
in DataHub environment.

Submission contract keeps the ledger of delivered work and runs the review
consensus. A submission starts Pending, collects approval and rejection
votes from authorized reviewers of its task and, once the required number of
votes is in, is decided: a strict majority of approvals makes it Approved,
anything less makes it Rejected. Decided statuses are final. Reward
transfers themselves are done by the Task contract holding the escrow, this
contract only triggers them.

# Contract notifications

SubmissionCreated notification. This notification is produced when a new
submission is registered against a task. Fields: submission ID as integer,
task ID as integer, submitter as Hash160.

VoteCast notification. This notification is produced when a reviewer votes
on a submission. Fields: submission ID as integer, voter as Hash160,
approval flag as boolean.

SubmissionApproved notification. This notification is produced when the
decisive vote approves the submission. Fields: submission ID as integer,
task ID as integer, submitter as Hash160.

SubmissionRejected notification. This notification is produced when the
decisive vote rejects the submission. Fields: submission ID as integer,
task ID as integer.

# Contract storage model

At the moment, no constraints on the data in the storage are imposed. The
Submission contract uses the following key-value pairs:

	'c' -> integer
	     submission ID counter, the ID of the latest registered submission

	's' + ID -> std.Serialize(submission)
	     serialized submission structure by integer submission ID

	'd' + taskID + submitter -> integer
	     submission ID of the account on the task, kept for deduplication

	'x' + taskID -> std.Serialize([]int)
	     IDs of all submissions registered against the task

	'T' -> interop.Hash160
	     Task contract reference
*/
package submission
