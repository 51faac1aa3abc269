/*
Package membership contains implementation of Membership contract deployed
in DataHub environment.

Membership contract keeps the registry of staked DAO participants. Joining
locks DHUB tokens on the contract account as stake, leaving returns them.
Tasks without a nominated reviewer list accept review votes from any member
registered here.

# Contract notifications

MemberJoined notification. This notification is produced when an account
joins and its stake is locked. Fields: member as Hash160, stake amount as
integer.

MemberLeft notification. This notification is produced when a member leaves
and the stake is returned. Fields: member as Hash160, stake amount as
integer.

# Contract storage model

At the moment, no constraints on the data in the storage are imposed. The
Membership contract uses the following key-value pairs:

	'm' + account -> std.Serialize(member)
	     serialized membership record of the account

	'n' -> integer
	     number of active members

	's' -> integer
	     minimum join stake

	'T' -> interop.Hash160
	     DataHub Token contract reference
*/
package membership
