/*
Package accrual implements interest accruing accounts.

An address deposits funds from its cash wallet into an accrual account and
can later withdraw them. The first deposit records the amount and the block
time. Every later deposit re-prices the stored balance with a cubic time
weighted coefficient

	coeff = elapsed^3 / 1000
	next  = amount * coeff + deposit

where elapsed is the number of seconds since the first deposit. The stored
timestamp is never advanced, so the coefficient always covers the whole
history of the account. Depositing twice within the same second discards the
previous balance contribution.

All arithmetic is checked. A clock going backward or a coefficient that does
not fit in 64 bits is ErrInvalidTimestamp, a balance that overflows or
underflows is ErrInvalidAmount.

Deposited coins are held by a reserve wallet. Withdrawals are paid from the
reserve and any accrued interest the reserve cannot cover is minted.
*/
package accrual
