// Package numeric turns raw on-chain integers into human-readable decimals.
//
// Conventions:
//   - Raw amounts: *uint256.Int in the token's smallest unit (never negative)
//   - Decimal places: int32, 18 when the indexer does not report one
//   - Arithmetic: shopspring/decimal, exact except for price division, which keeps
//     GuardDigits significant digits
//   - MaxAmount (2^128-1) means "no cap" and is matched by equality only
package numeric
