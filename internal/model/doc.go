// Package model defines the records returned by the dFusion subgraph.
//
// Conventions:
//   - Amounts: *uint256.Int in the token's smallest unit, never nil after conversion
//   - Decimals: int32, 18 when the subgraph reports none
//   - Dates: epoch.Date (Absent when the subgraph reports 0)
//   - Batch ids: int64, one per 300 second window
//   - Addresses and hashes: go-ethereum common types, rendered in checksum form
package model
