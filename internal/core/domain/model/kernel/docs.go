// Package kernel provides the value objects shared by the laundry domain model:
//   - UUID: identifiers for transactions, activity entries and domain events
//   - Money: currency amounts kept as integer cents
//   - Weight: laundry weight kept as integer hundredths of a kilogram
//
// Amounts and weights are integers so that pricing is exact; formatting to two
// decimals happens only in String methods.
package kernel
