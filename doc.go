// Package bilag converts a Nordnet transaction export into a Dinero voucher
// import file.
//
// The conversion is a straight pipeline:
//   - Source reading: DecodeNordnet transcodes the UTF-16LE, tab separated
//     export and returns its transactions oldest first.
//   - Record conversion: a Converter walks the transactions once, with a one
//     transaction lookahead, and emits accounting entries grouped in numbered
//     vouchers. A dividend immediately followed by its withholding tax is
//     booked as a single voucher.
//   - Sink writing: EncodeDinero serializes the entries as the semicolon
//     separated file Dinero imports.
//
// Accounts are fixed (see accounts.go), amounts are exact decimals written
// with a comma as decimal separator, and any failure aborts the whole run.
//
// This package is the foundation of the `n2d` command-line tool.
package bilag
