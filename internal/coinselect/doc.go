// Package coinselect implements the wallet's coin (input) selection core:
// given a UTxO and a list of payment goals, it chooses inputs, distributes
// the transaction fee across goals according to each goal's expense
// regulation, and produces an unsigned Transaction plus TxStats.
//
// The package is intentionally free of I/O. Hashing, fresh-address
// generation, fee estimation, and randomness are all consumed through the
// Capabilities record rather than called directly, so a host can supply
// deterministic doubles in tests and real implementations in production.
package coinselect
