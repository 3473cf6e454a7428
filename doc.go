// Package shopbook provides the accounting engine for a single-shop
// inventory and cash-ledger tracker. It is designed to be local-first and
// auditable: all state lives in an in-memory Ledger that is the single
// source of truth for every derived figure.
//
// The core functionalities include:
//   - Ledger Management: Recording stock purchases, sales, business expenses
//     and partner withdrawals, each validated before it is appended so the
//     ledger is never left half-mutated.
//   - Pricing: Quantity-weighted average cost and sell prices with an
//     explicit fallback chain for the effective sell price.
//   - Position: Point-in-time stock on hand, cash on hand and total assets,
//     with inventory valued at average cost.
//   - Period Reports: Revenue, cost of goods sold, gross and net profit and
//     per-partner distribution over a day, month or arbitrary month window.
//   - Data Persistence: Encoding and decoding the whole ledger to a single
//     human-readable JSON snapshot, written after every mutation.
//
// Presentation, navigation and any other user-facing surface are external
// collaborators: they read computed values from this package and feed user
// actions back through the mutators.
package shopbook
