// Package models defines the core domain models for settleup.
//
// # Models
//
//   - Participant: a person in the group and the amount they contributed
//   - Balance: a participant's signed position against the fair share
//   - Transaction: a payment instruction from a debtor to a creditor
//   - User: an operator allowed to call the API when auth is enabled
//
// Participants are identified by name strings. Names are expected to be
// unique within one settlement request; the calculator package provides
// ValidateParticipants for collaborators that accept free-form input.
//
// # Design Principles
//
//  1. **Values, not pointers**: the engine copies participants into its own
//     Balance records and never mutates caller data
//  2. **No persistence**: every model is recomputed on each request
//  3. **Names as identity**: transactions reference participants by name
package models
