// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created by a merchant in NEW status and moves along the directed
// transition graph (see Status). Two transitions carry side data: READY stores
// the rider's phone number and mints the rider access token, DISPATCHED mints
// the customer access token. Both tokens are minted exactly once and never
// rotated. After delivery the customer can attach a satisfaction rating through
// their token; resubmission is last-write-wins.
package order
