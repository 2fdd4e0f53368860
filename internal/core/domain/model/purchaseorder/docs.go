// Package purchaseorder models orders placed with the vehicle manufacturer.
//
// A purchase order starts as DRAFT and is advanced manually by a manager
// through SUBMITTED to CONFIRMED, or cancelled before confirmation. The legal
// edges come from the statusguard package; this package only wraps them in a
// typed Status and keeps timestamps current.
//
// An order may carry a Plan (car model and quantity). When the order is
// confirmed, the application layer spawns that many ON_ORDER vehicle units.
package purchaseorder
