// Package delivery models the delivery ticket: the handover of one vehicle unit
// to a customer, with the price and voucher discount locked in at issue time.
//
// Tickets are PENDING until handed over (DELIVERED) or called off (CANCELLED).
// The admin console calls these RESERVED and COMPLETED; ParseStatus accepts both
// spellings and the aggregate always stores the canonical one.
package delivery
