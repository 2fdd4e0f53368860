// Package services holds the domain logic that spans more than one aggregate.
//
//   - DiscountCalculator prices a voucher against a car price. It is a pure
//     function of the voucher, the price and the evaluation time.
//   - Handover issues delivery tickets and closes them, keeping the vehicle
//     unit and the customer order in step with the ticket.
package services
