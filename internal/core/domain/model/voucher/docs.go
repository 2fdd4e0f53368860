// Package voucher contains the Voucher aggregate: a discount code of type FLAT,
// PERCENT or PACKAGE with an optional qualifying minimum price, an optional
// discount cap and an optional inclusive validity window.
//
// Codes are unique case-insensitively. CodeKey gives the normalised form used
// for lookups and the unique index.
//
// Computing the discount itself lives in the domain services package so that
// pricing stays a pure function over a voucher and a price.
package voucher
