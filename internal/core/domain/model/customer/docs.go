// Package customer contains the customer identity entity attached to a
// checkout after login or registration.
package customer
