// Package ledger holds the finance data model of Meu Painel and the pure
// functions computing figures from it.
//
// Values in this package are never modified in place. Operations that change
// a PersonData return a new value and leave the receiver untouched, so a
// snapshot can be shared freely between readers.
package ledger
