// Package contentledger contains the creatorpass content listing and
// subscription ledger.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package contentledger
