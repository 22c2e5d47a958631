// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gate is the precondition pipeline every pool operation runs
// before mutating state. Each check is a pure predicate over
// caller-supplied references and state the operation has already read; a
// wrong-position account reference is indistinguishable from a malicious
// substitution, so references are never trusted by position alone.
package gate

import (
	"errors"

	"github.com/ava-labs/hypersdk/codec"
)

var (
	ErrMissingSignature          = errors.New("operation is not signed")
	ErrInvalidDerivedAddress     = errors.New("account reference does not match derived address")
	ErrOwnershipMismatch         = errors.New("account is not owned by the expected authority")
	ErrUnexpectedServiceIdentity = errors.New("service reference does not match canonical identity")
	ErrAlreadyInitialized        = errors.New("pool already initialized")
	ErrNotInitialized            = errors.New("pool not initialized")
)

// CheckSigner rejects operations without an authenticated initiating
// party.
func CheckSigner(actor codec.Address) error {
	if actor == codec.EmptyAddress {
		return ErrMissingSignature
	}
	return nil
}

// CheckDerivedAddress rejects a caller-supplied account reference that
// does not equal the address derived from the operation's canonical
// inputs.
func CheckDerivedAddress(supplied codec.Address, derived codec.Address) error {
	if supplied != derived {
		return ErrInvalidDerivedAddress
	}
	return nil
}

// CheckDerivedAddresses runs CheckDerivedAddress over supplied/derived
// pairs in order.
func CheckDerivedAddresses(pairs ...[2]codec.Address) error {
	for _, pair := range pairs {
		if err := CheckDerivedAddress(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}

// CheckOwnership rejects an account whose recorded owner is not the
// party the operation debits or credits on behalf of.
func CheckOwnership(owner codec.Address, expected codec.Address) error {
	if owner != expected {
		return ErrOwnershipMismatch
	}
	return nil
}

// CheckService rejects a reference to an external service that is not
// the well-known canonical identity.
func CheckService(supplied codec.Address, canonical codec.Address) error {
	if supplied != canonical {
		return ErrUnexpectedServiceIdentity
	}
	return nil
}

// CheckUninitialized gates pool creation: the record must not exist yet.
func CheckUninitialized(exists bool) error {
	if exists {
		return ErrAlreadyInitialized
	}
	return nil
}

// CheckInitialized gates every other operation: the record must exist.
func CheckInitialized(exists bool) error {
	if !exists {
		return ErrNotInitialized
	}
	return nil
}
