package crypto

import "errors"

// Sentinel errors returned by the crypto layer.
var (
	// ErrAuthenticationFailed indicates that AES-GCM tag verification
	// failed during decryption. This almost always means a wrong key
	// (wrong master password) or tampered ciphertext; the two cases are
	// deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrKeyDestroyed indicates that an operation was attempted with
	// key material that has already been wiped or destroyed.
	ErrKeyDestroyed = errors.New("key material destroyed")

	// ErrInvalidSalt indicates that a key derivation was attempted
	// with a missing or malformed salt.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrInvalidWrappedBlob indicates that a wrapped session key blob
	// is malformed (wrong encoding or shorter than its fixed layout).
	ErrInvalidWrappedBlob = errors.New("invalid wrapped key blob")

	// ErrUnwrapFailed indicates that a wrapped session key blob could
	// not be unwrapped with the given server secret.
	ErrUnwrapFailed = errors.New("unwrap failed")
)
