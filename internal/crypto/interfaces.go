package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mocks.go -package=mock

// KeyService owns every master-password key derivation in the
// zero-knowledge scheme. It knows nothing about the network, the
// database, or users; its only job is turning passwords into keys and
// producing the random material around them.
//
// Scheme:
//
//	Salt          = GenerateSalt()                         (once, at vault init)
//	VaultKey      = DeriveOpaqueKey(password, salt)        (every unlock)
//	ServerSecret  = GenerateServerSecret()                 (every unlock)
//	WrappedKey    = SessionKeyWrapper.Wrap(exportable key) (every unlock)
type KeyService interface {
	// GenerateSalt produces a random 16-byte KDF salt. The salt is not
	// a secret; it is stored openly alongside the vault config so the
	// same password always derives the same key for one vault while
	// identical passwords across vaults derive different keys.
	GenerateSalt() ([]byte, error)

	// GenerateServerSecret produces the random 32-byte per-session
	// secret held by durable storage. It is one half of the split
	// needed to recover a persisted session key.
	GenerateServerSecret() ([]byte, error)

	// DeriveOpaqueKey derives the 256-bit vault key from the master
	// password and salt via PBKDF2-HMAC-SHA256 and returns it in
	// non-extractable form. This is the default shape of the live
	// working key; nothing outside the crypto package can read it.
	DeriveOpaqueKey(password string, salt []byte) (*OpaqueKey, error)

	// DeriveExportableKey derives the same key in extractable form.
	// Used only transiently on the unlock path, where the raw bytes
	// must be wrapped for session persistence before being sealed
	// away or wiped.
	DeriveExportableKey(password string, salt []byte) (*ExportableKeyMaterial, error)
}

// SessionKeyWrapper converts a derived vault key to and from an opaque
// storable blob. Wrapping encrypts the key under a secret held by the
// durable store; the blob itself lives in client-local storage. An
// attacker needs both halves plus the wrap derivation to recover the
// key, which is exactly the split the session design relies on.
type SessionKeyWrapper interface {
	// Wrap encrypts the key material under serverSecret and returns a
	// base64 blob safe to park in client-local storage.
	Wrap(material *ExportableKeyMaterial, serverSecret []byte) (string, error)

	// Unwrap reverses Wrap. Returns ErrInvalidWrappedBlob for
	// malformed blobs and ErrUnwrapFailed when the secret does not
	// match the blob.
	Unwrap(blobB64 string, serverSecret []byte) (*ExportableKeyMaterial, error)
}
