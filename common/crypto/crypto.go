// Package crypto wraps the secp256k1 primitives the ledger boundary needs:
// key generation, transaction signing and signature verification.
package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	secpecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// PrivKey is a secp256k1 private key.
type PrivKey = btcec.PrivateKey

// GenKey generates a fresh private key.
func GenKey() (*PrivKey, error) {
	return btcec.NewPrivateKey()
}

// PrivKeyFromBytes restores a private key from its 32 raw bytes.
func PrivKeyFromBytes(b []byte) *PrivKey {
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv
}

// PrivKeyBytes returns the 32 raw bytes of a private key.
func PrivKeyBytes(priv *PrivKey) []byte {
	return priv.Serialize()
}

// PubKeyBytes returns the 33-byte compressed public key.
func PubKeyBytes(priv *PrivKey) []byte {
	return priv.PubKey().SerializeCompressed()
}

// Sign produces a DER encoded ECDSA signature over hash.
func Sign(hash []byte, priv *PrivKey) []byte {
	return secpecdsa.Sign(priv, hash).Serialize()
}

// Verify checks a DER signature over hash against a compressed public key.
func Verify(hash, sigBytes, pubBytes []byte) bool {
	pub, err := btcec.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}
	sig, err := secpecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}
	return sig.Verify(hash, pub)
}

// IsPoint reports whether the 33 compressed bytes decode to a valid curve
// point. Derived game addresses must fail this test so that no private key
// can ever control a game account.
func IsPoint(compressed []byte) bool {
	_, err := btcec.ParsePubKey(compressed)
	return err == nil
}
