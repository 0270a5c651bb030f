package types

import (
	"github.com/mrtoaf/rugpaperscissors/common"
	"github.com/mrtoaf/rugpaperscissors/common/address"
	"github.com/mrtoaf/rugpaperscissors/common/crypto"
)

// Signature authenticates the submitter of a transaction. The ledger derives
// the caller identity from Pubkey, so the state machine never sees raw keys.
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

// Transaction is one signed operation request against the ledger.
type Transaction struct {
	Execer    []byte     `json:"execer"`
	Payload   []byte     `json:"payload"`
	Nonce     int64      `json:"nonce"`
	Signature *Signature `json:"signature,omitempty"`

	from string
}

// Hash returns the transaction hash over everything except the signature.
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Sign signs the transaction with the given secp256k1 private key.
func (tx *Transaction) Sign(priv *crypto.PrivKey) {
	tx.from = ""
	tx.Signature = &Signature{
		Ty:        SECP256K1,
		Pubkey:    crypto.PubKeyBytes(priv),
		Signature: crypto.Sign(tx.Hash(), priv),
	}
}

// CheckSign verifies the signature against the transaction hash.
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil || tx.Signature.Ty != SECP256K1 {
		return false
	}
	return crypto.Verify(tx.Hash(), tx.Signature.Signature, tx.Signature.Pubkey)
}

// From returns the address of the signer. The result is cached; an unsigned
// transaction has no sender.
func (tx *Transaction) From() string {
	if tx.from != "" {
		return tx.from
	}
	if tx.Signature == nil {
		return ""
	}
	tx.from = address.PubKeyToAddress(tx.Signature.Pubkey).String()
	return tx.from
}
