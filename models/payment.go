package models

import "time"

// PaymentRequest mirrors the payment contract's verifyPaymentSignature /
// executePayment argument tuple. All validity checking beyond presence is
// the contract's job.
type PaymentRequest struct {
	User      string `json:"user"`
	Tier      uint8  `json:"tier"`
	ContentID string `json:"contentId"`
	Nonce     int64  `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

// Receipt is the append-only journal row written after a transaction is
// mined. Nothing gates on it; it exists so operators can audit replays and
// reconcile faucet spend.
type Receipt struct {
	ID        uint   `gorm:"primarykey"`
	TxHash    string `gorm:"index"`
	Kind      string // payment | transfer_from | faucet
	User      string `gorm:"index"`
	Tier      uint8
	ContentID string
	Amount    string // raw token units, decimal string
	CreatedAt time.Time
}
