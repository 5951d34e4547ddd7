package service

import (
	"math/big"

	"github.com/draftforge/draftforge-server/models"
	"github.com/dustin/go-humanize"
)

// RecordReceipt journals a mined transaction. Best effort: a journal write
// failure never fails the request that produced the transaction.
func (s *Service) RecordReceipt(kind, txHash, user string, tier uint8, contentID string, amount *big.Int) {
	if amount == nil {
		amount = big.NewInt(0)
	}
	s.Log.Infow("tx mined",
		"kind", kind, "tx", txHash, "user", user,
		"amount", humanize.BigComma(amount))
	if s.DB == nil {
		return
	}
	receipt := models.Receipt{
		TxHash:    txHash,
		Kind:      kind,
		User:      user,
		Tier:      tier,
		ContentID: contentID,
		Amount:    amount.String(),
	}
	if err := s.DB.Create(&receipt).Error; err != nil {
		s.Log.Warnw("receipt journal write failed", "tx", txHash, "err", err)
	}
}
