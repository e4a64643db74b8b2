//go:generate go run go.uber.org/mock/mockgen -source=receipt_repository.go -destination=../../mocks/mock_receipt_repository.go -package=mocks
package storage

import (
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	receiptPrefix = "receipt:upload:"
	xornameIndex  = "idx:xorname:"
)

type IReceiptRepository interface {
	Save(receipt domain.Receipt) error
	List(limit int) ([]domain.Receipt, error)
	FindByXorname(xorname string) (domain.Receipt, error)
}

// ReceiptRepository keeps an audit trail of successful uploads.
// Keys follow receipt:upload:<unix nano>:<xorname> so a prefix scan is chronological,
// and idx:xorname:<xorname> points back to the latest receipt of an address.
type ReceiptRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReceiptRepository(db *badger.DB, log *slog.Logger) *ReceiptRepository {
	return &ReceiptRepository{db: db, log: log}
}

func receiptKey(receipt domain.Receipt) string {
	return fmt.Sprintf("%s%d:%s", receiptPrefix, receipt.UploadedAt.UnixNano(), strings.ToLower(receipt.Xorname))
}

// Save writes the receipt and its xorname index in one transaction.
func (r *ReceiptRepository) Save(receipt domain.Receipt) error {
	data, err := marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt %s: %w", receipt.Xorname, err)
	}
	key := receiptKey(receipt)

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		return txn.Set([]byte(xornameIndex+strings.ToLower(receipt.Xorname)), []byte(key))
	})
}

// List returns up to limit receipts, most recent first. A limit <= 0 returns everything.
func (r *ReceiptRepository) List(limit int) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	prefix := []byte(receiptPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode Seek lands on the greatest key <= the target
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(receipts) >= limit {
				break
			}
			err := it.Item().Value(func(v []byte) error {
				var receipt domain.Receipt
				if err := unmarshal(v, &receipt); err != nil {
					return fmt.Errorf("failed to unmarshal receipt: %w", err)
				}
				receipts = append(receipts, receipt)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during receipt scan: %w", err)
	}
	return receipts, nil
}

// FindByXorname returns the latest receipt recorded for an address.
func (r *ReceiptRepository) FindByXorname(xorname string) (domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(xornameIndex + strings.ToLower(xorname)))
		if err != nil {
			return err
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err = txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return unmarshal(v, &receipt)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return receipt, fmt.Errorf("%w: %s", errors.ErrReceiptNotFound, xorname)
	}
	return receipt, err
}

// DecodeReceipt reads a raw value stored under a receipt key.
func DecodeReceipt(val []byte) (domain.Receipt, error) {
	var receipt domain.Receipt
	if err := unmarshal(val, &receipt); err != nil {
		return receipt, fmt.Errorf("failed to unmarshal receipt: %w", err)
	}
	return receipt, nil
}

// IsReceiptKey tells receipts apart from index entries.
func IsReceiptKey(key string) bool {
	return strings.HasPrefix(key, receiptPrefix)
}
