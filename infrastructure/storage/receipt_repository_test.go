package storage

import (
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newReceipt(char string, at time.Time) domain.Receipt {
	return domain.Receipt{
		Xorname:          strings.Repeat(char, 64),
		Filename:         char + ".txt",
		DeclaredMimeType: "text/plain",
		DetectedMimeType: "text/plain; charset=utf-8",
		Size:             42,
		UploadedAt:       at,
	}
}

func TestReceiptRepository_SaveAndFind(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewReceiptRepository(db, slog.Default())
	receipt := newReceipt("a", time.Date(2026, 1, 1, 10, 0, 0, 123, time.UTC))

	req.NoError(repo.Save(receipt))

	found, err := repo.FindByXorname(strings.ToUpper(receipt.Xorname))
	req.NoError(err)
	req.Equal(receipt.Xorname, found.Xorname)
	req.Equal(receipt.Filename, found.Filename)
	req.Equal(receipt.DetectedMimeType, found.DetectedMimeType)
	req.Equal(receipt.Size, found.Size)
	req.True(receipt.UploadedAt.Equal(found.UploadedAt))
}

func TestReceiptRepository_FindUnknown(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	_, err := NewReceiptRepository(db, slog.Default()).FindByXorname(strings.Repeat("f", 64))
	require.ErrorIs(t, err, errors.ErrReceiptNotFound)
}

func TestReceiptRepository_ListMostRecentFirst(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewReceiptRepository(db, slog.Default())
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	// Given three receipts stored out of order
	req.NoError(repo.Save(newReceipt("b", t1.Add(time.Hour))))
	req.NoError(repo.Save(newReceipt("a", t1)))
	req.NoError(repo.Save(newReceipt("c", t1.Add(2*time.Hour))))

	// When listing everything
	all, err := repo.List(0)
	req.NoError(err)

	// Then the newest comes first
	req.Len(all, 3)
	req.Equal("c.txt", all[0].Filename)
	req.Equal("b.txt", all[1].Filename)
	req.Equal("a.txt", all[2].Filename)

	// When listing with a limit
	limited, err := repo.List(2)
	req.NoError(err)
	req.Len(limited, 2)
	req.Equal("c.txt", limited[0].Filename)
}

func TestReceiptRepository_IndexPointsToLatest(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewReceiptRepository(db, slog.Default())
	first := newReceipt("e", time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	second := first
	second.Filename = "renamed.txt"
	second.UploadedAt = first.UploadedAt.Add(time.Minute)

	req.NoError(repo.Save(first))
	req.NoError(repo.Save(second))

	found, err := repo.FindByXorname(first.Xorname)
	req.NoError(err)
	req.Equal("renamed.txt", found.Filename)
}
