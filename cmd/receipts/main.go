// Command receipts lists the uploads recorded by a bridge.
//
//	receipts --db ./data/receipts --limit 20
//	receipts --db ./data/receipts --xorname <64 hex>
package main

import (
	"dweb-bridge/domain"
	"dweb-bridge/infrastructure/storage"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "receipts: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var (
		dbPath  string
		limit   int
		xorname string
	)
	flagSet := pflag.NewFlagSet("receipts", pflag.ContinueOnError)
	flagSet.StringVar(&dbPath, "db", os.Getenv("RECEIPTS_DB_PATH"), "path to the receipts Badger directory")
	flagSet.IntVar(&limit, "limit", 50, "maximum number of receipts to print, 0 for all")
	flagSet.StringVar(&xorname, "xorname", "", "only print the latest receipt of this address")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if dbPath == "" {
		return fmt.Errorf("--db or RECEIPTS_DB_PATH is required")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", dbPath, err)
	}
	defer db.Close()

	repository := storage.NewReceiptRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
	receipts, err := load(repository, limit, xorname)
	if err != nil {
		return err
	}
	render(out, receipts)
	return nil
}

func load(repository storage.IReceiptRepository, limit int, xorname string) ([]domain.Receipt, error) {
	if xorname == "" {
		return repository.List(limit)
	}
	receipt, err := repository.FindByXorname(strings.TrimSpace(xorname))
	if err != nil {
		return nil, err
	}
	return []domain.Receipt{receipt}, nil
}

func render(out io.Writer, receipts []domain.Receipt) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Uploaded At", "Xorname", "Filename", "Declared", "Detected", "Size"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, receipt := range receipts {
		table.Append([]string{
			receipt.UploadedAt.Format("2006-01-02 15:04:05"),
			receipt.Xorname,
			receipt.Filename,
			receipt.DeclaredMimeType,
			receipt.DetectedMimeType,
			strconv.Itoa(receipt.Size),
		})
	}
	table.Render()
}
