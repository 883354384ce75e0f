package main

import (
	"chat-poll/repositories"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	// msg: by default, rcpt: and mbr: only hold index keys
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, grp:, rcpt:, mbr:, gmbr:, seen:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := repositories.Inspect(context.Background(), db, *prefix)
	if err != nil {
		log.Fatal(err)
	}

	color.Cyan.Printf("%d key(s) under %q in %s\n", len(rows), *prefix, *dbPath)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "ID", "From", "To", "Detail"})
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

	for _, row := range rows {
		table.Append([]string{row.Key, row.Type, row.Timestamp, row.ID, row.From, row.To, truncate(row.Detail, 48)})
	}
	table.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves the value log untruncated, which read-only mode refuses
		if strings.Contains(err.Error(), "Log truncate required") {
			color.Yellow.Println("Value log needs truncation, reopening in write mode once")
			repair, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = repair.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
