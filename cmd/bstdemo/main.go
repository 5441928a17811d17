package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/npat-efault/bst/internal/config"
	"github.com/npat-efault/bst/internal/driver"
	"github.com/npat-efault/bst/internal/logging"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := config.CreateCommand(runApp, version)
	if err := cmd.Run(ctx, os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func runApp(ctx context.Context, cfg *config.Config) error {
	logging.SetGlobalLogger(*cfg.LogLevel)
	logger := logging.WithScope(log.Logger, "DRIVER")

	if !*cfg.Silent {
		printBanner(cfg)
	}

	rep, err := driver.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return printReport(rep)
}

func printBanner(cfg *config.Config) {
	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("BST", pterm.NewStyle(pterm.FgCyan)),
	).Render()

	_ = pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "INSERT  : " + joinKeys(cfg.Insert)},
		{Level: 0, Text: "SEARCH  : " + joinKeys(cfg.Search)},
		{Level: 0, Text: "DELETE  : " + joinKeys(cfg.Delete)},
		{Level: 0, Text: "VERIFY  : " + fmt.Sprint(*cfg.Verify)},
	}).Render()
}

func printReport(rep *driver.Report) error {
	data := pterm.TableData{{"Phase", "Order", "Keys"}}
	for _, tr := range rep.Traversals {
		data = append(data, []string{tr.Phase, tr.Order.String(), joinKeys(tr.Keys)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	for _, l := range rep.Lookups {
		if l.Found {
			pterm.Success.Printfln("search(%d): found", l.Key)
		} else {
			pterm.Warning.Printfln("search(%d): not found", l.Key)
		}
	}
	if len(rep.Duplicates) > 0 {
		pterm.Info.Printfln("duplicates ignored: %s", joinKeys(rep.Duplicates))
	}
	if len(rep.Absent) > 0 {
		pterm.Info.Printfln("absent, not deleted: %s", joinKeys(rep.Absent))
	}
	pterm.Info.Printfln("%d nodes, height %d, %d nodes destroyed on teardown",
		rep.Len, rep.Height, rep.Destroyed)
	return nil
}

func joinKeys(keys []int) string {
	if len(keys) == 0 {
		return "-"
	}
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	return strings.Join(s, " ")
}
