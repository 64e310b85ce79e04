package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/bolan/internal/cli"
	"github.com/theirongolddev/bolan/internal/client"
	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/server"

	"github.com/spf13/cobra"
)

var flagStatusServer string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show request counters of a running bolan server",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&flagStatusServer, "server", "", "Server `host:port` (default from config)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	addr := flagStatusServer
	if addr == "" {
		addr = config.LoadOrDefault().Server.Addr
	}

	c := client.New(addr)
	if c == nil {
		return errors.New("no server address: pass --server or set server.addr")
	}
	st, err := c.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("server %s: %w", addr, err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BOLAN SERVER  " + addr))
	fmt.Println()
	fmt.Print(renderStatus(st, time.Now()))
	return nil
}

func renderStatus(st server.Status, now time.Time) string {
	rows := [][]string{
		{"Startad", st.StartedAt.Local().Format("2006-01-02 15:04:05")},
		{"Upptid", now.Sub(st.StartedAt).Round(time.Second).String()},
		{"---"},
		{"Förfrågningar", cli.FormatInt(st.Requests)},
		{"Beräkningar", cli.FormatInt(st.Calculations)},
		{"Avvisade", cli.FormatInt(st.Rejected)},
	}
	tones := []cli.Tone{cli.ToneNeutral, cli.ToneNeutral, cli.ToneNeutral, cli.ToneNeutral, cli.ToneGood, cli.ToneNeutral}
	if st.Rejected > 0 {
		tones[5] = cli.ToneBad
	}
	if st.LastError != "" {
		rows = append(rows, []string{"Senaste fel", st.LastError})
		tones = append(tones, cli.ToneBad)
	}
	return cli.RenderTable(cli.Table{Rows: rows, Tones: tones})
}
