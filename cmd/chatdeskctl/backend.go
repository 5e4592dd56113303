package main

import (
    "encoding/json"
    "errors"
    "fmt"

    "chatdesk/internal/backend"
    "chatdesk/internal/gui/config"

    "github.com/rs/zerolog/log"
    "github.com/spf13/cobra"
)

// errProbeFailed は疎通確認が ok=false だったときの終了コード用。
var errProbeFailed = errors.New("backend is not reachable")

func newBackendCmd(c *cli) *cobra.Command {
    cmd := &cobra.Command{
        Use:   "backend",
        Short: "バックエンドURLの参照・保存・疎通確認",
    }
    settings := func() *backend.Settings { return backend.NewSettings(config.Open(c.opts.StorePath)) }

    get := &cobra.Command{
        Use:   "get",
        Short: "保存済みのURLを表示（未設定なら既定値）",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            u, err := settings().URL()
            if err != nil { return err }
            fmt.Fprintln(cmd.OutOrStdout(), u)
            return nil
        },
    }

    set := &cobra.Command{
        Use:   "set <url>",
        Short: "URLを正規化して保存",
        Args:  cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            if err := settings().SetURL(args[0]); err != nil { return err }
            log.Info().Str("store", c.opts.StorePath).Msg("backend url saved")
            return nil
        },
    }

    test := &cobra.Command{
        Use:   "test [url]",
        Short: "<url>/health に疎通確認（省略時は保存済みURL）",
        Args:  cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            target := ""
            if len(args) == 1 {
                target = args[0]
            } else {
                u, err := settings().URL()
                if err != nil { return err }
                target = u
            }
            res, err := backend.NewProber().Test(cmd.Context(), target)
            if err != nil { return err }
            enc := json.NewEncoder(cmd.OutOrStdout())
            enc.SetIndent("", "  ")
            if err := enc.Encode(res); err != nil { return err }
            if !res.OK { return errProbeFailed }
            return nil
        },
    }

    cmd.AddCommand(get, set, test)
    return cmd
}
