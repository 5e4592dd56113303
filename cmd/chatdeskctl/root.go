package main

import (
    "fmt"
    "io"

    "chatdesk/internal/gui/config"
    "chatdesk/internal/logging"

    "github.com/spf13/cobra"
    "github.com/spf13/viper"
)

// cli は各サブコマンドで共有する状態。
type cli struct {
    v      *viper.Viper
    opts   *config.Options
    closer io.Closer
}

func newRootCmd() *cobra.Command {
    c := &cli{v: config.NewViper()}
    root := &cobra.Command{
        Use:           "chatdeskctl",
        Short:         "chatdesk のバックエンド設定をコマンドラインから操作する",
        SilenceUsage:  true,
        SilenceErrors: true,
        PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
            opts, err := config.LoadOptions(c.v)
            if err != nil { return err }
            c.opts = opts
            // CLI はファイルへは書かない
            closer, err := logging.Init(opts.LogLevel, true, "")
            if err != nil { return err }
            c.closer = closer
            return nil
        },
        PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
            if c.closer != nil { return c.closer.Close() }
            return nil
        },
    }

    pf := root.PersistentFlags()
    pf.String("config", "", "設定ストアのパス (既定: <UserConfigDir>/chatdesk/config.json)")
    pf.String("log-level", "", "ログレベル (debug, info, warn, error)")
    _ = c.v.BindPFlag("store_path", pf.Lookup("config"))
    _ = c.v.BindPFlag("log_level", pf.Lookup("log-level"))

    root.AddCommand(newBackendCmd(c), newRevealCmd(), newVersionCmd())
    return root
}

func newVersionCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "version",
        Short: "バージョン情報を表示",
        Args:  cobra.NoArgs,
        Run: func(cmd *cobra.Command, args []string) {
            fmt.Fprintf(cmd.OutOrStdout(), "chatdeskctl %s (commit %s, built %s)\n", version, commit, date)
        },
    }
}
