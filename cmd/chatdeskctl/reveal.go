package main

import (
    "chatdesk/internal/reveal"

    "github.com/spf13/cobra"
)

func newRevealCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "reveal <path>",
        Short: "ファイルマネージャでパスを表示",
        Args:  cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            return reveal.New().Reveal(args[0])
        },
    }
}
