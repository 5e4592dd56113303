package config

import (
    "path/filepath"
    "strings"

    "github.com/spf13/viper"
)

// Options はプロセス起動時の設定（環境変数 CHATDESK_* で上書き可）。
type Options struct {
    LogLevel  string `mapstructure:"log_level"`
    LogPretty bool   `mapstructure:"log_pretty"`
    LogFile   string `mapstructure:"log_file"`
    StorePath string `mapstructure:"store_path"`
}

// NewViper は既定値と環境変数の紐付け済み viper を返す。CLI はこれにフラグを bind する。
func NewViper() *viper.Viper {
    v := viper.New()
    v.SetEnvPrefix("CHATDESK")
    v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
    v.AutomaticEnv()
    v.SetDefault("log_level", "info")
    v.SetDefault("log_pretty", true)
    v.SetDefault("log_file", "")
    v.SetDefault("store_path", "")
    return v
}

// LoadOptions は v から Options を組み立て、空のパスを既定値で埋める。
func LoadOptions(v *viper.Viper) (*Options, error) {
    if v == nil { v = NewViper() }
    o := &Options{
        LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
        LogPretty: v.GetBool("log_pretty"),
        LogFile:   strings.TrimSpace(v.GetString("log_file")),
        StorePath: strings.TrimSpace(v.GetString("store_path")),
    }
    if o.LogLevel == "" { o.LogLevel = "info" }
    if o.StorePath == "" {
        p, err := DefaultPath()
        if err != nil { return nil, err }
        o.StorePath = p
    }
    if o.LogFile == "" {
        o.LogFile = filepath.Join(filepath.Dir(o.StorePath), "logs", "chatdesk.log")
    }
    return o, nil
}
