// Package main provides localization for the projfs CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Project-relative file and directory operations": "プロジェクト相対のファイル・ディレクトリ操作",

		// Global flags
		"Project root prepended to every path":         "すべてのパスの前に付けるプロジェクトルート",
		"YAML configuration file":                      "YAML 設定ファイル",
		"Environment file loaded before configuration": "設定より先に読み込む環境ファイル",
		"Path to the zip executable":                   "zip 実行ファイルのパス",
		"Log level (debug, info, warn, error)":         "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                      "すべてのログ出力を抑制",

		// Directory commands
		"List the directories under a path":            "パス直下のディレクトリを一覧表示",
		"Create a directory and any missing parents":   "ディレクトリを親ディレクトリごと作成",
		"Remove a directory recursively":               "ディレクトリを再帰的に削除",
		"Copy a directory recursively":                 "ディレクトリを再帰的にコピー",
		"Archive a directory into <target>/<name>.zip": "ディレクトリを <target>/<name>.zip にアーカイブ",

		// File commands
		"Print a file":                           "ファイルを表示",
		"Write raw bytes without UTF-8 decoding": "UTF-8 デコードせずにバイト列をそのまま出力",
		"Replace a file's contents (reads stdin when content is omitted)": "ファイルの内容を置き換え（内容省略時は標準入力から読み込み）",
		"Remove a file":                       "ファイルを削除",
		"Copy a file, overwriting the target": "ファイルをコピー（コピー先は上書き）",

		// Plugins
		"Load an allowed plugin and list its exports": "許可されたプラグインを読み込みエクスポートを一覧表示",

		// Version command
		"Show version information": "バージョン情報を表示",
		"projfs version %s":        "projfs バージョン %s",

		// Errors
		"%s: expected %d argument(s), got %d":       "%s: 引数は %d 個必要ですが %d 個指定されました",
		"%s: expected %d or %d argument(s), got %d": "%s: 引数は %d 個または %d 個必要ですが %d 個指定されました",
	})
}
