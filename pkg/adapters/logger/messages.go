package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Service level messages (info)
		"Zip output:\n%s": "zip の出力:\n%s",

		// CLI progress
		"Loaded configuration from %s":              "%s から設定を読み込みました",
		"Project root: %s":                          "プロジェクトルート: %s",
		"Created directory %s":                      "ディレクトリ %s を作成しました",
		"Removed directory %s":                      "ディレクトリ %s を削除しました",
		"Copied %s to %s":                           "%s を %s にコピーしました",
		"Archive written to %s":                     "アーカイブを %s に書き出しました",
		"Wrote %d bytes to %s":                      "%d バイトを %s に書き込みました",
		"Removed file %s":                           "ファイル %s を削除しました",
		"Loaded plugin %s":                          "プラグイン %s を読み込みました",
		"zip not found, archive commands will fail": "zip が見つかりません。アーカイブコマンドは失敗します",

		// Warnings
		"Project root %s does not exist": "プロジェクトルート %s が存在しません",

		// Errors
		"Failed to load plugin %s: %s": "プラグイン %s の読み込みに失敗しました: %s",
	})
}
