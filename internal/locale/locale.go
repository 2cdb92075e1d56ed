// Package locale holds the spoken descriptions for feedback events.
// Japanese is the only language shipped; the table is consulted
// read-only and unknown keys fall back to the key itself so voice
// output never fails on a missing translation.
package locale

// descriptions maps voice keys to Japanese announcement text.
var descriptions = map[string]string{
	// Lifecycle events.
	"Notification":     "クロードが準備完了しました",
	"Stop":             "タスクが完了しました",
	"SubagentStop":     "サブタスクが完了しました",
	"UserPromptSubmit": "ユーザーがプロンプトを送信しました",

	// Tools.
	"Edit":           "ファイルを編集しています",
	"MultiEdit":      "複数の編集を実行しています",
	"Write":          "ファイルを作成しています",
	"NotebookEdit":   "ノートブックを編集しています",
	"TodoWrite":      "タスクリストを更新しています",
	"Read":           "ファイルを読み込んでいます",
	"Grep":           "テキストを検索しています",
	"Task":           "タスクを実行しています",
	"Bash":           "コマンドを実行しています",
	"LS":             "ディレクトリを一覧表示しています",
	"Glob":           "ファイルパターンを検索しています",
	"exit_plan_mode": "計画モードを終了しています",
	"WebFetch":       "ウェブページを取得しています",
	"WebSearch":      "ウェブ検索を実行しています",

	// Shell commands.
	"git_commit": "Gitコミットを作成しています",
	"git_push":   "変更をプッシュしています",
	"git_pull":   "変更をプルしています",
	"gh_pr":      "プルリクエストを作成しています",
	"test":       "テストを実行しています",
	"build":      "ビルドを実行しています",
	"docker":     "Dockerコマンドを実行しています",
	"npm":        "NPMコマンドを実行しています",
	"python":     "Pythonスクリプトを実行しています",
}

// Translate returns the localized description for key, or the key
// itself when no translation exists.
func Translate(key string) string {
	if text, ok := descriptions[key]; ok {
		return text
	}
	return key
}
