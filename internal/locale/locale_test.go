package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_KnownKeys(t *testing.T) {
	assert.Equal(t, "タスクが完了しました", Translate("Stop"))
	assert.Equal(t, "Gitコミットを作成しています", Translate("git_commit"))
	assert.Equal(t, "コマンドを実行しています", Translate("Bash"))
}

func TestTranslate_UnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Translate("no_such_key"))
	assert.Equal(t, "", Translate(""))
}
