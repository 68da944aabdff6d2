package proposer

import (
	"fmt"
	"strings"

	"GO-janken/internal/janken"
)

const promptTemplate = `あなたはじゃんけんの対戦相手です。
過去の履歴:
%s
選択肢: %s
ユーザーの傾向を考慮し、勝つ可能性を高める手を「%s手%s」の形式で返してください。`

// RenderPrompt builds the request sent to the completion backend. The
// current human move is deliberately not part of it.
func RenderPrompt(history *janken.History) string {
	rendered := history.Render()
	if rendered == "" {
		rendered = "なし"
	}
	return fmt.Sprintf(promptTemplate, rendered, strings.Join(janken.MoveNames(), "、"), choicePrefix, choiceSuffix)
}
