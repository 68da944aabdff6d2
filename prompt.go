package main

const (
	title        = "=== じゃんけんゲーム ==="
	inputPrompt  = "グー、チョキ、パーのいずれかを選んでください（やめる場合は「やめる」、履歴は「履歴」と入力）: "
	invalidInput = "無効な入力です。グー、チョキ、パーのいずれかを選んでください。"
	quitWord     = "やめる"
	historyWord  = "履歴"
	historyTitle = "=== ゲーム履歴 ==="
	noHistory    = "履歴はありません。"
	goodbye      = "ゲームを終了しました。"
)
