// Package i18n holds the user-facing message tables for the two supported
// locales. Lookup is pure: unknown keys and unknown locales yield "".
package i18n

import (
	"strings"

	"github.com/nkuznetsov/wordduel/internal/model"
)

// Key identifies a message template
type Key string

const (
	KeyChooseLanguage  Key = "choose_language"
	KeyEnterName       Key = "enter_name"
	KeyDefaultName     Key = "default_name"
	KeyEnterOriginal   Key = "enter_original"
	KeyInvalidOriginal Key = "invalid_original"
	KeyMovePrompt      Key = "move_prompt"
	KeyInvalidMove     Key = "invalid_move"
	KeyUnknownCommand  Key = "unknown_command"
	KeyUsedWords       Key = "used_words"
	KeyScore           Key = "score"
	KeyTotalScore      Key = "total_score"
	KeyScoreEntry      Key = "score_entry"
	KeyTimeUp          Key = "time_up"
	KeyMatchAborted    Key = "match_aborted"
	KeyPlayAgain       Key = "play_again"
	KeyGoodbye         Key = "goodbye"
)

// messages is the read-only locale-keyed template table, built once at init.
// Templates carry literal placeholders ({player}, {time}, {wins}, {player1},
// {wins1}, {player2}, {wins2}) substituted by callers via Render.
var messages = map[model.Locale]map[Key]string{
	model.LocaleEn: {
		KeyChooseLanguage:  "Choose language / Выберите язык: ru / en",
		KeyEnterName:       "Enter a name for player {player}:",
		KeyDefaultName:     "Player {player}",
		KeyEnterOriginal:   "Enter the original word (8-30 letters):",
		KeyInvalidOriginal: "The original word must be 8 to 30 letters, letters only. Try again.",
		KeyMovePrompt:      "{player}, your word ({time}s left):",
		KeyInvalidMove:     "That word does not work. It must use only the original word's letters and must not repeat.",
		KeyUnknownCommand:  "Unknown command.",
		KeyUsedWords:       "Words played so far:",
		KeyScore:           "{player1}: {wins1} | {player2}: {wins2}",
		KeyTotalScore:      "All-time wins:",
		KeyScoreEntry:      "{player}: {wins}",
		KeyTimeUp:          "Time is up! {player} loses the match.",
		KeyMatchAborted:    "Game interrupted. {player} forfeits the match.",
		KeyPlayAgain:       "Play again? (yes/no)",
		KeyGoodbye:         "Thanks for playing!",
	},
	model.LocaleRu: {
		KeyChooseLanguage:  "Choose language / Выберите язык: ru / en",
		KeyEnterName:       "Введите имя игрока {player}:",
		KeyDefaultName:     "Игрок {player}",
		KeyEnterOriginal:   "Введите исходное слово (8-30 букв):",
		KeyInvalidOriginal: "Исходное слово должно состоять из 8-30 букв. Попробуйте ещё раз.",
		KeyMovePrompt:      "{player}, ваше слово (осталось {time} сек):",
		KeyInvalidMove:     "Слово не подходит: можно использовать только буквы исходного слова, повторы запрещены.",
		KeyUnknownCommand:  "Неизвестная команда.",
		KeyUsedWords:       "Использованные слова:",
		KeyScore:           "{player1}: {wins1} | {player2}: {wins2}",
		KeyTotalScore:      "Общий счёт побед:",
		KeyScoreEntry:      "{player}: {wins}",
		KeyTimeUp:          "Время вышло! {player} проигрывает.",
		KeyMatchAborted:    "Игра прервана. Игроку {player} засчитано поражение.",
		KeyPlayAgain:       "Сыграем ещё? (да/нет)",
		KeyGoodbye:         "Спасибо за игру!",
	},
}

// Message returns the template for a key in a locale.
// Unknown keys and locales return the empty string, never an error;
// callers must tolerate an empty template.
func Message(key Key, locale model.Locale) string {
	table, ok := messages[locale]
	if !ok {
		return ""
	}
	return table[key]
}

// Render substitutes placeholder/value pairs into a template by literal
// text replacement. No escaping is supported.
func Render(template string, pairs ...string) string {
	if len(pairs) < 2 || len(pairs)%2 != 0 {
		return template
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
