package i18n

// Message keys outside the equation error codes.
const (
	KeyGameFinished  = "GAME_FINISHED"
	KeyAlreadyPlayed = "ALREADY_PLAYED"
)

// messages maps a base language to key -> text. English is the fallback
// and must define every key.
var messages = map[string]map[string]string{
	"en": {
		"WRONG_LENGTH":               "Equation must be 8 characters",
		"INVALID_CHARACTER":          "Contains invalid characters",
		"MISSING_OR_MULTIPLE_EQUALS": "Equation must contain exactly one equals sign",
		"EQUALS_POSITION_INVALID":    "Equals sign is in the wrong position",
		"RIGHT_SIDE_NOT_NUMERIC":     "Right side of the equals sign must be a number",
		"LEADING_ZERO":               "Leading zeros are not allowed",
		"MALFORMED_EXPRESSION":       "Left side is not a valid expression",
		"ARITHMETIC_MISMATCH":        "The equation does not compute",
		"NON_INTEGER_RESULT":         "Result must be a whole number",
		KeyGameFinished:              "This game is over",
		KeyAlreadyPlayed:             "You already played today's puzzle",
	},
	"zh": {
		"WRONG_LENGTH":               "等式必须是8个字符",
		"INVALID_CHARACTER":          "包含无效字符",
		"MISSING_OR_MULTIPLE_EQUALS": "等式必须包含且只能包含一个等号",
		"EQUALS_POSITION_INVALID":    "等号位置不正确",
		"RIGHT_SIDE_NOT_NUMERIC":     "等号右侧必须是数字",
		"LEADING_ZERO":               "不允许前导零",
		"MALFORMED_EXPRESSION":       "左侧表达式格式不正确",
		"ARITHMETIC_MISMATCH":        "等式计算结果不正确",
		"NON_INTEGER_RESULT":         "结果必须是整数",
		KeyGameFinished:              "本局游戏已结束",
		KeyAlreadyPlayed:             "今天的题目已经玩过了",
	},
	"ja": {
		"WRONG_LENGTH":               "式は8文字でなければなりません",
		"INVALID_CHARACTER":          "無効な文字が含まれています",
		"MISSING_OR_MULTIPLE_EQUALS": "等号はちょうど1つ必要です",
		"EQUALS_POSITION_INVALID":    "等号の位置が正しくありません",
		"RIGHT_SIDE_NOT_NUMERIC":     "等号の右側は数字でなければなりません",
		"LEADING_ZERO":               "先頭のゼロは使えません",
		"MALFORMED_EXPRESSION":       "左辺の式が正しくありません",
		"ARITHMETIC_MISMATCH":        "計算結果が一致しません",
		"NON_INTEGER_RESULT":         "結果は整数でなければなりません",
		KeyGameFinished:              "このゲームは終了しました",
		KeyAlreadyPlayed:             "今日のパズルはプレイ済みです",
	},
	"ko": {
		"WRONG_LENGTH":               "등식은 8자여야 합니다",
		"INVALID_CHARACTER":          "잘못된 문자가 포함되어 있습니다",
		"MISSING_OR_MULTIPLE_EQUALS": "등호는 정확히 하나여야 합니다",
		"EQUALS_POSITION_INVALID":    "등호 위치가 올바르지 않습니다",
		"RIGHT_SIDE_NOT_NUMERIC":     "등호 오른쪽은 숫자여야 합니다",
		"LEADING_ZERO":               "앞자리에 0을 쓸 수 없습니다",
		"MALFORMED_EXPRESSION":       "왼쪽 식의 형식이 올바르지 않습니다",
		"ARITHMETIC_MISMATCH":        "계산 결과가 맞지 않습니다",
		"NON_INTEGER_RESULT":         "결과는 정수여야 합니다",
		KeyGameFinished:              "게임이 끝났습니다",
		KeyAlreadyPlayed:             "오늘의 퍼즐을 이미 풀었습니다",
	},
	"pt": {
		"WRONG_LENGTH":               "A equação deve ter 8 caracteres",
		"INVALID_CHARACTER":          "Contém caracteres inválidos",
		"MISSING_OR_MULTIPLE_EQUALS": "A equação deve ter exatamente um sinal de igual",
		"EQUALS_POSITION_INVALID":    "O sinal de igual está na posição errada",
		"RIGHT_SIDE_NOT_NUMERIC":     "O lado direito deve ser um número",
		"LEADING_ZERO":               "Zeros à esquerda não são permitidos",
		"MALFORMED_EXPRESSION":       "O lado esquerdo não é uma expressão válida",
		"ARITHMETIC_MISMATCH":        "A equação não está correta",
		"NON_INTEGER_RESULT":         "O resultado deve ser um número inteiro",
		KeyGameFinished:              "Este jogo terminou",
		KeyAlreadyPlayed:             "Você já jogou o desafio de hoje",
	},
	"es": {
		"WRONG_LENGTH":               "La ecuación debe tener 8 caracteres",
		"INVALID_CHARACTER":          "Contiene caracteres no válidos",
		"MISSING_OR_MULTIPLE_EQUALS": "La ecuación debe tener exactamente un signo igual",
		"EQUALS_POSITION_INVALID":    "El signo igual está en una posición incorrecta",
		"RIGHT_SIDE_NOT_NUMERIC":     "El lado derecho debe ser un número",
		"LEADING_ZERO":               "No se permiten ceros a la izquierda",
		"MALFORMED_EXPRESSION":       "El lado izquierdo no es una expresión válida",
		"ARITHMETIC_MISMATCH":        "La ecuación no es correcta",
		"NON_INTEGER_RESULT":         "El resultado debe ser un número entero",
		KeyGameFinished:              "Esta partida ha terminado",
		KeyAlreadyPlayed:             "Ya jugaste el reto de hoy",
	},
}
