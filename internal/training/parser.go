package training

import (
	"regexp"
	"strconv"
	"strings"
)

// EntryKind вид распознанной записи
type EntryKind int

const (
	EntryStrength EntryKind = iota // силовое: вес × повторы × подходы
	EntryCardio                    // кардио: длительность в минутах
)

// Entry распознанная запись упражнения из одной строки текста
type Entry struct {
	Kind     EntryKind
	Name     string
	Weight   float64
	Reps     int
	Sets     int
	Duration int // минуты, только для кардио
}

// Потолок длительности при парсинге, осмысленность значения
// проверяет вызывающий код
const maxDurationMinutes = 1000000

// Регулярные выражения для парсинга записи.
// Порядок важен: сначала пробуем время, потом силовой формат.
//
// Время:   "бег 50мин", "ходьба 1 час" — хвост после единицы игнорируется
// Силовое: "жим лежа 90 15х4", "жим 90кг 15", "присед 100,5 5х5"
var (
	timePattern     = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[.,]\d+)?)\s*(час|ч|минут|мин|м).*$`)
	strengthPattern = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[.,]\d+)?)\s*(?:кг)?\s+(\d+)\s*(?:[xх×*]\s*(\d+))?$`)
	repsSetsPattern = regexp.MustCompile(`^(\d+)\s*[xх×*-]\s*(\d+)$`)
)

// ParseEntry парсит строку с упражнением:
//   - "бег 50мин" → кардио с длительностью
//   - "жим лежа 90 15х4" → силовое (вес, повторы, подходы)
//
// Возвращает nil, если строка не распознана — тогда вызывающий код
// ведёт пошаговый диалог (вес, потом повторы×подходы).
func ParseEntry(text string) *Entry {
	text = strings.TrimSpace(text)

	if m := timePattern.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(strings.Replace(m[2], ",", ".", 1), 64)
		unit := strings.ToLower(m[3])

		if unit == "час" || unit == "ч" {
			value *= 60
		}
		// Преобразование огромного float в int не определено,
		// ограничиваем до разумного потолка заранее
		if value > maxDurationMinutes {
			value = maxDurationMinutes
		}
		minutes := int(value)

		return &Entry{
			Kind:     EntryCardio,
			Name:     strings.TrimSpace(m[1]),
			Duration: minutes,
		}
	}

	if m := strengthPattern.FindStringSubmatch(text); m != nil {
		weight, _ := strconv.ParseFloat(strings.Replace(m[2], ",", ".", 1), 64)
		reps, _ := strconv.Atoi(m[3])

		sets := 1
		if m[4] != "" {
			sets, _ = strconv.Atoi(m[4])
		}

		return &Entry{
			Kind:   EntryStrength,
			Name:   strings.TrimSpace(m[1]),
			Weight: weight,
			Reps:   reps,
			Sets:   sets,
		}
	}

	return nil
}

// ParseRepsSets парсит ввод повторов: "15x3", "15х3", "15*3", "15-3"
// или просто "15" (один подход)
func ParseRepsSets(text string) (reps, sets int, ok bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	if m := repsSetsPattern.FindStringSubmatch(text); m != nil {
		reps, _ = strconv.Atoi(m[1])
		sets, _ = strconv.Atoi(m[2])
		return reps, sets, true
	}

	reps, err := strconv.Atoi(text)
	if err != nil {
		return 0, 0, false
	}
	return reps, 1, true
}

// ParseWeight парсит вес: поддерживает запятую, точку и суффикс "кг"
func ParseWeight(text string) (float64, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimSuffix(text, "кг")
	text = strings.TrimSpace(strings.Replace(text, ",", ".", 1))

	weight, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return weight, true
}
