// Package validation содержит чистые предикаты синтаксической проверки
// полей аттестации.
package validation

import "github.com/google/uuid"

// CurrentFormatVersion — последняя версия формата аттестации, которую
// понимает этот сервер. Более новые версии отклоняются: прямая
// совместимость протоколом не гарантируется.
const CurrentFormatVersion = 1

// Длина hex-представления 256-битного дайджеста.
const checksumHexLength = 64

// ValidFormatVersion возвращает true, если версия формата положительна
// и не превышает поддерживаемую.
func ValidFormatVersion(v int) bool {
	return v > 0 && v <= CurrentFormatVersion
}

// ruleSet описывает правила проверки одной ревизии протокола.
// Формат идентификатора хранителя менялся между ревизиями, поэтому правила
// выбираются по версии формата, а не зашиваются в один набор.
type ruleSet struct {
	keeperID func(string) bool
}

// rulesByVersion сопоставляет версии формата с действующими правилами.
var rulesByVersion = map[int]ruleSet{
	1: {keeperID: isUUIDKeeperID},
}

// ValidKeeperID проверяет идентификатор хранителя по правилам указанной
// версии формата. Для неизвестной версии всегда возвращает false.
func ValidKeeperID(formatVersion int, keeperID string) bool {
	rules, ok := rulesByVersion[formatVersion]
	if !ok {
		return false
	}
	return rules.keeperID(keeperID)
}

// isUUIDKeeperID: идентификатор должен быть корректным UUID любой версии,
// кроме нулевого (все нули).
func isUUIDKeeperID(keeperID string) bool {
	id, err := uuid.Parse(keeperID)
	if err != nil {
		return false
	}
	return id != uuid.Nil
}

// ValidLegacyKeeperCode проверяет идентификатор хранителя по правилам
// ревизии протокола до введения поля версии формата: ровно 6 ASCII-цифр.
// Сервер закреплен на ревизии 1, правило сохранено для исторических данных.
func ValidLegacyKeeperCode(keeperID string) bool {
	if len(keeperID) != 6 {
		return false
	}
	for _, c := range []byte(keeperID) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidChecksum возвращает true, если строка состоит ровно из 64
// hex-символов (регистр не важен), то есть кодирует 256-битный дайджест.
func ValidChecksum(checksum string) bool {
	if len(checksum) != checksumHexLength {
		return false
	}
	for _, c := range []byte(checksum) {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
