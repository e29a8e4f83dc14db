// Пакет idgen генерирует идентификаторы визиток.
//
// Идентификатор - 32 hex-символа из 16 случайных байт UUID v4
// (источник случайности crypto/rand). Повторная проверка на коллизию
// перед вставкой не выполняется.
package idgen

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Length длина идентификатора в символах
const Length = 32

// Generator генерирует уникальные идентификаторы
type Generator interface {
	// Generate возвращает новый идентификатор
	Generate() string
}

// Func адаптер, позволяющий использовать функцию как Generator
type Func func() string

// Generate вызывает саму функцию
func (f Func) Generate() string {
	return f()
}

type hexGenerator struct{}

// New создает генератор hex-идентификаторов
func New() Generator {
	return hexGenerator{}
}

// Generate возвращает hex-представление случайного UUID без дефисов
func (hexGenerator) Generate() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
