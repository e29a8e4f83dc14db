// Пакет file - репозиторий визиток поверх одного JSON-файла.
//
// Файл содержит JSON-массив всех визиток. Каждая операция заново читает
// файл с диска, состояния в памяти между вызовами нет.
// Add переписывает документ целиком: temp -> fsync -> rename, под мьютексом
// и эксклюзивной flock-блокировкой на <file>.lock, поэтому параллельные
// добавления не теряют записи, а читатели видят либо старый, либо новый
// документ целиком.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"mycard-service/internal/converter"
	"mycard-service/internal/model"
	"mycard-service/internal/repository"
)

// LockSuffix суффикс файла блокировки рядом с файлом данных
const LockSuffix = ".lock"

var _ repository.CardRepository = (*repo)(nil)

type repo struct {
	path     string
	lockPath string
	logger   *zap.Logger

	// mu сериализует Add внутри процесса, flock - между процессами
	mu sync.Mutex
}

// NewRepository создает репозиторий, хранящий визитки в файле path
func NewRepository(path string, logger *zap.Logger) repository.CardRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &repo{
		path:     path,
		lockPath: path + LockSuffix,
		logger:   logger.Named("file_repository").With(zap.String("path", path)),
	}
}

// LoadAll возвращает все визитки из файла.
// Отсутствующий, пустой или повреждённый файл дает пустой список без ошибки.
func (r *repo) LoadAll(ctx context.Context) ([]model.Card, error) {
	return r.load(), nil
}

// FindByID ищет визитку линейным проходом по всей коллекции
func (r *repo) FindByID(ctx context.Context, id string) (model.Card, error) {
	for _, card := range r.load() {
		if card.ID == id {
			return card, nil
		}
	}

	return model.Card{}, repository.ErrCardNotFound
}

// Add дописывает визитку в конец коллекции и перезаписывает файл целиком
func (r *repo) Add(ctx context.Context, card model.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	unlock, err := lockExclusive(r.lockPath)
	if err != nil {
		return fmt.Errorf("lock %s: %w", r.lockPath, err)
	}
	defer unlock()

	cards := append(r.load(), card)

	data, err := encode(converter.ModelsToRecords(cards))
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}

	if err := writeAtomic(r.path, data); err != nil {
		return err
	}

	r.logger.Debug("card appended",
		zap.String("id", card.ID),
		zap.Int("total", len(cards)),
	)

	return nil
}

// load читает и разбирает файл. Ошибки чтения и разбора не пробрасываются:
// вызывающий получает пустую коллекцию, а в лог пишется предупреждение.
func (r *repo) load() []model.Card {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("cards file is unreadable, serving empty collection", zap.Error(err))
		}
		return []model.Card{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Card{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		r.logger.Warn("cards file is not a JSON array, serving empty collection", zap.Error(err))
		return []model.Card{}
	}

	cards := make([]model.Card, 0, len(items))
	for i, item := range items {
		card, err := decode(item)
		if err != nil {
			r.logger.Warn("skipping malformed card entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		cards = append(cards, card)
	}

	return cards
}

// decode разбирает один элемент массива. Элемент должен быть объектом с непустым id.
func decode(item json.RawMessage) (model.Card, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.Card{}, errors.New("entry is not an object")
	}

	var record converter.Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return model.Card{}, fmt.Errorf("decode entry: %w", err)
	}
	if record.ID == "" {
		return model.Card{}, errors.New("entry has no id")
	}

	return converter.RecordToModel(record), nil
}

// encode сериализует коллекцию с отступами, не экранируя HTML и не-ASCII символы
func encode(records []converter.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic записывает данные одним вызовом Write во временный файл,
// делает fsync и атомарно переименовывает его поверх path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("fsync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
