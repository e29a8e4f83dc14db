package swagger

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SpecPath путь, по которому отдается описание HTTP API
const SpecPath = "/swagger.json"

//go:embed mycard.swagger.json
var swaggerJSON []byte

// Spec возвращает встроенное OpenAPI описание HTTP API визиток
func Spec() []byte {
	return swaggerJSON
}

// ServeSwagger добавляет маршрут swagger.json в указанный роутер
func ServeSwagger(r chi.Router) {
	r.Get(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(swaggerJSON)
	})
}
