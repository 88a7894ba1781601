package middleware

import "net/http"

// Аттестация — небольшой JSON-объект; 1 МиБ с большим запасом.
const MaxAttestationBodyBytes = 1 << 20

// BodyLimit ограничивает размер тела запроса. При превышении лимита
// декодирование тела в обработчике завершится ошибкой и запрос будет
// отклонен как некорректный.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
