package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mirrorkeeper/server/internal/models"
	"github.com/mirrorkeeper/server/internal/services"
)

// AttestationHandler обрабатывает HTTP-запросы на регистрацию аттестаций.
type AttestationHandler struct {
	attestationService services.AttestationService
}

// NewAttestationHandler создает новый экземпляр AttestationHandler.
func NewAttestationHandler(as services.AttestationService) *AttestationHandler {
	return &AttestationHandler{attestationService: as}
}

// Submit обрабатывает POST запрос на регистрацию аттестации резервной копии.
// Успешный ответ — 204 без тела; любая ошибка валидации — 400; ошибка
// сохранения — 500.
func (h *AttestationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.AttestationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Сюда же попадает отрицательный или нечисловой size: поле uint64
		// не декодируется из таких значений.
		log.Printf("[AttestationHandler:Submit] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	log.Printf("[AttestationHandler:Submit] Запрос на регистрацию аттестации от хранителя %s", req.KeeperID)

	_, err := h.attestationService.SubmitAttestation(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFormatVersion),
			errors.Is(err, services.ErrInvalidKeeperID),
			errors.Is(err, services.ErrInvalidChecksum):
			log.Printf("[AttestationHandler:Submit] Аттестация отклонена: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("[AttestationHandler:Submit] Внутренняя ошибка при сохранении аттестации: %v", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent) // 204 No Content - успешная регистрация без тела ответа
	log.Printf("[AttestationHandler:Submit] Аттестация от хранителя %s успешно принята", req.KeeperID)
}
