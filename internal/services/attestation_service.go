package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mirrorkeeper/server/internal/models"
	"github.com/mirrorkeeper/server/internal/repository"
	"github.com/mirrorkeeper/server/internal/validation"
)

// Кастомные ошибки сервиса аттестаций. Все три — ошибки клиента:
// запрос отклоняется до какого-либо обращения к хранилищу.
var (
	ErrInvalidFormatVersion = errors.New("неподдерживаемая версия формата аттестации")
	ErrInvalidKeeperID      = errors.New("идентификатор хранителя не является корректным UUID")
	ErrInvalidChecksum      = errors.New("контрольная сумма имеет неверную длину или кодировку")
)

// Тег типа контакта, выводимый из наличия email в запросе.
const contactTypeEmail = "email"

// AttestationService определяет интерфейс сервиса приема аттестаций.
type AttestationService interface {
	// SubmitAttestation проверяет аттестацию и сохраняет ее в журнале.
	SubmitAttestation(ctx context.Context, req models.AttestationRequest) (*models.Attestation, error)
}

var _ AttestationService = (*attestationService)(nil) // Проверка соответствия интерфейсу

type attestationService struct {
	repo repository.AttestationRepository
}

// NewAttestationService создает новый экземпляр сервиса аттестаций.
func NewAttestationService(repo repository.AttestationRepository) AttestationService {
	return &attestationService{repo: repo}
}

// SubmitAttestation выполняет цепочку проверок и завершается на первой
// неудачной: версия формата -> идентификатор хранителя -> контрольная сумма.
// Вставка в хранилище — единственный побочный эффект, и он выполняется
// только после прохождения всех проверок: частично валидная запись не может
// оказаться в журнале.
func (s *attestationService) SubmitAttestation(
	ctx context.Context,
	req models.AttestationRequest,
) (*models.Attestation, error) {
	if !validation.ValidFormatVersion(req.FormatVersion) {
		log.Printf("[AttestationService] Неожиданная версия формата: %d", req.FormatVersion)
		return nil, ErrInvalidFormatVersion
	}

	// Правила проверки идентификатора выбираются по версии формата:
	// формат идентификатора хранителя менялся между ревизиями протокола.
	if !validation.ValidKeeperID(req.FormatVersion, req.KeeperID) {
		log.Printf("[AttestationService] Некорректный идентификатор хранителя: %s", req.KeeperID)
		return nil, ErrInvalidKeeperID
	}

	if !validation.ValidChecksum(req.Checksum) {
		log.Printf("[AttestationService] Некорректная контрольная сумма: %s", req.Checksum)
		return nil, ErrInvalidChecksum
	}

	attestation := &models.Attestation{
		FormatVersion: req.FormatVersion,
		KeeperID:      req.KeeperID,
		// Регистр входной контрольной суммы не важен, хранится нижний.
		Checksum:    strings.ToLower(req.Checksum),
		SizeBytes:   req.Size,
		Contact:     req.Email,
		ContactType: deriveContactType(req.Email),
	}

	attestationID, err := s.repo.CreateAttestation(ctx, attestation)
	if err != nil {
		log.Printf("[AttestationService] Ошибка сохранения аттестации от хранителя %s: %v",
			req.KeeperID, err)
		return nil, fmt.Errorf("ошибка сохранения аттестации: %w", err)
	}
	attestation.ID = attestationID

	log.Printf("[AttestationService] Аттестация сохранена. Хранитель: %s, контрольная сумма: %s, размер: %d",
		attestation.KeeperID, attestation.Checksum, attestation.SizeBytes)
	return attestation, nil
}

// deriveContactType возвращает тег типа контакта: "email", если адрес
// указан, иначе nil (NULL в хранилище).
func deriveContactType(email *string) *string {
	if email == nil {
		return nil
	}
	contactType := contactTypeEmail
	return &contactType
}
