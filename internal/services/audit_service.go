package services

import (
	"context"
	"fmt"
	"log"

	"github.com/mirrorkeeper/server/internal/catalog"
	"github.com/mirrorkeeper/server/internal/checksum"
)

// AuditResult представляет результат пересчета контрольной суммы каталога.
type AuditResult struct {
	Checksum      string `json:"checksum"`
	ArtifactCount int    `json:"artifact_count"`
}

// AuditService определяет интерфейс сервиса аудита: сервер независимо
// пересчитывает контрольную сумму по живому каталогу, чтобы оператор мог
// сверить ее с присланными аттестациями.
type AuditService interface {
	ComputeUpstreamChecksum(ctx context.Context) (*AuditResult, error)
}

var _ AuditService = (*auditService)(nil) // Проверка соответствия интерфейсу

type auditService struct {
	catalogClient catalog.Client
}

// NewAuditService создает новый экземпляр сервиса аудита.
func NewAuditService(catalogClient catalog.Client) AuditService {
	return &auditService{catalogClient: catalogClient}
}

// ComputeUpstreamChecksum загружает полный каталог и вычисляет его
// контрольную сумму. Повторные попытки при сбое загрузки не выполняются:
// это инструмент аудита по требованию, политика ретраев — забота вызывающего.
func (s *auditService) ComputeUpstreamChecksum(ctx context.Context) (*AuditResult, error) {
	artifacts, err := s.catalogClient.FetchAllArtifacts(ctx)
	if err != nil {
		log.Printf("[AuditService] Ошибка загрузки каталога: %v", err)
		return nil, fmt.Errorf("ошибка загрузки каталога: %w", err)
	}

	digest, err := checksum.Compute(artifacts)
	if err != nil {
		// Не должно происходить для корректных данных каталога
		log.Printf("[AuditService] Ошибка вычисления контрольной суммы: %v", err)
		return nil, fmt.Errorf("ошибка вычисления контрольной суммы: %w", err)
	}

	log.Printf("[AuditService] Контрольная сумма каталога (%d артефактов): %s",
		len(artifacts), digest)
	return &AuditResult{Checksum: digest, ArtifactCount: len(artifacts)}, nil
}
