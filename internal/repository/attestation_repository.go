package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/mirrorkeeper/server/internal/models"
)

// AttestationRepository определяет методы для работы с записями аттестаций.
// Хранилище append-only: методов обновления и удаления нет намеренно.
type AttestationRepository interface {
	CreateAttestation(ctx context.Context, attestation *models.Attestation) (int64, error)
}

// postgresAttestationRepository реализует AttestationRepository для PostgreSQL.
type postgresAttestationRepository struct {
	db *sqlx.DB
}

// NewPostgresAttestationRepository создает новый экземпляр репозитория аттестаций.
func NewPostgresAttestationRepository(db *sqlx.DB) AttestationRepository {
	return &postgresAttestationRepository{db: db}
}

// CreateAttestation добавляет новую запись аттестации одной атомарной вставкой.
// Уникальных ограничений по хранителю или контрольной сумме нет: повторные
// аттестации сохраняются как отдельные строки журнала.
func (r *postgresAttestationRepository) CreateAttestation(
	ctx context.Context,
	attestation *models.Attestation,
) (int64, error) {
	query := `INSERT INTO attestations (format_version, keeper_id, checksum, size_bytes, contact, contact_type)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var attestationID int64

	// Колонка size_bytes имеет тип NUMERIC(20,0): значение uint64 может
	// превышать диапазон bigint, поэтому передаем его десятичной строкой.
	err := r.db.QueryRowxContext(ctx, query,
		attestation.FormatVersion,
		attestation.KeeperID,
		attestation.Checksum,
		strconv.FormatUint(attestation.SizeBytes, 10),
		attestation.Contact,
		attestation.ContactType,
	).Scan(&attestationID)

	if err != nil {
		log.Printf("[AttestationRepo] Ошибка при создании аттестации от хранителя '%s': %v",
			attestation.KeeperID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание аттестации: %w", err)
	}

	log.Printf("[AttestationRepo] Аттестация (ID: %d) от хранителя '%s' успешно сохранена",
		attestationID, attestation.KeeperID)
	return attestationID, nil
}
