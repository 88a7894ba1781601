package models

import "time"

// AttestationRequest представляет тело запроса на регистрацию аттестации от хранителя.
// Поле Size объявлено как uint64: заявленный размер резервной копии может
// превышать 2^53 байт, поэтому проход через float64 недопустим.
type AttestationRequest struct {
	FormatVersion int     `json:"format_version"`
	KeeperID      string  `json:"keeper_id"`
	Checksum      string  `json:"checksum"`
	Size          uint64  `json:"size"`
	Email         *string `json:"email,omitempty"`
}

// Attestation представляет принятую и сохраненную аттестацию резервной копии.
// Запись append-only: после вставки она никогда не обновляется и не удаляется.
type Attestation struct {
	ID            int64     `db:"id" json:"id"`
	FormatVersion int       `db:"format_version" json:"format_version"`
	KeeperID      string    `db:"keeper_id" json:"keeper_id"`
	Checksum      string    `db:"checksum" json:"checksum"` // Хранится в нижнем регистре
	SizeBytes     uint64    `db:"size_bytes" json:"size_bytes"`
	Contact       *string   `db:"contact" json:"contact,omitempty"`
	ContactType   *string   `db:"contact_type" json:"contact_type,omitempty"` // "email" или NULL
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
