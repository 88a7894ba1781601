// Package checksum вычисляет детерминированную контрольную сумму каталога артефактов.
//
// Форма метаданных здесь намеренно не совпадает один в один с ответом
// вышестоящего API: это канонический поднабор полей, общий для сервера и
// клиента резервного копирования. Набор полей, имена JSON-ключей и правила
// сериализации — межсистемный контракт: любое расхождение незаметно ломает
// все последующие сравнения контрольных сумм.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gowebpki/jcs"
	"github.com/mirrorkeeper/server/internal/catalog"
)

// FileMetadata представляет файл артефакта в канонической форме для хеширования.
type FileMetadata struct {
	Name          string  `json:"name"`
	Filename      string  `json:"filename"`
	MediaType     *string `json:"media_type"`
	Hash          string  `json:"hash"`
	HashAlgorithm string  `json:"hash_algorithm"`
	URL           string  `json:"url"`
	Lang          *string `json:"lang"`
	Hidden        bool    `json:"hidden"`
}

// LinkMetadata представляет ссылку артефакта в канонической форме.
type LinkMetadata struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ArtifactMetadata представляет каноническую форму метаданных одного артефакта.
// Включаются только поля, участвующие в доказательстве идентичности содержимого
// (в первую очередь хеши файлов); косметические поля API исключены.
// Отсутствующие опциональные поля сериализуются как null, пустые коллекции —
// как [], никогда как null: клиент резервного копирования делает так же.
type ArtifactMetadata struct {
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Summary     string         `json:"summary"`
	Description *string        `json:"description"`
	Files       []FileMetadata `json:"files"`
	Links       []LinkMetadata `json:"links"`
	People      []string       `json:"people"`
	Identities  []string       `json:"identities"`
	FromYear    int            `json:"from_year"`
	ToYear      *int           `json:"to_year"`
	Decades     []int          `json:"decades"`
	Collections []string       `json:"collections"`
}

// Project отображает артефакт каталога в каноническую форму метаданных.
// Чистая тотальная функция: никаких побочных эффектов и ошибок.
func Project(artifact catalog.Artifact) ArtifactMetadata {
	files := make([]FileMetadata, 0, len(artifact.Files))
	for _, f := range artifact.Files {
		files = append(files, FileMetadata{
			Name:          f.Name,
			Filename:      f.Filename,
			MediaType:     f.MediaType,
			Hash:          f.Hash,
			HashAlgorithm: f.HashAlgorithm,
			URL:           f.URL,
			Lang:          f.Lang,
			Hidden:        f.Hidden,
		})
	}

	links := make([]LinkMetadata, 0, len(artifact.Links))
	for _, l := range artifact.Links {
		links = append(links, LinkMetadata{Name: l.Name, URL: l.URL})
	}

	return ArtifactMetadata{
		ID:          artifact.ID,
		URL:         artifact.URL,
		Title:       artifact.Title,
		Summary:     artifact.Summary,
		Description: artifact.Description,
		Files:       files,
		Links:       links,
		People:      emptyIfNil(artifact.People),
		Identities:  emptyIfNil(artifact.Identities),
		FromYear:    artifact.FromYear,
		ToYear:      artifact.ToYear,
		Decades:     emptyIfNil(artifact.Decades),
		Collections: emptyIfNil(artifact.Collections),
	}
}

// emptyIfNil гарантирует сериализацию пустой коллекции как [], а не null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Compute вычисляет контрольную сумму коллекции артефактов.
//
// Алгоритм: каждый артефакт проецируется в каноническую форму, коллекция
// сортируется по идентификатору (побайтовое сравнение строк; идентификаторы
// уникальны, поэтому порядок тотален), сериализуется по RFC 8785 (JSON
// Canonicalization Scheme) и хешируется SHA-256. Результат — 64 символа
// hex в нижнем регистре.
//
// Функция детерминирована: для одинаковых по значению коллекций (в любом
// порядке) возвращается одинаковый дайджест. Ошибка сериализации возможна
// только для некорректно сформированных значений и трактуется как
// программная ошибка, а не как ошибка пользователя.
func Compute(artifacts []catalog.Artifact) (string, error) {
	metadata := make([]ArtifactMetadata, 0, len(artifacts))
	for _, artifact := range artifacts {
		metadata = append(metadata, Project(artifact))
	}

	sort.Slice(metadata, func(i, j int) bool {
		return metadata[i].ID < metadata[j].ID
	})

	plain, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации метаданных: %w", err)
	}

	canonical, err := jcs.Transform(plain)
	if err != nil {
		return "", fmt.Errorf("ошибка канонизации метаданных (RFC 8785): %w", err)
	}

	digest := sha256.Sum256(canonical)
	return hex.EncodeToString(digest[:]), nil
}
