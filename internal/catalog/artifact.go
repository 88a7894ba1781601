package catalog

// File представляет один файл артефакта в ответе каталога.
type File struct {
	Name          string  `json:"name"`
	Filename      string  `json:"filename"`
	MediaType     *string `json:"media_type"`
	Hash          string  `json:"hash"`
	HashAlgorithm string  `json:"hash_algorithm"`
	URL           string  `json:"url"`
	Lang          *string `json:"lang"`
	Hidden        bool    `json:"hidden"`
}

// Link представляет именованную внешнюю ссылку артефакта.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Artifact представляет одну запись каталога в том виде, в котором ее отдает
// вышестоящий API. Записи неизменяемы: они строятся заново при каждом обходе
// каталога и живут только до вычисления контрольной суммы.
type Artifact struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"` // Отображаемый фрагмент URL; в контрольную сумму не входит
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description *string  `json:"description"`
	URL         string   `json:"url"`
	Files       []File   `json:"files"`
	Links       []Link   `json:"links"`
	People      []string `json:"people"`
	Identities  []string `json:"identities"`
	FromYear    int      `json:"from_year"`
	ToYear      *int     `json:"to_year"`
	Decades     []int    `json:"decades"`
	Collections []string `json:"collections"`
}
