package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

// Размер страницы зафиксирован протоколом каталога.
const pageSize = 50

// Client определяет интерфейс для получения полного каталога артефактов.
type Client interface {
	// FetchAllArtifacts обходит каталог постранично и возвращает все записи.
	FetchAllArtifacts(ctx context.Context) ([]Artifact, error)
}

// httpClient реализует интерфейс Client поверх HTTP API каталога.
type httpClient struct {
	baseURL    string       // Базовый URL API, например "https://api.example.org/v0"
	httpClient *http.Client // HTTP клиент для выполнения запросов
}

// NewHTTPClient создает новый экземпляр клиента каталога.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// page представляет одну страницу ответа каталога.
type page struct {
	Items      []Artifact `json:"items"`
	NextCursor *string    `json:"next_cursor"`
}

// fetchPage запрашивает одну страницу каталога. Пустой cursor означает первую страницу.
func (c *httpClient) fetchPage(ctx context.Context, cursor *string) (*page, error) {
	artifactsURL, err := url.JoinPath(c.baseURL, "/artifacts")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL каталога: %w", err)
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(pageSize))
	if cursor != nil {
		params.Set("cursor", *cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artifactsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса к каталогу: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса к каталогу: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("каталог вернул неожиданный статус %d", resp.StatusCode)
	}

	var p page
	if err = json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("ошибка декодирования страницы каталога: %w", err)
	}

	return &p, nil
}

// FetchAllArtifacts последовательно обходит каталог по курсорам до тех пор,
// пока сервер не перестанет возвращать next_cursor. Курсоры непрозрачны и
// связаны в цепочку, поэтому параллельная загрузка страниц невозможна.
// Любая ошибка на любой странице прерывает весь обход; повторные попытки
// не выполняются.
func (c *httpClient) FetchAllArtifacts(ctx context.Context) ([]Artifact, error) {
	var all []Artifact
	var cursor *string

	for {
		p, err := c.fetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, p.Items...)

		if p.NextCursor == nil {
			break
		}
		cursor = p.NextCursor
	}

	log.Printf("[CatalogClient] Получено %d артефактов из каталога", len(all))
	return all, nil
}
