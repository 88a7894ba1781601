// Утилита аудита: пересчитывает контрольную сумму по живому каталогу и при
// необходимости сверяет ее с контрольной суммой из присланной аттестации.
// Запускается по требованию оператором; ретраев и бэкоффа нет намеренно.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mirrorkeeper/server/internal/catalog"
	"github.com/mirrorkeeper/server/internal/services"
)

// errChecksumMismatch сигнализирует о расхождении контрольных сумм при сверке.
var errChecksumMismatch = errors.New("контрольные суммы не совпадают")

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения аудита: %v", err)
		os.Exit(1)
	}
}

// run выполняет один цикл аудита и возвращает ошибку.
func run() error {
	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Таймаут ограничивает весь цикл обхода каталога целиком
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	auditService := services.NewAuditService(catalog.NewHTTPClient(cfg.UpstreamURL))

	result, err := auditService.ComputeUpstreamChecksum(ctx)
	if err != nil {
		return fmt.Errorf("ошибка пересчета контрольной суммы: %w", err)
	}

	fmt.Printf("Артефактов в каталоге: %d\n", result.ArtifactCount)
	fmt.Printf("Контрольная сумма:     %s\n", result.Checksum)

	if cfg.Expect != "" {
		// Сверка нечувствительна к регистру, как и прием аттестаций
		if !strings.EqualFold(cfg.Expect, result.Checksum) {
			fmt.Printf("РАСХОЖДЕНИЕ: ожидалось %s\n", strings.ToLower(cfg.Expect))
			return errChecksumMismatch
		}
		fmt.Println("Контрольная сумма совпадает с ожидаемой.")
	}

	return nil
}
