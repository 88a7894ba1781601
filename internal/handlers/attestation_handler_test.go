package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mirrorkeeper/server/internal/handlers"
	"github.com/mirrorkeeper/server/internal/models"
	"github.com/mirrorkeeper/server/internal/services"
)

// MockAttestationService is a mock implementation of AttestationService interface.
type MockAttestationService struct {
	mock.Mock
}

func (m *MockAttestationService) SubmitAttestation(
	ctx context.Context,
	req models.AttestationRequest,
) (*models.Attestation, error) {
	args := m.Called(ctx, req)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Attestation), args.Error(1)
}

const validBody = `{
	"format_version": 1,
	"keeper_id": "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	"checksum": "` +
	"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" + `",
	"size": 9007199254740993
}`

func TestAttestationHandler_Submit(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		mockSetup          func(m *MockAttestationService)
		expectedStatusCode int
		expectEmptyBody    bool
	}{
		{
			name: "Успешная регистрация - 204 без тела",
			body: validBody,
			mockSetup: func(m *MockAttestationService) {
				m.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
					Return(&models.Attestation{ID: 1}, nil).Once()
			},
			expectedStatusCode: http.StatusNoContent,
			expectEmptyBody:    true,
		},
		{
			name:               "Некорректный JSON - 400",
			body:               `{"format_version": это не json`,
			mockSetup:          func(_ *MockAttestationService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Отрицательный размер - 400",
			body:               `{"format_version": 1, "keeper_id": "x", "checksum": "y", "size": -1}`,
			mockSetup:          func(_ *MockAttestationService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Отклонение валидации - 400",
			body: validBody,
			mockSetup: func(m *MockAttestationService) {
				m.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
					Return(nil, services.ErrInvalidFormatVersion).Once()
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Некорректный идентификатор хранителя - 400",
			body: validBody,
			mockSetup: func(m *MockAttestationService) {
				m.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
					Return(nil, services.ErrInvalidKeeperID).Once()
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Некорректная контрольная сумма - 400",
			body: validBody,
			mockSetup: func(m *MockAttestationService) {
				m.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
					Return(nil, services.ErrInvalidChecksum).Once()
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Ошибка сохранения - 500",
			body: validBody,
			mockSetup: func(m *MockAttestationService) {
				m.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
					Return(nil, errors.New("ошибка сохранения аттестации")).Once()
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAttestationService)
			tt.mockSetup(mockService)
			handler := handlers.NewAttestationHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/backups", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectEmptyBody {
				assert.Empty(t, rr.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

// Большой размер должен доходить до сервиса без потери точности.
func TestAttestationHandler_Submit_LargeSizeExact(t *testing.T) {
	mockService := new(MockAttestationService)
	var received models.AttestationRequest
	mockService.On("SubmitAttestation", mock.Anything, mock.AnythingOfType("models.AttestationRequest")).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(models.AttestationRequest) //nolint:errcheck // Ошибки кастования в моках приемлемы
		}).
		Return(&models.Attestation{ID: 1}, nil).Once()

	handler := handlers.NewAttestationHandler(mockService)
	req := httptest.NewRequest(http.MethodPost, "/backups", strings.NewReader(validBody))
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, uint64(9007199254740993), received.Size)
}
