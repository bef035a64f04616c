package providerdirectory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со справочником врачей клиники
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProvider получает врача по ID
func (c *Client) GetProvider(ctx context.Context, providerID int64) (*Provider, error) {
	url := fmt.Sprintf("%s/internal/providers/%d", c.baseURL, providerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid provider ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProviderNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var provider Provider
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &provider, nil
}

// GetProviderWithGracefulDegradation получает врача с graceful degradation
// При недоступности справочника возвращает ErrServiceDegraded:
// вызывающая сторона решает, продолжать ли операцию без проверки врача
func (c *Client) GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*Provider, error) {
	c.log.Info("Fetching provider id=%d from directory", providerID)

	provider, err := c.GetProvider(ctx, providerID)
	if err != nil {
		// Бизнес-ошибка (врач не найден) пробрасывается дальше
		if errors.Is(err, ErrProviderNotFound) {
			c.log.Info("Provider id=%d not found in directory", providerID)
			return nil, err
		}

		// Недоступность сервиса, timeout, ошибки парсинга - graceful degradation
		c.log.Error("Provider directory unavailable, applying graceful degradation for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: provider_id=%d, error=%v", ErrServiceDegraded, providerID, err)
	}

	c.log.Info("Successfully fetched provider id=%d, specialty=%s", providerID, provider.Specialty)
	return provider, nil
}
