// Package filestorage клиент объектного хранилища для изображений комнат
package filestorage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с файловым хранилищем
type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента файлового хранилища
func NewClient(baseURL, apiKey, bucket string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Upload загружает изображение и возвращает его публичный URL
// Имя объекта генерируется уникальным, чтобы загрузки не перетирали друг друга
func (c *Client) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	objectName := c.objectName(filename)

	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status code %d: %s", ErrUploadFailed, resp.StatusCode, string(raw))
	}

	publicURL := c.PublicURL(objectName)
	c.log.Info("Uploaded image %s to bucket %s", objectName, c.bucket)
	return publicURL, nil
}

// Remove удаляет объект по его публичному URL
// Отсутствие объекта не считается ошибкой
func (c *Client) Remove(ctx context.Context, publicURL string) error {
	objectName := path.Base(publicURL)
	if objectName == "" || objectName == "." || objectName == "/" {
		return nil
	}

	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectName)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		c.log.Warn("Remove: unexpected status code %d for object %s", resp.StatusCode, objectName)
	}

	return nil
}

// PublicURL возвращает публичный URL объекта в бакете
func (c *Client) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, objectName)
}

func (c *Client) objectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%d_%06d%s", time.Now().UnixMilli(), rand.Intn(1000000), ext)
}
