package telegram

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

var mediaClient = &http.Client{Timeout: 60 * time.Second}

// downloadFile fetches a Telegram-hosted file by its file id.
func (r *Router) downloadFile(fileID string) ([]byte, error) {
	url, err := r.Bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}
	resp, err := mediaClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
