package external

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"net/http"
	"time"
)

const maxResponseBytes = 1 << 20

func NewHttpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// ParseResponse 读取响应体并解析到v，响应体限制1MB
func ParseResponse(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	bodyBytes, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "read response body")
	}
	return errors.Wrap(json.Unmarshal(bodyBytes, v), "decode response body")
}
