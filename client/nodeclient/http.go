package nodeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/GDVFox/ladderlogic/ladder_node/api/rules"
	"github.com/GDVFox/ladderlogic/util"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

var (
	nodeScheme  = "http"
	convertPath = "/v1/convert"
)

// NodeClientConfig набор настроек для NodeClient.
type NodeClientConfig struct {
	Address string
	Retry   *util.RetryConfig
}

// NewNodeClientConfig создает NodeClientConfig с настройками по-умолчанию.
func NewNodeClientConfig(address string) *NodeClientConfig {
	return &NodeClientConfig{
		Address: address,
		Retry: &util.RetryConfig{
			Delay: util.Duration(500 * time.Millisecond),
			Count: 3,
		},
	}
}

// NodeClient клиент для подключения к ladder_node
type NodeClient struct {
	client *http.Client
	cfg    *NodeClientConfig
}

// NewNodeClient возвращает новый NodeClient
func NewNodeClient(cfg *NodeClientConfig) *NodeClient {
	return &NodeClient{
		client: &http.Client{Timeout: 1 * time.Minute},
		cfg:    cfg,
	}
}

// Convert выполняет пакетное преобразование правил на стороне ladder_node.
func (c *NodeClient) Convert(ctx context.Context, platform string, lines []string) (*rules.ConvertResponse, error) {
	nodeURL := url.URL{
		Scheme: nodeScheme,
		Host:   c.cfg.Address,
		Path:   convertPath,
	}

	body, err := json.Marshal(&rules.ConvertRequest{
		Platform: platform,
		Lines:    lines,
	})
	if err != nil {
		return nil, err
	}

	resp := &rules.ConvertResponse{}
	err = util.Retry(ctx, c.cfg.Retry, func() error {
		httpResp, err := c.client.Post(nodeURL.String(), string(httplib.ContentTypeJSON), bytes.NewReader(body))
		if err != nil {
			return err
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode != http.StatusOK {
			errBody := &httplib.ErrorBody{}
			if err := json.NewDecoder(httpResp.Body).Decode(errBody); err != nil {
				return errors.Errorf("unexpected status: %s", httpResp.Status)
			}
			return errors.Errorf("%s: %s", errBody.Code, errBody.Message)
		}

		return json.NewDecoder(httpResp.Body).Decode(resp)
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
