package basia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

//	ErrEmptyResponse marks a chat call that completed on the wire but
//	came back without any message text. Callers treat it as a malformed
//	response rather than a transport failure.
var ErrEmptyResponse = errors.New("chat response contains no message text")

type VlmClientOptions struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint"`
	Model    string        `yaml:"model" json:"model"`
	ProxyUrl string        `yaml:"proxy_url" json:"proxy_url"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
}

func NewVlmClient(opts VlmClientOptions) (*VlmClient, error) {

	if opts.Endpoint == "" {
		opts.Endpoint = "http://localhost:11434"
	}

	if opts.Model == "" {
		opts.Model = "llama3.2-vision:11b"
	}

	endpointUrl, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint url: %s", err.Error())
	}

	if endpointUrl.Scheme == "" {
		endpointUrl.Scheme = "http"
	}

	httpClient := http.DefaultClient

	if opts.ProxyUrl != "" {

		dialer, err := getProxyUrlDialer(opts.ProxyUrl)
		if err != nil {
			return nil, fmt.Errorf("proxy_url: %v", err)
		}

		httpClient = &http.Client{Transport: &http.Transport{
			DialContext: dialer.DialContext,
		}}
	}

	return &VlmClient{
		client:   api.NewClient(endpointUrl, httpClient),
		model:    opts.Model,
		endpoint: endpointUrl,
		timeout:  opts.Timeout,
	}, nil
}

type VlmClient struct {
	client   *api.Client
	model    string
	endpoint *url.URL
	timeout  time.Duration
}

func (this *VlmClient) Model() string {
	return this.model
}

//	Host returns the endpoint host name without the port
func (this *VlmClient) Host() string {
	return this.endpoint.Hostname()
}

//	Chat sends a single user message and returns the full response text.
//	Images, when present, ride along on the same message; the api client
//	base64-encodes them on the wire.
func (this *VlmClient) Chat(ctx context.Context, prompt string, images [][]byte) (string, error) {

	if this.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, this.timeout)
		defer cancel()
	}

	msg := api.Message{
		Role:    "user",
		Content: prompt,
	}

	for _, img := range images {
		msg.Images = append(msg.Images, api.ImageData(img))
	}

	stream := false

	req := &api.ChatRequest{
		Model:    this.model,
		Messages: []api.Message{msg},
		Stream:   &stream,
	}

	var content strings.Builder

	respFunc := func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	}

	if err := this.client.Chat(ctx, req, respFunc); err != nil {
		return "", err
	}

	if content.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return content.String(), nil
}

//	Ping checks that the server answers api requests at all, without
//	pulling a model into memory
func (this *VlmClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := this.client.List(ctx)
	return err
}
