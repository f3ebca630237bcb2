package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"essay-grader/biz/infrastructure/config"

	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"
)

// Client 手写图片的文字识别客户端
type Client struct {
	svc *visionapi.Service
}

func NewClient(cfg *config.Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.Vision.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Vision.CredentialsFile))
	}
	if cfg.Vision.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.Vision.APIKey))
	}

	svc, err := visionapi.NewService(context.Background(), opts...)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// DetectText 识别单张图片里的文字，识别不到文字时返回空串
func (c *Client) DetectText(ctx context.Context, image []byte) (string, error) {
	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{
			{
				Image: &visionapi.Image{
					Content: base64.StdEncoding.EncodeToString(image),
				},
				Features: []*visionapi.Feature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Responses) == 0 {
		return "", errors.New("vision: empty annotate response")
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("vision: %s", r.Error.Message)
	}
	if len(r.TextAnnotations) == 0 {
		return "", nil
	}
	return r.TextAnnotations[0].Description, nil
}
