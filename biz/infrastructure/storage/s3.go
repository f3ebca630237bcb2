package storage

import (
	"context"
	"errors"
	"io"

	"essay-grader/biz/infrastructure/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ErrObjectNotFound 对象不存在，调用方据此区分“缺失”和其他存储错误
var ErrObjectNotFound = errors.New("storage: object not found")

// S3Store 模板与标准答案所在的对象存储
type S3Store struct {
	client *s3.S3
	bucket string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	s3Config := &aws.Config{
		Credentials: credentials.NewStaticCredentials(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Region:      aws.String(cfg.Storage.Region),
	}
	if cfg.Storage.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Storage.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, err
	}

	return &S3Store{
		client: s3.New(sess),
		bucket: cfg.Storage.Bucket,
	}, nil
}

// ReadText 读取对象全文；对象缺失返回 ErrObjectNotFound
func (s *S3Store) ReadText(ctx context.Context, key string) (string, error) {
	result, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return "", ErrObjectNotFound
			}
		}
		return "", err
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
