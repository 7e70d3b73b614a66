package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStorage is the object-store collaborator. Put returns the public
// URL of the written object; names collide last-write-wins.
type BlobStorage interface {
	Put(ctx context.Context, name string, body io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

type S3BlobStorage struct {
	Client *s3.Client
	Bucket string
	Region string
}

func (s *S3BlobStorage) Put(ctx context.Context, name string, body io.Reader) (string, error) {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(name),
		Body:   body,
	})
	if err != nil {
		logging.Log.Errorf("BLOB: failed to put object %q: %v", name, err)
		return "", err
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, name)
	logging.Log.Infof("BLOB: stored object %q at %s", name, publicURL)
	return publicURL, nil
}

func (s *S3BlobStorage) Delete(ctx context.Context, name string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		logging.Log.Errorf("BLOB: failed to delete object %q: %v", name, err)
		return err
	}
	logging.Log.Infof("BLOB: deleted object %q", name)
	return nil
}

// BlobNameFromURL recovers the object key from a stored public URL.
func BlobNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	name, err := url.PathUnescape(path.Base(u.Path))
	if err != nil {
		return path.Base(u.Path)
	}
	return name
}
