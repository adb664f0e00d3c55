package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage uploads media to an S3-compatible bucket and hands back a
// public URL for it.
type Storage struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

func (s *Storage) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.Region),
		Endpoint: aws.String(s.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.AccessKey, s.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

func (s *Storage) UploadImage(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to storage: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.Endpoint, s.Bucket, filePath), nil
}
